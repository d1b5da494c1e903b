package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal that tolerates sloppy JSON input. Stored records from
// older application versions carry amounts as numbers, quoted numbers or
// free-text; anything unparseable (and null) decodes to zero instead of
// failing the whole document.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal.
func NewAmount(d decimal.Decimal) Amount { return Amount{Decimal: d} }

// AmountFromFloat builds an Amount from a float64.
func AmountFromFloat(f float64) Amount { return Amount{Decimal: decimal.NewFromFloat(f)} }

// AmountFromInt builds an Amount from an int64.
func AmountFromInt(n int64) Amount { return Amount{Decimal: decimal.NewFromInt(n)} }

// UnmarshalJSON accepts numbers and quoted numbers; everything else becomes
// zero, never an error.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		a.Decimal = decimal.Decimal{}
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Decimal{}
		return nil
	}
	a.Decimal = d
	return nil
}

// LineItem is a single billable entry on a quotation or invoice.
type LineItem struct {
	Description string `json:"description"`
	UnitPrice   Amount `json:"unit_price"`
	Quantity    Amount `json:"quantity"`
	VATRate     Amount `json:"vat_rate"` // percentage: 21, 9, 0
}
