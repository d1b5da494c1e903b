// Package document holds the totals model shared by quotations and invoices:
// line arithmetic, per-rate VAT aggregation and the legacy flat-rate
// calculation for records that predate line items.
//
// The model never fails: missing or unparseable numeric input degrades to
// zero (and a missing quantity counts as 1). Validation of "at least one line
// with a description and a positive price" is a concern of the request layer,
// not of this package.
package document

import (
	"github.com/shopspring/decimal"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// LineTotal returns unit price × quantity. A zero/missing quantity counts
// as 1, matching how older records stored single-unit lines.
func LineTotal(it entity.LineItem) decimal.Decimal {
	qty := it.Quantity.Decimal
	if qty.IsZero() {
		qty = decimal.NewFromInt(1)
	}
	return it.UnitPrice.Decimal.Mul(qty)
}

// LineVAT returns the VAT amount of a single line: LineTotal × rate / 100.
func LineVAT(it entity.LineItem) decimal.Decimal {
	return LineTotal(it).Mul(it.VATRate.Decimal).Div(hundred)
}

// Subtotal sums LineTotal over all items.
func Subtotal(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Decimal{}
	for _, it := range items {
		sum = sum.Add(LineTotal(it))
	}
	return sum
}

// RateTotal is the summed VAT amount for one distinct rate.
type RateTotal struct {
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// VATByRate aggregates VAT per distinct rate. Order is the insertion order of
// each rate's first occurrence, so rendering stays stable.
func VATByRate(items []entity.LineItem) []RateTotal {
	var totals []RateTotal
	for _, it := range items {
		vat := LineVAT(it)
		found := false
		for i := range totals {
			if totals[i].Rate.Equal(it.VATRate.Decimal) {
				totals[i].Amount = totals[i].Amount.Add(vat)
				found = true
				break
			}
		}
		if !found {
			totals = append(totals, RateTotal{Rate: it.VATRate.Decimal, Amount: vat})
		}
	}
	return totals
}

// VATTotal sums all VATByRate amounts.
func VATTotal(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Decimal{}
	for _, rt := range VATByRate(items) {
		sum = sum.Add(rt.Amount)
	}
	return sum
}

// GrandTotal returns subtotal plus total VAT.
func GrandTotal(items []entity.LineItem) decimal.Decimal {
	return Subtotal(items).Add(VATTotal(items))
}

// CalculateVAT is the legacy two-argument form for flat-price documents:
// price × rate / 100.
func CalculateVAT(price, ratePercent decimal.Decimal) decimal.Decimal {
	return price.Mul(ratePercent).Div(hundred)
}

// CalculateTotal is the legacy two-argument form: price plus its VAT.
func CalculateTotal(price, ratePercent decimal.Decimal) decimal.Decimal {
	return price.Add(CalculateVAT(price, ratePercent))
}

// Totals computes (subtotal, vat, total) for a document. When no line items
// are present it falls back to the legacy flat amount/rate pair; nil legacy
// fields count as zero.
func Totals(items []entity.LineItem, flatAmount, flatRate *entity.Amount) (subtotal, vat, total decimal.Decimal) {
	if len(items) > 0 {
		subtotal = Subtotal(items)
		vat = VATTotal(items)
		return subtotal, vat, subtotal.Add(vat)
	}
	price := decimal.Decimal{}
	if flatAmount != nil {
		price = flatAmount.Decimal
	}
	rate := decimal.Decimal{}
	if flatRate != nil {
		rate = flatRate.Decimal
	}
	vat = CalculateVAT(price, rate)
	return price, vat, price.Add(vat)
}
