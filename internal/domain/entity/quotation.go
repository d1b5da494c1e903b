package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation statuses. Transitions are caller-driven; unknown values are
// rejected at the use-case layer.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
)

// ValidQuotationStatus reports whether s is a writable quotation status.
func ValidQuotationStatus(s string) bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted:
		return true
	}
	return false
}

// Quotation is a pre-sale price proposal (offerte). It holds a snapshot of
// the client name/address, not a live reference. Number has the shape
// OFF-<unix-millis> and is immutable after creation.
type Quotation struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Number           string     `json:"number"`
	ClientID         string     `json:"client_id,omitempty"`
	ClientName       string     `json:"client_name"`
	ClientStreet     string     `json:"client_street,omitempty"`
	ClientPostalCode string     `json:"client_postal_code,omitempty"`
	ClientCity       string     `json:"client_city,omitempty"`
	Items            []LineItem `json:"items,omitempty"`
	// Legacy flat shape: records that predate the line-item model carry a
	// single amount and rate instead of Items.
	Amount     *Amount    `json:"amount,omitempty"`
	FlatVAT    *Amount    `json:"vat_rate,omitempty"`
	Status     string     `json:"status"`
	IssueDate  time.Time  `json:"issue_date"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	// InvoiceID back-references the invoice this quotation was converted into.
	InvoiceID string          `json:"invoice_id,omitempty"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	VATTotal  decimal.Decimal `json:"vat_total"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
