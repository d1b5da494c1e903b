package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses. "overdue" is derived at read time and never persisted,
// so it is not a writable status.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// ValidInvoiceStatus reports whether s is a writable invoice status.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid:
		return true
	}
	return false
}

// DefaultPaymentTermDays is applied when a document does not specify one.
const DefaultPaymentTermDays = 30

// Invoice is a billing document (factuur). Number has the shape
// FAC-<year>-<zero-padded counter> and is immutable after creation.
type Invoice struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Number           string     `json:"number"`
	ClientID         string     `json:"client_id,omitempty"`
	ClientName       string     `json:"client_name"`
	ClientStreet     string     `json:"client_street,omitempty"`
	ClientPostalCode string     `json:"client_postal_code,omitempty"`
	ClientCity       string     `json:"client_city,omitempty"`
	Items            []LineItem `json:"items,omitempty"`
	// Legacy flat shape, see Quotation.
	Amount          *Amount    `json:"amount,omitempty"`
	FlatVAT         *Amount    `json:"vat_rate,omitempty"`
	Status          string     `json:"status"`
	IssueDate       time.Time  `json:"issue_date"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	PaidDate        *time.Time `json:"paid_date,omitempty"`
	PaymentTermDays int        `json:"payment_term_days,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	// QuotationID back-references the quotation this invoice originated from.
	QuotationID string          `json:"quotation_id,omitempty"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	VATTotal    decimal.Decimal `json:"vat_total"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DisplayStatus returns the effective status for display: "overdue" when the
// invoice was sent and its due date lies strictly before now. The stored
// status field is left unchanged.
func (i *Invoice) DisplayStatus(now time.Time) string {
	if i.Status == InvoiceStatusSent && i.DueDate != nil && i.DueDate.Before(now) {
		return InvoiceStatusOverdue
	}
	return i.Status
}
