package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

// LineItem is a billable line in request and response bodies. Numeric fields
// tolerate numbers and quoted numbers; unparseable values decode to zero
// (entity.Amount semantics), so a sloppy client never breaks a document.
type LineItem struct {
	Description string        `json:"description"`
	UnitPrice   entity.Amount `json:"unit_price"`
	Quantity    entity.Amount `json:"quantity"`
	VATRate     entity.Amount `json:"vat_rate"`
}

// RateAmount is one VAT rate with its summed amount, in first-occurrence
// order of the rate across the line items.
type RateAmount struct {
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// CreateQuotationRequest body for POST /api/quotations.
// Number, status default (draft) and totals are server-controlled.
type CreateQuotationRequest struct {
	ClientID         string     `json:"client_id,omitempty"`
	ClientName       string     `json:"client_name"`
	ClientStreet     string     `json:"client_street,omitempty"`
	ClientPostalCode string     `json:"client_postal_code,omitempty"`
	ClientCity       string     `json:"client_city,omitempty"`
	Items            []LineItem `json:"items,omitempty"`
	// Legacy flat shape for clients that still send a single amount.
	Amount     *entity.Amount `json:"amount,omitempty"`
	VATRate    *entity.Amount `json:"vat_rate,omitempty"`
	IssueDate  *time.Time     `json:"issue_date,omitempty"`
	ExpiryDate *time.Time     `json:"expiry_date,omitempty"`
	Notes      string         `json:"notes,omitempty"`
}

// UpdateQuotationRequest body for PUT /api/quotations/:id. Only fields
// present change; id, number, owner and the invoice back-reference are
// server-controlled.
type UpdateQuotationRequest struct {
	ClientID         *string     `json:"client_id,omitempty"`
	ClientName       *string     `json:"client_name,omitempty"`
	ClientStreet     *string     `json:"client_street,omitempty"`
	ClientPostalCode *string     `json:"client_postal_code,omitempty"`
	ClientCity       *string     `json:"client_city,omitempty"`
	Items            *[]LineItem `json:"items,omitempty"`
	Status           *string     `json:"status,omitempty"`
	IssueDate        *time.Time  `json:"issue_date,omitempty"`
	ExpiryDate       *time.Time  `json:"expiry_date,omitempty"`
	Notes            *string     `json:"notes,omitempty"`
}

// QuotationResponse is a quotation in responses. Monetary totals are rounded
// to two decimals at this boundary only.
type QuotationResponse struct {
	ID               string          `json:"id"`
	Number           string          `json:"number"`
	ClientID         string          `json:"client_id,omitempty"`
	ClientName       string          `json:"client_name"`
	ClientStreet     string          `json:"client_street,omitempty"`
	ClientPostalCode string          `json:"client_postal_code,omitempty"`
	ClientCity       string          `json:"client_city,omitempty"`
	Items            []LineItem      `json:"items,omitempty"`
	Status           string          `json:"status"`
	IssueDate        time.Time       `json:"issue_date"`
	ExpiryDate       *time.Time      `json:"expiry_date,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	InvoiceID        string          `json:"invoice_id,omitempty"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	VATBreakdown     []RateAmount    `json:"vat_breakdown,omitempty"`
	VATTotal         decimal.Decimal `json:"vat_total"`
	Total            decimal.Decimal `json:"total"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// QuotationEnvelope wraps a single quotation.
type QuotationEnvelope struct {
	Quotation *QuotationResponse `json:"quotation"`
}

// QuotationListEnvelope wraps a quotation listing.
type QuotationListEnvelope struct {
	Quotations []*QuotationResponse `json:"quotations"`
}

// CreateInvoiceRequest body for POST /api/invoices.
type CreateInvoiceRequest struct {
	ClientID         string         `json:"client_id,omitempty"`
	ClientName       string         `json:"client_name"`
	ClientStreet     string         `json:"client_street,omitempty"`
	ClientPostalCode string         `json:"client_postal_code,omitempty"`
	ClientCity       string         `json:"client_city,omitempty"`
	Items            []LineItem     `json:"items,omitempty"`
	Amount           *entity.Amount `json:"amount,omitempty"`
	VATRate          *entity.Amount `json:"vat_rate,omitempty"`
	IssueDate        *time.Time     `json:"issue_date,omitempty"`
	DueDate          *time.Time     `json:"due_date,omitempty"`
	PaymentTermDays  *int           `json:"payment_term_days,omitempty"`
	Notes            string         `json:"notes,omitempty"`
}

// UpdateInvoiceRequest body for PUT /api/invoices/:id. Only fields present
// change; id, number, owner and the quotation back-reference are
// server-controlled. Setting status to "paid" stamps the paid date when none
// is given.
type UpdateInvoiceRequest struct {
	ClientID         *string     `json:"client_id,omitempty"`
	ClientName       *string     `json:"client_name,omitempty"`
	ClientStreet     *string     `json:"client_street,omitempty"`
	ClientPostalCode *string     `json:"client_postal_code,omitempty"`
	ClientCity       *string     `json:"client_city,omitempty"`
	Items            *[]LineItem `json:"items,omitempty"`
	Status           *string     `json:"status,omitempty"`
	IssueDate        *time.Time  `json:"issue_date,omitempty"`
	DueDate          *time.Time  `json:"due_date,omitempty"`
	PaidDate         *time.Time  `json:"paid_date,omitempty"`
	PaymentTermDays  *int        `json:"payment_term_days,omitempty"`
	Notes            *string     `json:"notes,omitempty"`
}

// InvoiceResponse is an invoice in responses. Status is the display status:
// a sent invoice past its due date reads "overdue" without the stored field
// changing.
type InvoiceResponse struct {
	ID               string          `json:"id"`
	Number           string          `json:"number"`
	ClientID         string          `json:"client_id,omitempty"`
	ClientName       string          `json:"client_name"`
	ClientStreet     string          `json:"client_street,omitempty"`
	ClientPostalCode string          `json:"client_postal_code,omitempty"`
	ClientCity       string          `json:"client_city,omitempty"`
	Items            []LineItem      `json:"items,omitempty"`
	Status           string          `json:"status"`
	IssueDate        time.Time       `json:"issue_date"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	PaidDate         *time.Time      `json:"paid_date,omitempty"`
	PaymentTermDays  int             `json:"payment_term_days,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	QuotationID      string          `json:"quotation_id,omitempty"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	VATBreakdown     []RateAmount    `json:"vat_breakdown,omitempty"`
	VATTotal         decimal.Decimal `json:"vat_total"`
	Total            decimal.Decimal `json:"total"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// InvoiceEnvelope wraps a single invoice.
type InvoiceEnvelope struct {
	Invoice *InvoiceResponse `json:"invoice"`
}

// InvoiceListEnvelope wraps an invoice listing.
type InvoiceListEnvelope struct {
	Invoices []*InvoiceResponse `json:"invoices"`
}
