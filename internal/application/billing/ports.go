package billing

import (
	"context"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

// DocumentPDFGenerator renders a quotation or invoice as PDF bytes.
type DocumentPDFGenerator interface {
	QuotationPDF(ctx context.Context, q *entity.Quotation, supplier *entity.Profile) ([]byte, error)
	InvoicePDF(ctx context.Context, inv *entity.Invoice, supplier *entity.Profile) ([]byte, error)
}

// InvoiceUBLBuilder renders an invoice as a UBL 2.1 XML document.
type InvoiceUBLBuilder interface {
	Build(inv *entity.Invoice, supplier *entity.Profile) ([]byte, error)
}
