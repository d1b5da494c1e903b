package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/factuurdesk/facturatie-api/internal/domain"
	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/domain/repository"
)

// ExportUseCase renders quotations and invoices as downloadable documents.
type ExportUseCase struct {
	quotationRepo repository.QuotationRepository
	invoiceRepo   repository.InvoiceRepository
	profileRepo   repository.ProfileRepository
	pdf           DocumentPDFGenerator
	ubl           InvoiceUBLBuilder
}

// NewExportUseCase builds the use case.
func NewExportUseCase(
	quotationRepo repository.QuotationRepository,
	invoiceRepo repository.InvoiceRepository,
	profileRepo repository.ProfileRepository,
	pdf DocumentPDFGenerator,
	ubl InvoiceUBLBuilder,
) *ExportUseCase {
	return &ExportUseCase{
		quotationRepo: quotationRepo,
		invoiceRepo:   invoiceRepo,
		profileRepo:   profileRepo,
		pdf:           pdf,
		ubl:           ubl,
	}
}

// QuotationPDF renders the quotation and returns the bytes plus a filename
// derived from the document number.
func (uc *ExportUseCase) QuotationPDF(ctx context.Context, userID, id string) ([]byte, string, error) {
	q, err := uc.quotationRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, "", fmt.Errorf("export: load quotation: %w", err)
	}
	if q == nil {
		return nil, "", domain.ErrNotFound
	}
	supplier, err := uc.supplier(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.QuotationPDF(ctx, q, supplier)
	if err != nil {
		return nil, "", fmt.Errorf("export: render quotation pdf: %w", err)
	}
	return data, fileName("offerte", q.Number, "pdf"), nil
}

// InvoicePDF renders the invoice.
func (uc *ExportUseCase) InvoicePDF(ctx context.Context, userID, id string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, "", fmt.Errorf("export: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	supplier, err := uc.supplier(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.InvoicePDF(ctx, inv, supplier)
	if err != nil {
		return nil, "", fmt.Errorf("export: render invoice pdf: %w", err)
	}
	return data, fileName("factuur", inv.Number, "pdf"), nil
}

// InvoiceUBL renders the invoice as a UBL 2.1 XML document.
func (uc *ExportUseCase) InvoiceUBL(ctx context.Context, userID, id string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, "", fmt.Errorf("export: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	supplier, err := uc.supplier(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.ubl.Build(inv, supplier)
	if err != nil {
		return nil, "", fmt.Errorf("export: build invoice ubl: %w", err)
	}
	return data, fileName("factuur", inv.Number, "xml"), nil
}

// supplier loads the company profile. Exports work without one, the
// generators fall back to blanks.
func (uc *ExportUseCase) supplier(ctx context.Context, userID string) (*entity.Profile, error) {
	p, err := uc.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("export: load profile: %w", err)
	}
	if p == nil {
		p = &entity.Profile{UserID: userID}
	}
	return p, nil
}

func fileName(kind, number, ext string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, number)
	return fmt.Sprintf("%s_%s.%s", kind, safe, ext)
}
