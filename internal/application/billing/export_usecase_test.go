package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurdesk/facturatie-api/internal/application/billing"
	"github.com/factuurdesk/facturatie-api/internal/application/dto"
	"github.com/factuurdesk/facturatie-api/internal/domain"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kvrepo"
	infrapdf "github.com/factuurdesk/facturatie-api/internal/infrastructure/pdf"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/ubl"
)

func newExportFixture(t *testing.T) (*billing.ExportUseCase, *billing.QuotationUseCase, *billing.InvoiceUseCase) {
	t.Helper()
	store := kv.NewMemoryStore()
	quotationRepo := kvrepo.NewQuotationRepository(store)
	invoiceRepo := kvrepo.NewInvoiceRepository(store)
	profileRepo := kvrepo.NewProfileRepository(store)

	export := billing.NewExportUseCase(
		quotationRepo, invoiceRepo, profileRepo,
		infrapdf.NewMarotoPDFGenerator(), ubl.NewXMLBuilderService(),
	)
	return export,
		billing.NewQuotationUseCase(quotationRepo, invoiceRepo, invoiceRepo),
		billing.NewInvoiceUseCase(invoiceRepo, invoiceRepo)
}

func TestExportQuotationPDF(t *testing.T) {
	export, quotationUC, _ := newExportFixture(t)
	ctx := context.Background()

	q, err := quotationUC.Create(ctx, testUser, dto.CreateQuotationRequest{
		ClientName: "Acme BV",
		Items:      lineItems(),
	})
	require.NoError(t, err)

	data, filename, err := export.QuotationPDF(ctx, testUser, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Regexp(t, `^offerte_OFF-\d+\.pdf$`, filename)
}

func TestExportInvoicePDFAndUBL(t *testing.T) {
	export, _, invoiceUC := newExportFixture(t)
	ctx := context.Background()

	inv, err := invoiceUC.Create(ctx, testUser, dto.CreateInvoiceRequest{
		ClientName: "Acme BV",
		Items:      lineItems(),
	})
	require.NoError(t, err)

	data, filename, err := export.InvoicePDF(ctx, testUser, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Regexp(t, `^factuur_FAC-\d{4}-\d+\.pdf$`, filename)

	xml, filename, err := export.InvoiceUBL(ctx, testUser, inv.ID)
	require.NoError(t, err)
	assert.Contains(t, string(xml), "<Invoice")
	assert.Contains(t, string(xml), inv.Number)
	assert.Regexp(t, `^factuur_FAC-\d{4}-\d+\.xml$`, filename)
}

func TestExport_MissingDocument(t *testing.T) {
	export, _, _ := newExportFixture(t)
	ctx := context.Background()

	_, _, err := export.QuotationPDF(ctx, testUser, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, _, err = export.InvoicePDF(ctx, testUser, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, _, err = export.InvoiceUBL(ctx, testUser, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExport_WorksWithoutProfile(t *testing.T) {
	export, quotationUC, _ := newExportFixture(t)
	ctx := context.Background()

	q, err := quotationUC.Create(ctx, testUser, dto.CreateQuotationRequest{ClientName: "Acme BV"})
	require.NoError(t, err)

	data, _, err := export.QuotationPDF(ctx, testUser, q.ID)
	require.NoError(t, err, "missing profile falls back to blanks")
	assert.NotEmpty(t, data)
}
