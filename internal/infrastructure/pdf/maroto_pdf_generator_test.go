package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/pdf"
)

func supplier() *entity.Profile {
	return &entity.Profile{
		UserID:      "u1",
		CompanyName: "Jansen Webdesign",
		Street:      "Keizersgracht 1",
		PostalCode:  "1015 CC",
		City:        "Amsterdam",
		KvKNumber:   "12345678",
		VATNumber:   "NL001234567B01",
		IBAN:        "NL91ABNA0417164300",
	}
}

func items() []entity.LineItem {
	return []entity.LineItem{
		{Description: "Ontwerp homepage", UnitPrice: entity.AmountFromInt(100), Quantity: entity.AmountFromInt(2), VATRate: entity.AmountFromInt(21)},
		{Description: "Hosting", UnitPrice: entity.AmountFromInt(50), Quantity: entity.AmountFromInt(1), VATRate: entity.AmountFromInt(9)},
	}
}

func TestQuotationPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	expiry := time.Now().AddDate(0, 0, 14)
	q := &entity.Quotation{
		ID:         "q1",
		Number:     "OFF-1750000000000",
		ClientName: "Acme BV",
		ClientCity: "Rotterdam",
		Items:      items(),
		Status:     entity.QuotationStatusDraft,
		IssueDate:  time.Now(),
		ExpiryDate: &expiry,
		Notes:      "Geldig onder voorbehoud.",
	}

	data, err := g.QuotationPDF(context.Background(), q, supplier())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "output must be a PDF document")
}

func TestInvoicePDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	due := time.Now().AddDate(0, 0, 30)
	inv := &entity.Invoice{
		ID:         "i1",
		Number:     "FAC-2026-0001",
		ClientName: "Acme BV",
		Items:      items(),
		Status:     entity.InvoiceStatusSent,
		IssueDate:  time.Now(),
		DueDate:    &due,
	}

	data, err := g.InvoicePDF(context.Background(), inv, supplier())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestInvoicePDF_LegacyFlatAmount(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	amount := entity.AmountFromInt(1000)
	rate := entity.AmountFromInt(21)
	inv := &entity.Invoice{
		ID:         "i2",
		Number:     "FAC-2026-0002",
		ClientName: "Acme BV",
		Amount:     &amount,
		FlatVAT:    &rate,
		Status:     entity.InvoiceStatusDraft,
		IssueDate:  time.Now(),
	}

	data, err := g.InvoicePDF(context.Background(), inv, supplier())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]), "flat-amount records render without items")
}
