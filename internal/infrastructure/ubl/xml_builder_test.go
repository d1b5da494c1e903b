package ubl_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/ubl"
)

func testInvoice() *entity.Invoice {
	due := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	return &entity.Invoice{
		ID:         "i1",
		Number:     "FAC-2026-0001",
		ClientName: "Acme BV",
		ClientCity: "Rotterdam",
		Items: []entity.LineItem{
			{Description: "Ontwerp", UnitPrice: entity.AmountFromInt(100), Quantity: entity.AmountFromInt(2), VATRate: entity.AmountFromInt(21)},
			{Description: "Hosting", UnitPrice: entity.AmountFromInt(50), Quantity: entity.AmountFromInt(1), VATRate: entity.AmountFromInt(9)},
		},
		Status:    entity.InvoiceStatusSent,
		IssueDate: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		DueDate:   &due,
	}
}

func testSupplier() *entity.Profile {
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

func buildDoc(t *testing.T, inv *entity.Invoice) *etree.Document {
	t.Helper()
	svc := ubl.NewXMLBuilderService()
	data, err := svc.Build(inv, testSupplier())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data), "output must parse back as XML")
	return doc
}

func TestBuild_InvoiceHeader(t *testing.T) {
	doc := buildDoc(t, testInvoice())
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Invoice", root.Tag)

	assert.Equal(t, "FAC-2026-0001", root.FindElement("cbc:ID").Text())
	assert.Equal(t, "2026-06-15", root.FindElement("cbc:IssueDate").Text())
	assert.Equal(t, "2026-07-15", root.FindElement("cbc:DueDate").Text())
	assert.Equal(t, "380", root.FindElement("cbc:InvoiceTypeCode").Text())
	assert.Equal(t, "EUR", root.FindElement("cbc:DocumentCurrencyCode").Text())
}

func TestBuild_Parties(t *testing.T) {
	doc := buildDoc(t, testInvoice())
	root := doc.Root()

	supplierName := root.FindElement("cac:AccountingSupplierParty/cac:Party/cac:PartyName/cbc:Name")
	require.NotNil(t, supplierName)
	assert.Equal(t, "Jansen Webdesign", supplierName.Text())

	vat := root.FindElement("cac:AccountingSupplierParty/cac:Party/cac:PartyTaxScheme/cbc:CompanyID")
	require.NotNil(t, vat)
	assert.Equal(t, "NL001234567B01", vat.Text())

	kvk := root.FindElement("cac:AccountingSupplierParty/cac:Party/cac:PartyLegalEntity/cbc:CompanyID")
	require.NotNil(t, kvk)
	assert.Equal(t, "12345678", kvk.Text())

	customerName := root.FindElement("cac:AccountingCustomerParty/cac:Party/cac:PartyName/cbc:Name")
	require.NotNil(t, customerName)
	assert.Equal(t, "Acme BV", customerName.Text())
}

func TestBuild_TotalsAndTaxBreakdown(t *testing.T) {
	doc := buildDoc(t, testInvoice())
	root := doc.Root()

	// 200 @ 21% = 42, 50 @ 9% = 4.50
	taxAmount := root.FindElement("cac:TaxTotal/cbc:TaxAmount")
	require.NotNil(t, taxAmount)
	assert.Equal(t, "46.50", taxAmount.Text())
	assert.Equal(t, "EUR", taxAmount.SelectAttrValue("currencyID", ""))

	subtotals := root.FindElements("cac:TaxTotal/cac:TaxSubtotal")
	require.Len(t, subtotals, 2, "one TaxSubtotal per distinct rate")
	assert.Equal(t, "200.00", subtotals[0].FindElement("cbc:TaxableAmount").Text())
	assert.Equal(t, "42.00", subtotals[0].FindElement("cbc:TaxAmount").Text())
	assert.Equal(t, "21.00", subtotals[0].FindElement("cac:TaxCategory/cbc:Percent").Text())

	payable := root.FindElement("cac:LegalMonetaryTotal/cbc:PayableAmount")
	require.NotNil(t, payable)
	assert.Equal(t, "296.50", payable.Text())
}

func TestBuild_InvoiceLines(t *testing.T) {
	doc := buildDoc(t, testInvoice())
	root := doc.Root()

	lines := root.FindElements("cac:InvoiceLine")
	require.Len(t, lines, 2)

	assert.Equal(t, "1", lines[0].FindElement("cbc:ID").Text())
	assert.Equal(t, "2", lines[0].FindElement("cbc:InvoicedQuantity").Text())
	assert.Equal(t, "200.00", lines[0].FindElement("cbc:LineExtensionAmount").Text())
	assert.Equal(t, "Ontwerp", lines[0].FindElement("cac:Item/cbc:Name").Text())
	assert.Equal(t, "100.00", lines[0].FindElement("cac:Price/cbc:PriceAmount").Text())
}

func TestBuild_PaymentMeansWithIBAN(t *testing.T) {
	doc := buildDoc(t, testInvoice())
	root := doc.Root()

	iban := root.FindElement("cac:PaymentMeans/cac:PayeeFinancialAccount/cbc:ID")
	require.NotNil(t, iban)
	assert.Equal(t, "NL91ABNA0417164300", iban.Text())
	assert.Equal(t, "30", root.FindElement("cac:PaymentMeans/cbc:PaymentMeansCode").Text())
}

func TestBuild_FlatAmountBecomesSingleLine(t *testing.T) {
	amount := entity.AmountFromInt(1000)
	rate := entity.AmountFromInt(21)
	inv := &entity.Invoice{
		ID:         "i2",
		Number:     "FAC-2026-0002",
		ClientName: "Acme BV",
		Amount:     &amount,
		FlatVAT:    &rate,
		Status:     entity.InvoiceStatusDraft,
		IssueDate:  time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	doc := buildDoc(t, inv)
	root := doc.Root()

	lines := root.FindElements("cac:InvoiceLine")
	require.Len(t, lines, 1)
	assert.Equal(t, "1000.00", lines[0].FindElement("cbc:LineExtensionAmount").Text())
	assert.Equal(t, "1210.00", root.FindElement("cac:LegalMonetaryTotal/cbc:PayableAmount").Text())
}

func TestBuild_ZeroRateCategoryZ(t *testing.T) {
	inv := testInvoice()
	inv.Items = []entity.LineItem{
		{Description: "Export", UnitPrice: entity.AmountFromInt(100), Quantity: entity.AmountFromInt(1), VATRate: entity.AmountFromInt(0)},
	}
	doc := buildDoc(t, inv)
	root := doc.Root()

	category := root.FindElement("cac:TaxTotal/cac:TaxSubtotal/cac:TaxCategory/cbc:ID")
	require.NotNil(t, category)
	assert.Equal(t, "Z", category.Text())
}

func TestBuild_NilInputsRejected(t *testing.T) {
	svc := ubl.NewXMLBuilderService()
	_, err := svc.Build(nil, testSupplier())
	assert.Error(t, err)
	_, err = svc.Build(testInvoice(), nil)
	assert.Error(t, err)
}
