// Package ubl builds UBL 2.1 Invoice documents for exchange with Dutch
// accounting software. The output is unsigned XML.
package ubl

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/factuurdesk/facturatie-api/internal/domain/document"
	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

// Official UBL 2.1 namespaces.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	ublVersion   = "2.1"
	currencyCode = "EUR"
	countryCode  = "NL"
)

// XMLBuilderService implements billing.InvoiceUBLBuilder with etree.
type XMLBuilderService struct{}

// NewXMLBuilderService creates the service.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// Build renders the invoice as a UBL 2.1 Invoice document.
func (s *XMLBuilderService) Build(inv *entity.Invoice, supplier *entity.Profile) ([]byte, error) {
	if inv == nil || supplier == nil {
		return nil, fmt.Errorf("ubl: invoice and supplier are required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	root.CreateElement("cbc:UBLVersionID").SetText(ublVersion)
	root.CreateElement("cbc:ID").SetText(inv.Number)
	root.CreateElement("cbc:IssueDate").SetText(inv.IssueDate.Format("2006-01-02"))
	if inv.DueDate != nil {
		root.CreateElement("cbc:DueDate").SetText(inv.DueDate.Format("2006-01-02"))
	}
	// 380 = commercial invoice (UNCL1001)
	root.CreateElement("cbc:InvoiceTypeCode").SetText("380")
	if inv.Notes != "" {
		root.CreateElement("cbc:Note").SetText(inv.Notes)
	}
	root.CreateElement("cbc:DocumentCurrencyCode").SetText(currencyCode)

	writeSupplierParty(root, supplier)
	writeCustomerParty(root, inv)

	if supplier.IBAN != "" {
		pm := root.CreateElement("cac:PaymentMeans")
		// 30 = credit transfer (UNCL4461)
		pm.CreateElement("cbc:PaymentMeansCode").SetText("30")
		if inv.DueDate != nil {
			pm.CreateElement("cbc:PaymentDueDate").SetText(inv.DueDate.Format("2006-01-02"))
		}
		account := pm.CreateElement("cac:PayeeFinancialAccount")
		account.CreateElement("cbc:ID").SetText(supplier.IBAN)
	}

	subtotal, vat, total := document.Totals(inv.Items, inv.Amount, inv.FlatVAT)
	writeTaxTotal(root, inv, subtotal, vat)
	writeMonetaryTotal(root, subtotal, total)
	writeInvoiceLines(root, inv)

	doc.Indent(2)
	return doc.WriteToBytes()
}

func writeSupplierParty(root *etree.Element, supplier *entity.Profile) {
	party := root.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")
	name := supplier.CompanyName
	if name == "" {
		name = supplier.ContactName
	}
	party.CreateElement("cac:PartyName").CreateElement("cbc:Name").SetText(name)
	writeAddress(party, supplier.Street, supplier.PostalCode, supplier.City, supplier.Country)
	if supplier.VATNumber != "" {
		scheme := party.CreateElement("cac:PartyTaxScheme")
		scheme.CreateElement("cbc:CompanyID").SetText(supplier.VATNumber)
		scheme.CreateElement("cac:TaxScheme").CreateElement("cbc:ID").SetText("VAT")
	}
	if supplier.KvKNumber != "" {
		legal := party.CreateElement("cac:PartyLegalEntity")
		legal.CreateElement("cbc:RegistrationName").SetText(name)
		legal.CreateElement("cbc:CompanyID").SetText(supplier.KvKNumber)
	}
}

func writeCustomerParty(root *etree.Element, inv *entity.Invoice) {
	party := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	party.CreateElement("cac:PartyName").CreateElement("cbc:Name").SetText(inv.ClientName)
	writeAddress(party, inv.ClientStreet, inv.ClientPostalCode, inv.ClientCity, "")
}

func writeAddress(party *etree.Element, street, postalCode, city, country string) {
	if street == "" && postalCode == "" && city == "" {
		return
	}
	addr := party.CreateElement("cac:PostalAddress")
	if street != "" {
		addr.CreateElement("cbc:StreetName").SetText(street)
	}
	if city != "" {
		addr.CreateElement("cbc:CityName").SetText(city)
	}
	if postalCode != "" {
		addr.CreateElement("cbc:PostalZone").SetText(postalCode)
	}
	code := country
	if code == "" {
		code = countryCode
	}
	addr.CreateElement("cac:Country").CreateElement("cbc:IdentificationCode").SetText(code)
}

func writeTaxTotal(root *etree.Element, inv *entity.Invoice, subtotal, vat decimal.Decimal) {
	taxTotal := root.CreateElement("cac:TaxTotal")
	amountEl(taxTotal, "cbc:TaxAmount", vat)

	if len(inv.Items) > 0 {
		for _, rt := range document.VATByRate(inv.Items) {
			taxable := decimal.Decimal{}
			for _, it := range inv.Items {
				if it.VATRate.Decimal.Equal(rt.Rate) {
					taxable = taxable.Add(document.LineTotal(it))
				}
			}
			writeTaxSubtotal(taxTotal, taxable, rt.Amount, rt.Rate)
		}
		return
	}
	rate := decimal.Decimal{}
	if inv.FlatVAT != nil {
		rate = inv.FlatVAT.Decimal
	}
	writeTaxSubtotal(taxTotal, subtotal, vat, rate)
}

func writeTaxSubtotal(taxTotal *etree.Element, taxable, amount, rate decimal.Decimal) {
	sub := taxTotal.CreateElement("cac:TaxSubtotal")
	amountEl(sub, "cbc:TaxableAmount", taxable)
	amountEl(sub, "cbc:TaxAmount", amount)
	category := sub.CreateElement("cac:TaxCategory")
	category.CreateElement("cbc:ID").SetText(vatCategory(rate))
	category.CreateElement("cbc:Percent").SetText(rate.StringFixed(2))
	category.CreateElement("cac:TaxScheme").CreateElement("cbc:ID").SetText("VAT")
}

func writeMonetaryTotal(root *etree.Element, subtotal, total decimal.Decimal) {
	monetary := root.CreateElement("cac:LegalMonetaryTotal")
	amountEl(monetary, "cbc:LineExtensionAmount", subtotal)
	amountEl(monetary, "cbc:TaxExclusiveAmount", subtotal)
	amountEl(monetary, "cbc:TaxInclusiveAmount", total)
	amountEl(monetary, "cbc:PayableAmount", total)
}

func writeInvoiceLines(root *etree.Element, inv *entity.Invoice) {
	items := inv.Items
	if len(items) == 0 {
		// Flat-amount records become a single synthetic line.
		price := entity.Amount{}
		if inv.Amount != nil {
			price = *inv.Amount
		}
		rate := entity.Amount{}
		if inv.FlatVAT != nil {
			rate = *inv.FlatVAT
		}
		items = []entity.LineItem{{
			Description: "Bedrag",
			UnitPrice:   price,
			Quantity:    entity.AmountFromInt(1),
			VATRate:     rate,
		}}
	}
	for i, it := range items {
		line := root.CreateElement("cac:InvoiceLine")
		line.CreateElement("cbc:ID").SetText(fmt.Sprintf("%d", i+1))

		qty := it.Quantity.Decimal
		if qty.IsZero() {
			qty = decimal.NewFromInt(1)
		}
		qtyEl := line.CreateElement("cbc:InvoicedQuantity")
		// C62 = unit (UN/ECE rec 20)
		qtyEl.CreateAttr("unitCode", "C62")
		qtyEl.SetText(qty.String())

		amountEl(line, "cbc:LineExtensionAmount", document.LineTotal(it))

		item := line.CreateElement("cac:Item")
		item.CreateElement("cbc:Description").SetText(it.Description)
		item.CreateElement("cbc:Name").SetText(it.Description)
		category := item.CreateElement("cac:ClassifiedTaxCategory")
		category.CreateElement("cbc:ID").SetText(vatCategory(it.VATRate.Decimal))
		category.CreateElement("cbc:Percent").SetText(it.VATRate.Decimal.StringFixed(2))
		category.CreateElement("cac:TaxScheme").CreateElement("cbc:ID").SetText("VAT")

		price := line.CreateElement("cac:Price")
		amountEl(price, "cbc:PriceAmount", it.UnitPrice.Decimal)
	}
}

func amountEl(parent *etree.Element, tag string, d decimal.Decimal) {
	el := parent.CreateElement(tag)
	el.CreateAttr("currencyID", currencyCode)
	el.SetText(d.Round(2).StringFixed(2))
}

// vatCategory maps a Dutch VAT percentage onto the UNCL5305 category code:
// S for the standard and reduced rates, Z for zero.
func vatCategory(rate decimal.Decimal) string {
	if rate.IsZero() {
		return "Z"
	}
	return "S"
}
