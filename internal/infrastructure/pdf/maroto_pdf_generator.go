// Package pdf renders quotations and invoices as A4 documents.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: company name  │  OFFERTE/FACTUUR + number + dates   │
//	│  ───────────────────────────────────────────────────────── │
//	│  SUPPLIER: address / KvK / BTW                              │
//	│  CUSTOMER: name + address snapshot                          │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Aantal | Omschrijving | Prijs | BTW% | Bedrag       │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALS: Subtotaal / BTW per rate / Totaal                  │
//	│  FOOTER: payment instructions (invoices) / notes            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/factuurdesk/facturatie-api/internal/domain/document"
	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 140}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Dutch number formatting: 1.234,56
var dutchPrinter = message.NewPrinter(language.Dutch)

// MarotoPDFGenerator implements billing.DocumentPDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// QuotationPDF renders the quotation and returns its bytes.
func (g *MarotoPDFGenerator) QuotationPDF(_ context.Context, q *entity.Quotation, supplier *entity.Profile) ([]byte, error) {
	doc := documentData{
		Kind:      "OFFERTE",
		Number:    q.Number,
		IssueDate: q.IssueDate,
		Items:     q.Items,
		Amount:    q.Amount,
		FlatVAT:   q.FlatVAT,
		Notes:     q.Notes,
		Client: clientSnapshot{
			Name:       q.ClientName,
			Street:     q.ClientStreet,
			PostalCode: q.ClientPostalCode,
			City:       q.ClientCity,
		},
	}
	if q.ExpiryDate != nil {
		doc.SecondDateLabel = "Geldig tot"
		doc.SecondDate = q.ExpiryDate
	}
	return g.render(doc, supplier)
}

// InvoicePDF renders the invoice and returns its bytes.
func (g *MarotoPDFGenerator) InvoicePDF(_ context.Context, inv *entity.Invoice, supplier *entity.Profile) ([]byte, error) {
	doc := documentData{
		Kind:      "FACTUUR",
		Number:    inv.Number,
		IssueDate: inv.IssueDate,
		Items:     inv.Items,
		Amount:    inv.Amount,
		FlatVAT:   inv.FlatVAT,
		Notes:     inv.Notes,
		Invoice:   true,
		Client: clientSnapshot{
			Name:       inv.ClientName,
			Street:     inv.ClientStreet,
			PostalCode: inv.ClientPostalCode,
			City:       inv.ClientCity,
		},
	}
	if inv.DueDate != nil {
		doc.SecondDateLabel = "Vervaldatum"
		doc.SecondDate = inv.DueDate
	}
	return g.render(doc, supplier)
}

type clientSnapshot struct {
	Name       string
	Street     string
	PostalCode string
	City       string
}

type documentData struct {
	Kind            string
	Number          string
	IssueDate       time.Time
	SecondDateLabel string
	SecondDate      *time.Time
	Items           []entity.LineItem
	Amount          *entity.Amount
	FlatVAT         *entity.Amount
	Notes           string
	Invoice         bool
	Client          clientSnapshot
}

func (g *MarotoPDFGenerator) render(doc documentData, supplier *entity.Profile) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Kind+" "+doc.Number, true).
		WithAuthor(supplier.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(supplier))
	m.AddRows(customerRow(doc.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(doc) {
		m.AddRows(r)
	}

	for _, r := range footerRows(doc, supplier) {
		m.AddRows(r)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: company name (left), document kind + number + dates (right).
func headerRow(doc documentData, supplier *entity.Profile) core.Row {
	name := nonEmpty(supplier.CompanyName, supplier.ContactName)
	r := row.New(22).Add(
		col.New(7).Add(
			text.New(nonEmpty(name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(doc.Kind, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
			text.New("Datum: "+doc.IssueDate.Format("02-01-2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
	if doc.SecondDate != nil {
		r = row.New(22).Add(
			col.New(7).Add(
				text.New(nonEmpty(name, "—"), props.Text{
					Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
				}),
			),
			col.New(5).Add(
				text.New(doc.Kind, props.Text{
					Style: fontstyle.Bold, Size: 12, Align: align.Right,
					Color: colorPrimary, Top: 1,
				}),
				text.New(doc.Number, props.Text{
					Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
				}),
				text.New("Datum: "+doc.IssueDate.Format("02-01-2006"), props.Text{
					Size: 8, Align: align.Right, Top: 14, Color: colorGray,
				}),
				text.New(doc.SecondDateLabel+": "+doc.SecondDate.Format("02-01-2006"), props.Text{
					Size: 8, Align: align.Right, Top: 18, Color: colorGray,
				}),
			),
		)
	}
	return r
}

// supplierRow: sender address line with KvK and BTW numbers.
func supplierRow(supplier *entity.Profile) core.Row {
	address := joinNonEmpty(" | ",
		joinNonEmpty(", ", supplier.Street, joinNonEmpty(" ", supplier.PostalCode, supplier.City)),
		prefix("KvK: ", supplier.KvKNumber),
		prefix("BTW: ", supplier.VATNumber),
		prefix("Tel: ", supplier.Phone),
		supplier.Email,
	)
	return row.New(10).Add(
		col.New(12).Add(
			text.New("AFZENDER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(address, "—"), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// customerRow: billing address snapshot stored on the document.
func customerRow(c clientSnapshot) core.Row {
	address := joinNonEmpty(", ", c.Street, joinNonEmpty(" ", c.PostalCode, c.City))
	return row.New(14).Add(
		col.New(12).Add(
			text.New("AAN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(c.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(nonEmpty(address, ""), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Aantal", 1, align.Center),
		h("Omschrijving", 5, align.Left),
		h("Prijs", 2, align.Right),
		h("BTW%", 1, align.Center),
		h("Bedrag", 3, align.Right),
	)
}

// tableItemRows: one row per line item. Documents without items get a
// single row from the flat amount.
func tableItemRows(doc documentData) []core.Row {
	if len(doc.Items) == 0 {
		amount := decimal.Zero
		if doc.Amount != nil {
			amount = doc.Amount.Decimal
		}
		rate := decimal.Zero
		if doc.FlatVAT != nil {
			rate = doc.FlatVAT.Decimal
		}
		return []core.Row{itemRow("1", "Bedrag", amount, rate, amount)}
	}
	result := make([]core.Row, 0, len(doc.Items))
	for _, it := range doc.Items {
		qty := it.Quantity.Decimal
		if qty.IsZero() {
			qty = decimal.NewFromInt(1)
		}
		result = append(result, itemRow(
			qty.String(),
			it.Description,
			it.UnitPrice.Decimal,
			it.VATRate.Decimal,
			document.LineTotal(it),
		))
	}
	return result
}

func itemRow(qty, description string, unitPrice, rate, total decimal.Decimal) core.Row {
	return row.New(7).Add(
		col.New(1).Add(text.New(qty, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(5).Add(text.New(description, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(euro(unitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(1).Add(text.New(rate.StringFixed(0)+"%", props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New(euro(total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalsRows: subtotal, one BTW line per rate, grand total.
func totalsRows(doc documentData) []core.Row {
	subtotal, _, total := document.Totals(doc.Items, doc.Amount, doc.FlatVAT)

	type totalLine struct {
		label string
		value decimal.Decimal
		grand bool
	}
	lines := []totalLine{{label: "Subtotaal", value: subtotal}}
	if len(doc.Items) > 0 {
		for _, rt := range document.VATByRate(doc.Items) {
			lines = append(lines, totalLine{
				label: fmt.Sprintf("BTW %s%%", rt.Rate.StringFixed(0)),
				value: rt.Amount,
			})
		}
	} else if doc.FlatVAT != nil && !doc.FlatVAT.Decimal.IsZero() {
		lines = append(lines, totalLine{
			label: fmt.Sprintf("BTW %s%%", doc.FlatVAT.Decimal.StringFixed(0)),
			value: total.Sub(subtotal),
		})
	}
	lines = append(lines, totalLine{label: "Totaal", value: total, grand: true})

	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		labelProps := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1}
		valueProps := props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1}
		if l.grand {
			labelProps.Size, labelProps.Color = 10, colorPrimary
			valueProps.Size, valueProps.Style, valueProps.Color = 10, fontstyle.Bold, colorPrimary
		}
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(l.label+":", labelProps)),
			col.New(3).Add(text.New(euro(l.value), valueProps)),
		))
	}
	return rows
}

// footerRows: payment instructions for invoices, then free-form notes.
func footerRows(doc documentData, supplier *entity.Profile) []core.Row {
	var rows []core.Row
	rows = append(rows, row.New(4))
	rows = append(rows, line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	if doc.Invoice && supplier.IBAN != "" {
		payment := fmt.Sprintf(
			"Gelieve het totaalbedrag over te maken naar %s o.v.v. factuurnummer %s.",
			supplier.IBAN, doc.Number,
		)
		if doc.SecondDate != nil {
			payment = fmt.Sprintf(
				"Gelieve het totaalbedrag vóór %s over te maken naar %s o.v.v. factuurnummer %s.",
				doc.SecondDate.Format("02-01-2006"), supplier.IBAN, doc.Number,
			)
		}
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(payment, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	if doc.Notes != "" {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("Opmerkingen", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
			text.New(doc.Notes, props.Text{Size: 8, Color: colorGray, Top: 7}),
		)))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func prefix(p, s string) string {
	if s == "" {
		return ""
	}
	return p + s
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}

// euro formats an amount as € 1.234,56 using Dutch digit grouping.
func euro(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return dutchPrinter.Sprintf("€ %.2f", f)
}
