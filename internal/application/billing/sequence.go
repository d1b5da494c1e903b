package billing

import (
	"fmt"
	"time"
)

// QuotationNumber builds the human-readable quotation number from the
// creation instant: OFF-<unix-millis>. The id, not this number, is the
// uniqueness guarantee.
func QuotationNumber(now time.Time) string {
	return fmt.Sprintf("OFF-%d", now.UnixMilli())
}

// InvoiceNumber builds the invoice number from the atomic per-user per-year
// counter: FAC-<year>-<zero-padded counter>.
func InvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("FAC-%d-%04d", year, seq)
}
