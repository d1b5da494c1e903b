package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

func TestInvoice_DisplayStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	cases := []struct {
		name    string
		status  string
		dueDate *time.Time
		want    string
	}{
		{"sent past due reads overdue", entity.InvoiceStatusSent, &past, entity.InvoiceStatusOverdue},
		{"sent before due stays sent", entity.InvoiceStatusSent, &future, entity.InvoiceStatusSent},
		{"sent without due date stays sent", entity.InvoiceStatusSent, nil, entity.InvoiceStatusSent},
		{"draft past due stays draft", entity.InvoiceStatusDraft, &past, entity.InvoiceStatusDraft},
		{"paid past due stays paid", entity.InvoiceStatusPaid, &past, entity.InvoiceStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := entity.Invoice{Status: tc.status, DueDate: tc.dueDate}
			assert.Equal(t, tc.want, inv.DisplayStatus(now))
		})
	}
}

func TestValidInvoiceStatus_OverdueNotWritable(t *testing.T) {
	assert.True(t, entity.ValidInvoiceStatus(entity.InvoiceStatusDraft))
	assert.True(t, entity.ValidInvoiceStatus(entity.InvoiceStatusSent))
	assert.True(t, entity.ValidInvoiceStatus(entity.InvoiceStatusPaid))
	assert.False(t, entity.ValidInvoiceStatus(entity.InvoiceStatusOverdue), "overdue is derived, never written")
	assert.False(t, entity.ValidInvoiceStatus("cancelled"))
}

func TestValidQuotationStatus(t *testing.T) {
	assert.True(t, entity.ValidQuotationStatus(entity.QuotationStatusDraft))
	assert.True(t, entity.ValidQuotationStatus(entity.QuotationStatusSent))
	assert.True(t, entity.ValidQuotationStatus(entity.QuotationStatusAccepted))
	assert.False(t, entity.ValidQuotationStatus("paid"))
}
