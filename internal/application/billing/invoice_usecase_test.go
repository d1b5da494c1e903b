package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurdesk/facturatie-api/internal/application/billing"
	"github.com/factuurdesk/facturatie-api/internal/application/dto"
	"github.com/factuurdesk/facturatie-api/internal/domain"
	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kvrepo"
)

func newInvoiceFixture(t *testing.T) *billing.InvoiceUseCase {
	t.Helper()
	store := kv.NewMemoryStore()
	invoiceRepo := kvrepo.NewInvoiceRepository(store)
	return billing.NewInvoiceUseCase(invoiceRepo, invoiceRepo)
}

func TestInvoiceCreate(t *testing.T) {
	uc := newInvoiceFixture(t)
	ctx := context.Background()

	inv, err := uc.Create(ctx, testUser, dto.CreateInvoiceRequest{
		ClientName: "Acme BV",
		Items:      lineItems(),
	})
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, billing.InvoiceNumber(year, 1), inv.Number)
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, entity.DefaultPaymentTermDays, inv.PaymentTermDays)
	require.NotNil(t, inv.DueDate)
	assert.WithinDuration(t, inv.IssueDate.AddDate(0, 0, entity.DefaultPaymentTermDays), *inv.DueDate, time.Second)
	assert.True(t, inv.Total.Equal(decimal.NewFromFloat(296.5)))
}

func TestInvoiceCreate_ExplicitDueDateWins(t *testing.T) {
	uc := newInvoiceFixture(t)
	ctx := context.Background()

	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	inv, err := uc.Create(ctx, testUser, dto.CreateInvoiceRequest{
		ClientName: "Acme BV",
		DueDate:    &due,
	})
	require.NoError(t, err)
	require.NotNil(t, inv.DueDate)
	assert.True(t, inv.DueDate.Equal(due))
}

func TestInvoiceCreate_LegacyFlatAmount(t *testing.T) {
	uc := newInvoiceFixture(t)
	ctx := context.Background()

	amount := entity.AmountFromInt(1000)
	rate := entity.AmountFromInt(21)
	inv, err := uc.Create(ctx, testUser, dto.CreateInvoiceRequest{
		ClientName: "Acme BV",
		Amount:     &amount,
		VATRate:    &rate,
	})
	require.NoError(t, err)
	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, inv.VATTotal.Equal(decimal.NewFromInt(210)))
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(1210)))
}

func TestInvoiceList_NewestFirst(t *testing.T) {
	uc := newInvoiceFixture(t)
	ctx := context.Background()

	first, err := uc.Create(ctx, testUser, dto.CreateInvoiceRequest{ClientName: "First"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := uc.Create(ctx, testUser, dto.CreateInvoiceRequest{ClientName: "Second"})
	require.NoError(t, err)

	list, err := uc.List(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestInvoiceUpdate_PaidStampsPaidDate(t *testing.T) {
	uc := newInvoiceFixture(t)
	ctx := context.Background()

	inv, err := uc.Create(ctx, testUser, dto.CreateInvoiceRequest{ClientName: "Acme BV"})
	require.NoError(t, err)
	require.Nil(t, inv.PaidDate)

	paid := entity.InvoiceStatusPaid
	updated, err := uc.Update(ctx, testUser, inv.ID, dto.UpdateInvoiceRequest{Status: &paid})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPaid, updated.Status)
	require.NotNil(t, updated.PaidDate, "marking paid without a date stamps now")
	assert.WithinDuration(t, time.Now(), *updated.PaidDate, time.Minute)
}

func TestInvoiceUpdate_OverdueNotWritable(t *testing.T) {
	uc := newInvoiceFixture(t)
	ctx := context.Background()

	inv, err := uc.Create(ctx, testUser, dto.CreateInvoiceRequest{ClientName: "Acme BV"})
	require.NoError(t, err)

	overdue := entity.InvoiceStatusOverdue
	_, err = uc.Update(ctx, testUser, inv.ID, dto.UpdateInvoiceRequest{Status: &overdue})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestInvoiceOverdue_DerivedOnRead(t *testing.T) {
	uc := newInvoiceFixture(t)
	ctx := context.Background()

	past := time.Now().AddDate(0, 0, -10)
	inv, err := uc.Create(ctx, testUser, dto.CreateInvoiceRequest{
		ClientName: "Acme BV",
		DueDate:    &past,
	})
	require.NoError(t, err)

	sent := entity.InvoiceStatusSent
	updated, err := uc.Update(ctx, testUser, inv.ID, dto.UpdateInvoiceRequest{Status: &sent})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusOverdue, updated.Status, "sent past due reads overdue")

	// Moving the due date into the future makes it read sent again, proving
	// nothing overdue was persisted.
	future := time.Now().AddDate(0, 0, 10)
	updated, err = uc.Update(ctx, testUser, inv.ID, dto.UpdateInvoiceRequest{DueDate: &future})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusSent, updated.Status)
}

func TestInvoiceDelete_NotFound(t *testing.T) {
	uc := newInvoiceFixture(t)
	assert.ErrorIs(t, uc.Delete(context.Background(), testUser, "missing"), domain.ErrNotFound)
}
