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
)

func newClientFixture(t *testing.T) (*billing.ClientUseCase, *billing.QuotationUseCase) {
	t.Helper()
	store := kv.NewMemoryStore()
	invoiceRepo := kvrepo.NewInvoiceRepository(store)
	return billing.NewClientUseCase(kvrepo.NewClientRepository(store)),
		billing.NewQuotationUseCase(kvrepo.NewQuotationRepository(store), invoiceRepo, invoiceRepo)
}

func TestClientCreateAndGet(t *testing.T) {
	uc, _ := newClientFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, testUser, dto.CreateClientRequest{
		Name:      "Acme BV",
		Email:     "factuur@acme.nl",
		City:      "Amsterdam",
		KvKNumber: "12345678",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.Get(ctx, testUser, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme BV", got.Name)
	assert.Equal(t, "12345678", got.KvKNumber)
}

func TestClientCreate_NameRequired(t *testing.T) {
	uc, _ := newClientFixture(t)
	_, err := uc.Create(context.Background(), testUser, dto.CreateClientRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientList_SortedByName(t *testing.T) {
	uc, _ := newClientFixture(t)
	ctx := context.Background()

	for _, name := range []string{"zebra", "Appel", "molen"} {
		_, err := uc.Create(ctx, testUser, dto.CreateClientRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := uc.List(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Appel", list[0].Name)
	assert.Equal(t, "molen", list[1].Name)
	assert.Equal(t, "zebra", list[2].Name)
}

func TestClientUpdate_PartialFields(t *testing.T) {
	uc, _ := newClientFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, testUser, dto.CreateClientRequest{Name: "Acme BV", City: "Amsterdam"})
	require.NoError(t, err)

	phone := "+31 6 12345678"
	updated, err := uc.Update(ctx, testUser, created.ID, dto.UpdateClientRequest{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "Acme BV", updated.Name, "absent fields stay untouched")
	assert.Equal(t, "Amsterdam", updated.City)
	assert.Equal(t, phone, updated.Phone)
}

func TestClientUpdate_EmptyNameRejected(t *testing.T) {
	uc, _ := newClientFixture(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, testUser, dto.CreateClientRequest{Name: "Acme BV"})
	require.NoError(t, err)

	empty := ""
	_, err = uc.Update(ctx, testUser, created.ID, dto.UpdateClientRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientDelete_DocumentsKeepSnapshot(t *testing.T) {
	clientUC, quotationUC := newClientFixture(t)
	ctx := context.Background()

	client, err := clientUC.Create(ctx, testUser, dto.CreateClientRequest{Name: "Acme BV"})
	require.NoError(t, err)

	q, err := quotationUC.Create(ctx, testUser, dto.CreateQuotationRequest{
		ClientID:   client.ID,
		ClientName: client.Name,
	})
	require.NoError(t, err)

	require.NoError(t, clientUC.Delete(ctx, testUser, client.ID))

	// The quotation keeps its snapshot, including the dangling client_id.
	got, err := quotationUC.Get(ctx, testUser, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme BV", got.ClientName)
	assert.Equal(t, client.ID, got.ClientID)
}
