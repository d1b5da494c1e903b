package kvrepo

import (
	"context"
	"fmt"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/domain/repository"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)
var _ repository.SequenceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo stores invoices under invoice:<userID>:<id> and hands out
// sequence numbers from counter:invoice:<userID>:<year>.
type InvoiceRepo struct {
	store kv.Store
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(store kv.Store) *InvoiceRepo {
	return &InvoiceRepo{store: store}
}

// Create persists a new invoice.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	return setJSON(ctx, r.store, kv.InvoiceKey(inv.UserID, inv.ID), inv)
}

// GetByID loads an invoice owned by userID, or (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(ctx context.Context, userID, id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	ok, err := getJSON(ctx, r.store, kv.InvoiceKey(userID, id), &inv)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

// ListByUser returns all of the user's invoices.
func (r *InvoiceRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Invoice, error) {
	entries, err := r.store.GetByPrefix(ctx, kv.InvoicePrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	list := make([]*entity.Invoice, 0, len(entries))
	for _, e := range entries {
		var inv entity.Invoice
		if ok, err := getJSONEntry(e, &inv); err != nil {
			return nil, err
		} else if ok {
			list = append(list, &inv)
		}
	}
	return list, nil
}

// Update overwrites the stored invoice.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	return setJSON(ctx, r.store, kv.InvoiceKey(inv.UserID, inv.ID), inv)
}

// Delete removes the invoice.
func (r *InvoiceRepo) Delete(ctx context.Context, userID, id string) error {
	return r.store.Delete(ctx, kv.InvoiceKey(userID, id))
}

// Next atomically increments the per-user per-year invoice counter.
func (r *InvoiceRepo) Next(ctx context.Context, userID string, year int) (int64, error) {
	n, err := r.store.Incr(ctx, kv.InvoiceCounterKey(userID, year))
	if err != nil {
		return 0, fmt.Errorf("invoice sequence: %w", err)
	}
	return n, nil
}
