package kvrepo

import (
	"context"
	"fmt"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/domain/repository"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo stores quotations under quotation:<userID>:<id>.
type QuotationRepo struct {
	store kv.Store
}

// NewQuotationRepository builds the adapter.
func NewQuotationRepository(store kv.Store) *QuotationRepo {
	return &QuotationRepo{store: store}
}

// Create persists a new quotation.
func (r *QuotationRepo) Create(ctx context.Context, q *entity.Quotation) error {
	return setJSON(ctx, r.store, kv.QuotationKey(q.UserID, q.ID), q)
}

// GetByID loads a quotation owned by userID, or (nil, nil) when absent.
func (r *QuotationRepo) GetByID(ctx context.Context, userID, id string) (*entity.Quotation, error) {
	var q entity.Quotation
	ok, err := getJSON(ctx, r.store, kv.QuotationKey(userID, id), &q)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &q, nil
}

// ListByUser returns all of the user's quotations.
func (r *QuotationRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Quotation, error) {
	entries, err := r.store.GetByPrefix(ctx, kv.QuotationPrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	list := make([]*entity.Quotation, 0, len(entries))
	for _, e := range entries {
		var q entity.Quotation
		if ok, err := getJSONEntry(e, &q); err != nil {
			return nil, err
		} else if ok {
			list = append(list, &q)
		}
	}
	return list, nil
}

// Update overwrites the stored quotation.
func (r *QuotationRepo) Update(ctx context.Context, q *entity.Quotation) error {
	return setJSON(ctx, r.store, kv.QuotationKey(q.UserID, q.ID), q)
}

// Delete removes the quotation.
func (r *QuotationRepo) Delete(ctx context.Context, userID, id string) error {
	return r.store.Delete(ctx, kv.QuotationKey(userID, id))
}
