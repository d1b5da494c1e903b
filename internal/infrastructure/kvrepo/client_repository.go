package kvrepo

import (
	"context"
	"fmt"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/domain/repository"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo stores clients under client:<userID>:<id>.
type ClientRepo struct {
	store kv.Store
}

// NewClientRepository builds the adapter.
func NewClientRepository(store kv.Store) *ClientRepo {
	return &ClientRepo{store: store}
}

// Create persists a new client.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	return setJSON(ctx, r.store, kv.ClientKey(client.UserID, client.ID), client)
}

// GetByID loads a client owned by userID, or (nil, nil) when absent.
func (r *ClientRepo) GetByID(ctx context.Context, userID, id string) (*entity.Client, error) {
	var c entity.Client
	ok, err := getJSON(ctx, r.store, kv.ClientKey(userID, id), &c)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ListByUser returns all of the user's clients.
func (r *ClientRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Client, error) {
	entries, err := r.store.GetByPrefix(ctx, kv.ClientPrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	list := make([]*entity.Client, 0, len(entries))
	for _, e := range entries {
		var c entity.Client
		if ok, err := getJSONEntry(e, &c); err != nil {
			return nil, err
		} else if ok {
			list = append(list, &c)
		}
	}
	return list, nil
}

// Update overwrites the stored client.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	return setJSON(ctx, r.store, kv.ClientKey(client.UserID, client.ID), client)
}

// Delete removes the client. Documents that snapshot this client are left
// untouched.
func (r *ClientRepo) Delete(ctx context.Context, userID, id string) error {
	return r.store.Delete(ctx, kv.ClientKey(userID, id))
}
