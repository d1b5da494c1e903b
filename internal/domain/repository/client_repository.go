package repository

import (
	"context"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

// ClientRepository is the persistence port for Client. Reads and mutations
// are always scoped to the owning user; a missing record yields (nil, nil).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, userID, id string) (*entity.Client, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, userID, id string) error
}
