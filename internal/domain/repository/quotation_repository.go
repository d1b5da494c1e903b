package repository

import (
	"context"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

// QuotationRepository is the persistence port for Quotation.
type QuotationRepository interface {
	Create(ctx context.Context, q *entity.Quotation) error
	GetByID(ctx context.Context, userID, id string) (*entity.Quotation, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Quotation, error)
	Update(ctx context.Context, q *entity.Quotation) error
	Delete(ctx context.Context, userID, id string) error
}
