package repository

import (
	"context"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

// InvoiceRepository is the persistence port for Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, userID, id string) (*entity.Invoice, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Invoice, error)
	Update(ctx context.Context, inv *entity.Invoice) error
	Delete(ctx context.Context, userID, id string) error
}
