package repository

import (
	"context"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

// CredentialRepository is the persistence port for login identities.
type CredentialRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.Credential, error)
	Create(ctx context.Context, cred *entity.Credential) error
}
