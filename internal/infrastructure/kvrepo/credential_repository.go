package kvrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/domain/repository"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo stores login identities under auth:email:<email>.
// Emails are lowercased so lookups are case-insensitive.
type CredentialRepo struct {
	store kv.Store
}

// NewCredentialRepository builds the adapter.
func NewCredentialRepository(store kv.Store) *CredentialRepo {
	return &CredentialRepo{store: store}
}

// GetByEmail loads the credential for email, or (nil, nil) when absent.
func (r *CredentialRepo) GetByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var c entity.Credential
	ok, err := getJSON(ctx, r.store, kv.CredentialKey(strings.ToLower(email)), &c)
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Create persists a new credential.
func (r *CredentialRepo) Create(ctx context.Context, cred *entity.Credential) error {
	return setJSON(ctx, r.store, kv.CredentialKey(strings.ToLower(cred.Email)), cred)
}
