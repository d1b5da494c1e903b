package repository

import (
	"context"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

// ProfileRepository is the persistence port for the per-user company profile.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
}
