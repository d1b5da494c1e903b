package kvrepo

import (
	"context"
	"fmt"

	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/domain/repository"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo stores the company profile under user:<userID>.
type ProfileRepo struct {
	store kv.Store
}

// NewProfileRepository builds the adapter.
func NewProfileRepository(store kv.Store) *ProfileRepo {
	return &ProfileRepo{store: store}
}

// Get loads the user's profile, or (nil, nil) when absent.
func (r *ProfileRepo) Get(ctx context.Context, userID string) (*entity.Profile, error) {
	var p entity.Profile
	ok, err := getJSON(ctx, r.store, kv.ProfileKey(userID), &p)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Save upserts the profile.
func (r *ProfileRepo) Save(ctx context.Context, profile *entity.Profile) error {
	return setJSON(ctx, r.store, kv.ProfileKey(profile.UserID), profile)
}
