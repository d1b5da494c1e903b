package billing

import (
	"context"
	"time"

	"github.com/factuurdesk/facturatie-api/internal/application/dto"
	"github.com/factuurdesk/facturatie-api/internal/domain"
	"github.com/factuurdesk/facturatie-api/internal/domain/repository"
)

// ProfileUseCase handles the per-user company profile.
type ProfileUseCase struct {
	repo repository.ProfileRepository
}

// NewProfileUseCase builds the use case.
func NewProfileUseCase(repo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Get loads the caller's profile.
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	p, err := uc.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(p), nil
}

// Update applies the fields present in the request. The profile is created
// at signup, so a missing one is a 404, not an implicit create.
func (uc *ProfileUseCase) Update(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	p, err := uc.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.CompanyName != nil {
		p.CompanyName = *in.CompanyName
	}
	if in.ContactName != nil {
		p.ContactName = *in.ContactName
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Street != nil {
		p.Street = *in.Street
	}
	if in.PostalCode != nil {
		p.PostalCode = *in.PostalCode
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.Country != nil {
		p.Country = *in.Country
	}
	if in.KvKNumber != nil {
		p.KvKNumber = *in.KvKNumber
	}
	if in.VATNumber != nil {
		p.VATNumber = *in.VATNumber
	}
	if in.IBAN != nil {
		p.IBAN = *in.IBAN
	}
	if in.Logo != nil {
		p.Logo = *in.Logo
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}
