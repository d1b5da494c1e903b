package billing

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/factuurdesk/facturatie-api/internal/application/dto"
	"github.com/factuurdesk/facturatie-api/internal/domain"
	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/domain/repository"
)

// ClientUseCase handles the client address book.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase builds the use case.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create stores a new client. Name is the only required field.
func (uc *ClientUseCase) Create(ctx context.Context, userID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Street:     in.Street,
		PostalCode: in.PostalCode,
		City:       in.City,
		Country:    in.Country,
		KvKNumber:  in.KvKNumber,
		VATNumber:  in.VATNumber,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Get loads one client.
func (uc *ClientUseCase) Get(ctx context.Context, userID, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List returns the user's clients sorted by name.
func (uc *ClientUseCase) List(ctx context.Context, userID string) ([]*dto.ClientResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update applies the fields present in the request.
func (uc *ClientUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = *in.Name
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Street != nil {
		client.Street = *in.Street
	}
	if in.PostalCode != nil {
		client.PostalCode = *in.PostalCode
	}
	if in.City != nil {
		client.City = *in.City
	}
	if in.Country != nil {
		client.Country = *in.Country
	}
	if in.KvKNumber != nil {
		client.KvKNumber = *in.KvKNumber
	}
	if in.VATNumber != nil {
		client.VATNumber = *in.VATNumber
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete removes the client. Quotations and invoices that snapshot this
// client keep their copy.
func (uc *ClientUseCase) Delete(ctx context.Context, userID, id string) error {
	client, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, userID, id)
}
