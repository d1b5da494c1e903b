package billing

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/factuurdesk/facturatie-api/internal/application/dto"
	"github.com/factuurdesk/facturatie-api/internal/domain"
	"github.com/factuurdesk/facturatie-api/internal/domain/document"
	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/domain/repository"
)

// InvoiceUseCase handles invoices (facturen).
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	seq  repository.SequenceRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(repo repository.InvoiceRepository, seq repository.SequenceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, seq: seq}
}

// Create stores a new invoice in draft with a FAC-number from the atomic
// per-year counter and server-computed totals. Due date defaults to the
// issue date plus the payment term (30 days when unspecified).
func (uc *InvoiceUseCase) Create(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	issueDate := now
	if in.IssueDate != nil {
		issueDate = *in.IssueDate
	}
	term := entity.DefaultPaymentTermDays
	if in.PaymentTermDays != nil && *in.PaymentTermDays > 0 {
		term = *in.PaymentTermDays
	}
	dueDate := issueDate.AddDate(0, 0, term)
	if in.DueDate != nil {
		dueDate = *in.DueDate
	}
	seq, err := uc.seq.Next(ctx, userID, now.Year())
	if err != nil {
		return nil, err
	}
	items := toEntityItems(in.Items)
	subtotal, vat, total := document.Totals(items, in.Amount, in.VATRate)
	inv := &entity.Invoice{
		ID:               uuid.New().String(),
		UserID:           userID,
		Number:           InvoiceNumber(now.Year(), seq),
		ClientID:         in.ClientID,
		ClientName:       in.ClientName,
		ClientStreet:     in.ClientStreet,
		ClientPostalCode: in.ClientPostalCode,
		ClientCity:       in.ClientCity,
		Items:            items,
		Amount:           in.Amount,
		FlatVAT:          in.VATRate,
		Status:           entity.InvoiceStatusDraft,
		IssueDate:        issueDate,
		DueDate:          &dueDate,
		PaymentTermDays:  term,
		Notes:            in.Notes,
		Subtotal:         subtotal,
		VATTotal:         vat,
		Total:            total,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, now), nil
}

// Get loads one invoice. The response status is the display status, so a
// sent invoice past its due date reads "overdue".
func (uc *InvoiceUseCase) Get(ctx context.Context, userID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv, time.Now()), nil
}

// List returns the user's invoices, newest first.
func (uc *InvoiceUseCase) List(ctx context.Context, userID string) ([]*dto.InvoiceResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	now := time.Now()
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv, now))
	}
	return out, nil
}

// Update applies the fields present in the request and recomputes totals.
// Number, owner and the quotation back-reference are never touched. Writing
// status "paid" stamps the paid date when the request carries none;
// "overdue" is derived and therefore not writable.
func (uc *InvoiceUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if in.Status != nil {
		if !entity.ValidInvoiceStatus(*in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		inv.Status = *in.Status
		if *in.Status == entity.InvoiceStatusPaid && in.PaidDate == nil && inv.PaidDate == nil {
			paid := now
			inv.PaidDate = &paid
		}
	}
	if in.ClientID != nil {
		inv.ClientID = *in.ClientID
	}
	if in.ClientName != nil {
		if strings.TrimSpace(*in.ClientName) == "" {
			return nil, domain.ErrInvalidInput
		}
		inv.ClientName = *in.ClientName
	}
	if in.ClientStreet != nil {
		inv.ClientStreet = *in.ClientStreet
	}
	if in.ClientPostalCode != nil {
		inv.ClientPostalCode = *in.ClientPostalCode
	}
	if in.ClientCity != nil {
		inv.ClientCity = *in.ClientCity
	}
	if in.Items != nil {
		inv.Items = toEntityItems(*in.Items)
	}
	if in.IssueDate != nil {
		inv.IssueDate = *in.IssueDate
	}
	if in.DueDate != nil {
		inv.DueDate = in.DueDate
	}
	if in.PaidDate != nil {
		inv.PaidDate = in.PaidDate
	}
	if in.PaymentTermDays != nil && *in.PaymentTermDays > 0 {
		inv.PaymentTermDays = *in.PaymentTermDays
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	inv.Subtotal, inv.VATTotal, inv.Total = document.Totals(inv.Items, inv.Amount, inv.FlatVAT)
	inv.UpdatedAt = now
	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, now), nil
}

// Delete removes the invoice. The originating quotation, if any, keeps its
// back-reference.
func (uc *InvoiceUseCase) Delete(ctx context.Context, userID, id string) error {
	inv, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, userID, id)
}
