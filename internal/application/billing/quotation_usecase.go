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

// QuotationUseCase handles quotations (offertes) and their conversion to
// invoices.
type QuotationUseCase struct {
	repo        repository.QuotationRepository
	invoiceRepo repository.InvoiceRepository
	seq         repository.SequenceRepository
}

// NewQuotationUseCase builds the use case.
func NewQuotationUseCase(repo repository.QuotationRepository, invoiceRepo repository.InvoiceRepository, seq repository.SequenceRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, invoiceRepo: invoiceRepo, seq: seq}
}

// Create stores a new quotation in draft with a generated OFF-number and
// server-computed totals.
func (uc *QuotationUseCase) Create(ctx context.Context, userID string, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	issueDate := now
	if in.IssueDate != nil {
		issueDate = *in.IssueDate
	}
	items := toEntityItems(in.Items)
	subtotal, vat, total := document.Totals(items, in.Amount, in.VATRate)
	q := &entity.Quotation{
		ID:               uuid.New().String(),
		UserID:           userID,
		Number:           QuotationNumber(now),
		ClientID:         in.ClientID,
		ClientName:       in.ClientName,
		ClientStreet:     in.ClientStreet,
		ClientPostalCode: in.ClientPostalCode,
		ClientCity:       in.ClientCity,
		Items:            items,
		Amount:           in.Amount,
		FlatVAT:          in.VATRate,
		Status:           entity.QuotationStatusDraft,
		IssueDate:        issueDate,
		ExpiryDate:       in.ExpiryDate,
		Notes:            in.Notes,
		Subtotal:         subtotal,
		VATTotal:         vat,
		Total:            total,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// Get loads one quotation.
func (uc *QuotationUseCase) Get(ctx context.Context, userID, id string) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return toQuotationResponse(q), nil
}

// List returns the user's quotations, newest first.
func (uc *QuotationUseCase) List(ctx context.Context, userID string) ([]*dto.QuotationResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	out := make([]*dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		out = append(out, toQuotationResponse(q))
	}
	return out, nil
}

// Update applies the fields present in the request and recomputes totals.
// Number, owner and the invoice back-reference are never touched.
func (uc *QuotationUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateQuotationRequest) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		if !entity.ValidQuotationStatus(*in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		q.Status = *in.Status
	}
	if in.ClientID != nil {
		q.ClientID = *in.ClientID
	}
	if in.ClientName != nil {
		if strings.TrimSpace(*in.ClientName) == "" {
			return nil, domain.ErrInvalidInput
		}
		q.ClientName = *in.ClientName
	}
	if in.ClientStreet != nil {
		q.ClientStreet = *in.ClientStreet
	}
	if in.ClientPostalCode != nil {
		q.ClientPostalCode = *in.ClientPostalCode
	}
	if in.ClientCity != nil {
		q.ClientCity = *in.ClientCity
	}
	if in.Items != nil {
		q.Items = toEntityItems(*in.Items)
	}
	if in.IssueDate != nil {
		q.IssueDate = *in.IssueDate
	}
	if in.ExpiryDate != nil {
		q.ExpiryDate = in.ExpiryDate
	}
	if in.Notes != nil {
		q.Notes = *in.Notes
	}
	q.Subtotal, q.VATTotal, q.Total = document.Totals(q.Items, q.Amount, q.FlatVAT)
	q.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// Delete removes the quotation.
func (uc *QuotationUseCase) Delete(ctx context.Context, userID, id string) error {
	q, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if q == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, userID, id)
}

// ConvertToInvoice creates an invoice from the quotation: client snapshot,
// items and VAT are copied verbatim, the invoice starts as "sent" with a
// 30-day payment term, and the quotation gets status "accepted" plus a
// back-reference to the new invoice. A quotation that is already "accepted"
// keeps its status; one that already carries an invoice back-reference is
// not converted again.
func (uc *QuotationUseCase) ConvertToInvoice(ctx context.Context, userID, id string) (*dto.InvoiceResponse, error) {
	q, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.InvoiceID != "" {
		return nil, domain.ErrAlreadyConverted
	}

	now := time.Now()
	seq, err := uc.seq.Next(ctx, userID, now.Year())
	if err != nil {
		return nil, err
	}
	dueDate := now.AddDate(0, 0, entity.DefaultPaymentTermDays)
	subtotal, vat, total := document.Totals(q.Items, q.Amount, q.FlatVAT)
	inv := &entity.Invoice{
		ID:               uuid.New().String(),
		UserID:           userID,
		Number:           InvoiceNumber(now.Year(), seq),
		ClientID:         q.ClientID,
		ClientName:       q.ClientName,
		ClientStreet:     q.ClientStreet,
		ClientPostalCode: q.ClientPostalCode,
		ClientCity:       q.ClientCity,
		Items:            q.Items,
		Amount:           q.Amount,
		FlatVAT:          q.FlatVAT,
		Status:           entity.InvoiceStatusSent,
		IssueDate:        now,
		DueDate:          &dueDate,
		PaymentTermDays:  entity.DefaultPaymentTermDays,
		Notes:            q.Notes,
		QuotationID:      q.ID,
		Subtotal:         subtotal,
		VATTotal:         vat,
		Total:            total,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	if q.Status != entity.QuotationStatusAccepted {
		q.Status = entity.QuotationStatusAccepted
	}
	q.InvoiceID = inv.ID
	q.UpdatedAt = now
	if err := uc.repo.Update(ctx, q); err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, now), nil
}
