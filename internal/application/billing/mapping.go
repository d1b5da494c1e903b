package billing

import (
	"time"

	"github.com/factuurdesk/facturatie-api/internal/application/dto"
	"github.com/factuurdesk/facturatie-api/internal/domain/document"
	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
)

func toEntityItems(items []dto.LineItem) []entity.LineItem {
	if items == nil {
		return nil
	}
	out := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.LineItem{
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			VATRate:     it.VATRate,
		})
	}
	return out
}

func toDTOItems(items []entity.LineItem) []dto.LineItem {
	if items == nil {
		return nil
	}
	out := make([]dto.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LineItem{
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			VATRate:     it.VATRate,
		})
	}
	return out
}

func vatBreakdown(items []entity.LineItem) []dto.RateAmount {
	rates := document.VATByRate(items)
	if len(rates) == 0 {
		return nil
	}
	out := make([]dto.RateAmount, 0, len(rates))
	for _, rt := range rates {
		out = append(out, dto.RateAmount{Rate: rt.Rate, Amount: rt.Amount.Round(2)})
	}
	return out
}

func toQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	if q == nil {
		return nil
	}
	return &dto.QuotationResponse{
		ID:               q.ID,
		Number:           q.Number,
		ClientID:         q.ClientID,
		ClientName:       q.ClientName,
		ClientStreet:     q.ClientStreet,
		ClientPostalCode: q.ClientPostalCode,
		ClientCity:       q.ClientCity,
		Items:            toDTOItems(q.Items),
		Status:           q.Status,
		IssueDate:        q.IssueDate,
		ExpiryDate:       q.ExpiryDate,
		Notes:            q.Notes,
		InvoiceID:        q.InvoiceID,
		Subtotal:         q.Subtotal.Round(2),
		VATBreakdown:     vatBreakdown(q.Items),
		VATTotal:         q.VATTotal.Round(2),
		Total:            q.Total.Round(2),
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
	}
}

func toInvoiceResponse(inv *entity.Invoice, now time.Time) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:               inv.ID,
		Number:           inv.Number,
		ClientID:         inv.ClientID,
		ClientName:       inv.ClientName,
		ClientStreet:     inv.ClientStreet,
		ClientPostalCode: inv.ClientPostalCode,
		ClientCity:       inv.ClientCity,
		Items:            toDTOItems(inv.Items),
		Status:           inv.DisplayStatus(now),
		IssueDate:        inv.IssueDate,
		DueDate:          inv.DueDate,
		PaidDate:         inv.PaidDate,
		PaymentTermDays:  inv.PaymentTermDays,
		Notes:            inv.Notes,
		QuotationID:      inv.QuotationID,
		Subtotal:         inv.Subtotal.Round(2),
		VATBreakdown:     vatBreakdown(inv.Items),
		VATTotal:         inv.VATTotal.Round(2),
		Total:            inv.Total.Round(2),
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Street:     c.Street,
		PostalCode: c.PostalCode,
		City:       c.City,
		Country:    c.Country,
		KvKNumber:  c.KvKNumber,
		VATNumber:  c.VATNumber,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		ContactName: p.ContactName,
		Email:       p.Email,
		Phone:       p.Phone,
		Street:      p.Street,
		PostalCode:  p.PostalCode,
		City:        p.City,
		Country:     p.Country,
		KvKNumber:   p.KvKNumber,
		VATNumber:   p.VATNumber,
		IBAN:        p.IBAN,
		Logo:        p.Logo,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
