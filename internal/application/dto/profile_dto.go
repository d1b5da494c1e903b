package dto

import "time"

// UpdateProfileRequest body for PUT /api/profile. Only fields present
// change; the owning user id is taken from the token.
type UpdateProfileRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Street      *string `json:"street,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	KvKNumber   *string `json:"kvk_number,omitempty"`
	VATNumber   *string `json:"vat_number,omitempty"`
	IBAN        *string `json:"iban,omitempty"`
	Logo        *string `json:"logo,omitempty"`
}

// ProfileResponse is the company profile in responses.
type ProfileResponse struct {
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name"`
	ContactName string    `json:"contact_name,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Street      string    `json:"street,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	KvKNumber   string    `json:"kvk_number,omitempty"`
	VATNumber   string    `json:"vat_number,omitempty"`
	IBAN        string    `json:"iban,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileEnvelope wraps the profile.
type ProfileEnvelope struct {
	Profile *ProfileResponse `json:"profile"`
}
