package entity

import "time"

// Profile holds the account owner's company details, printed on every
// quotation and invoice. One profile per user, created at signup, never
// deleted by the system.
type Profile struct {
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
	Logo        string    `json:"logo,omitempty"` // base64 image, optional
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
