package entity

import "time"

// Client represents a customer of the account owner. Documents keep their own
// snapshot of the client name/address, so deleting a client never touches
// existing quotations or invoices.
type Client struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Street     string    `json:"street,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	City       string    `json:"city,omitempty"`
	Country    string    `json:"country,omitempty"`
	KvKNumber  string    `json:"kvk_number,omitempty"` // trade register (Kamer van Koophandel)
	VATNumber  string    `json:"vat_number,omitempty"` // BTW-nummer
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
