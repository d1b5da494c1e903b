package dto

import "time"

// CreateClientRequest body for POST /api/clients.
type CreateClientRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	KvKNumber  string `json:"kvk_number,omitempty"`
	VATNumber  string `json:"vat_number,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// UpdateClientRequest body for PUT /api/clients/:id. Only fields present in
// the body are changed; id and owner are server-controlled.
type UpdateClientRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Street     *string `json:"street,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	City       *string `json:"city,omitempty"`
	Country    *string `json:"country,omitempty"`
	KvKNumber  *string `json:"kvk_number,omitempty"`
	VATNumber  *string `json:"vat_number,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ClientResponse is a client in responses.
type ClientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Street     string    `json:"street,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	City       string    `json:"city,omitempty"`
	Country    string    `json:"country,omitempty"`
	KvKNumber  string    `json:"kvk_number,omitempty"`
	VATNumber  string    `json:"vat_number,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClientEnvelope wraps a single client, matching the API's resource-named
// response bodies.
type ClientEnvelope struct {
	Client *ClientResponse `json:"client"`
}

// ClientListEnvelope wraps a client listing.
type ClientListEnvelope struct {
	Clients []*ClientResponse `json:"clients"`
}
