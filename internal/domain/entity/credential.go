package entity

import "time"

// Credential stores a login identity: bcrypt password hash keyed by email.
type Credential struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"` // bcrypt, never plain after persisting
	CreatedAt    time.Time `json:"created_at"`
}
