package dto

// SignupRequest body for POST /api/signup. Company name seeds the profile.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name,omitempty"`
}

// LoginRequest body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the account identity echoed with a token.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResponse carries the bearer token and the account it belongs to.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
