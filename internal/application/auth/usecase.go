package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/factuurdesk/facturatie-api/internal/application/dto"
	"github.com/factuurdesk/facturatie-api/internal/domain"
	"github.com/factuurdesk/facturatie-api/internal/domain/entity"
	"github.com/factuurdesk/facturatie-api/internal/domain/repository"
	"github.com/factuurdesk/facturatie-api/pkg/jwt"
)

// JWTConfig settings for token generation.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase handles signup and login. Signup also bootstraps the company
// profile so the account can render documents immediately.
type AuthUseCase struct {
	credRepo    repository.CredentialRepository
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(credRepo repository.CredentialRepository, profileRepo repository.ProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{credRepo: credRepo, profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Signup creates an account: bcrypt-hashes the password, persists the
// credential and a bootstrap profile, and returns a fresh token.
// Returns ErrEmailAlreadyExists when the email is taken.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, _ := uc.credRepo.GetByEmail(ctx, email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	userID := uuid.New().String()
	cred := &entity.Credential{
		UserID:       userID,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := uc.credRepo.Create(ctx, cred); err != nil {
		return nil, err
	}
	companyName := in.CompanyName
	if companyName == "" {
		companyName = email
	}
	profile := &entity.Profile{
		UserID:      userID,
		CompanyName: companyName,
		ContactName: in.ContactName,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, userID, email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.AuthUser{ID: userID, Email: email},
	}, nil
}

// Login verifies email/password and returns a fresh token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	cred, err := uc.credRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, cred.UserID, cred.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.AuthUser{ID: cred.UserID, Email: cred.Email},
	}, nil
}
