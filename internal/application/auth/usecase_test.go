package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurdesk/facturatie-api/internal/application/auth"
	"github.com/factuurdesk/facturatie-api/internal/application/dto"
	"github.com/factuurdesk/facturatie-api/internal/domain"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kv"
	"github.com/factuurdesk/facturatie-api/internal/infrastructure/kvrepo"
	pkgjwt "github.com/factuurdesk/facturatie-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *kvrepo.ProfileRepo) {
	t.Helper()
	store := kv.NewMemoryStore()
	profileRepo := kvrepo.NewProfileRepository(store)
	uc := auth.NewAuthUseCase(kvrepo.NewCredentialRepository(store), profileRepo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "facturatie-test",
	})
	return uc, profileRepo
}

func TestSignup(t *testing.T) {
	uc, profileRepo := newAuthFixture(t)
	ctx := context.Background()

	out, err := uc.Signup(ctx, dto.SignupRequest{
		Email:       "Jan@Voorbeeld.NL",
		Password:    "wachtwoord123",
		CompanyName: "Jansen Webdesign",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "jan@voorbeeld.nl", out.User.Email, "email is lowercased")

	// The token carries the new user id.
	userID, email, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "jan@voorbeeld.nl", email)

	// Signup bootstraps the company profile.
	profile, err := profileRepo.Get(ctx, out.User.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Jansen Webdesign", profile.CompanyName)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	uc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, dto.SignupRequest{Email: "jan@voorbeeld.nl", Password: "wachtwoord123"})
	require.NoError(t, err)

	_, err = uc.Signup(ctx, dto.SignupRequest{Email: "JAN@voorbeeld.nl", Password: "anderwachtwoord"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "case-insensitive duplicate check")
}

func TestSignup_ProfileDefaultsToEmail(t *testing.T) {
	uc, profileRepo := newAuthFixture(t)
	ctx := context.Background()

	out, err := uc.Signup(ctx, dto.SignupRequest{Email: "zzp@voorbeeld.nl", Password: "wachtwoord123"})
	require.NoError(t, err)

	profile, err := profileRepo.Get(ctx, out.User.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "zzp@voorbeeld.nl", profile.CompanyName)
}

func TestLogin(t *testing.T) {
	uc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, dto.SignupRequest{Email: "jan@voorbeeld.nl", Password: "wachtwoord123"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "jan@voorbeeld.nl", Password: "wachtwoord123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _ := newAuthFixture(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nee@voorbeeld.nl", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, dto.SignupRequest{Email: "jan@voorbeeld.nl", Password: "wachtwoord123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "jan@voorbeeld.nl", Password: "fout"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
