package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/logger"
	"eventify/internal/models"
	"eventify/internal/services"
	"eventify/internal/storage"
	"eventify/internal/token"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Setenv("LOG_DIR", t.TempDir())
	log := logger.NewLogger()
	t.Cleanup(log.Close)
	return log
}

func newAuthService(t *testing.T) (*services.AuthService, *storage.InMemoryStore) {
	store := storage.NewInMemoryStore()
	tokens := token.NewService("test-secret", 30*time.Minute)
	return services.NewAuthService(store, tokens, newTestLogger(t)), store
}

func TestRegisterCreatesInactiveUser(t *testing.T) {
	auth, _ := newAuthService(t)

	user, err := auth.Register(&models.RegisterRequest{
		Email:    "bob@example.com",
		Name:     "Bob",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.IsActive, "new accounts start deactivated")
	assert.NotEqual(t, "supersecret", user.HashedPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	req := &models.RegisterRequest{Email: "bob@example.com", Name: "Bob", Password: "supersecret"}
	_, err := auth.Register(req)
	require.NoError(t, err)

	_, err = auth.Register(req)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	auth, store := newAuthService(t)

	user, err := auth.Register(&models.RegisterRequest{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// Promote and activate so the claims reflect the current role
	user.Role = models.RoleAdmin
	user.IsActive = true
	require.NoError(t, store.UpdateUser(user))

	resp, err := auth.Login(&models.LoginRequest{Email: "admin@example.com", Password: "supersecret"})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, models.RoleAdmin, resp.Role)
	assert.True(t, resp.IsActive)

	tokens := token.NewService("test-secret", 30*time.Minute)
	claims, err := tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@example.com", claims.Subject)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Register(&models.RegisterRequest{
		Email:    "bob@example.com",
		Name:     "Bob",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = auth.Login(&models.LoginRequest{Email: "bob@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Login(&models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials,
		"unknown email and wrong password must be indistinguishable")
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	auth, _ := newAuthService(t)

	first, err := auth.HashPassword("supersecret")
	require.NoError(t, err)
	second, err := auth.HashPassword("supersecret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
