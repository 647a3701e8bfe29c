package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/models"
	"eventify/internal/token"
)

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "alice@example.com",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
}

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	svc := token.NewService("test-secret", 30*time.Minute)

	signed, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := token.NewService("test-secret", -time.Minute)

	signed, err := svc.Issue(testUser())
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := token.NewService("test-secret", 30*time.Minute)

	signed, err := svc.Issue(testUser())
	require.NoError(t, err)

	// Flip a character in the payload segment
	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyWrongKey(t *testing.T) {
	issuer := token.NewService("secret-one", 30*time.Minute)
	verifier := token.NewService("secret-two", 30*time.Minute)

	signed, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	svc := token.NewService("test-secret", 30*time.Minute)

	// A token signed with "none" must never pass, regardless of its claims
	claims := &token.Claims{
		UserID: 42,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyGarbageInput(t *testing.T) {
	svc := token.NewService("test-secret", 30*time.Minute)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, token.ErrInvalidToken, "input %q", raw)
	}
}
