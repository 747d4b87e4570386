package helpers

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movieverse/server/internal/config"
	"github.com/movieverse/server/internal/models"
)

func newTestTokenService(ttl time.Duration) *TokenService {
	return NewTokenService(&config.Config{
		JWTSecret: "unit-test-secret",
		TokenTTL:  ttl,
	})
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	token, exp, err := svc.Issue("user-123", "a@b.com", models.RoleUser)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.False(t, claims.IsAdmin())
	assert.True(t, claims.HasRole(models.RoleUser))
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	token, _, err := svc.Issue("user-123", "a@b.com", models.RoleUser)
	require.NoError(t, err)

	// Flip one byte in the payload segment; the signature no longer matches.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	mid := len(payload) / 2
	if payload[mid] == 'A' {
		payload[mid] = 'B'
	} else {
		payload[mid] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Verify(tampered)
	assert.True(t, errors.Is(err, models.ErrInvalidToken))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(-time.Minute)

	token, _, err := svc.Issue("user-123", "a@b.com", models.RoleUser)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, models.ErrInvalidToken), "expired token must be indistinguishable from a tampered one")
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer := newTestTokenService(time.Hour)
	verifier := NewTokenService(&config.Config{JWTSecret: "other-secret", TokenTTL: time.Hour})

	token, _, err := issuer.Issue("user-123", "a@b.com", models.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errors.Is(err, models.ErrInvalidToken))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(raw)
		assert.True(t, errors.Is(err, models.ErrInvalidToken), "input %q", raw)
	}
}
