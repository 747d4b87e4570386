package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/movieverse/server/internal/config"
	"github.com/movieverse/server/internal/models"
)

// TokenService issues and verifies HS256 access tokens. It holds the signing
// secret and TTL copied out of the config at startup; nothing here reads
// ambient process state during request handling. Tokens are stateless: there
// is no revocation list, logout is client-side discard.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue signs a token for the given identity and returns it along with its
// expiry time.
func (s *TokenService) Issue(subjectID, email, role string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(s.ttl)
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify checks signature integrity and expiry and returns the decoded
// claims. Every failure mode collapses to models.ErrInvalidToken: a tampered
// token, a foreign signing algorithm, a malformed payload and an expired
// token are indistinguishable to the caller. The payload is never trusted
// before the signature checks out.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, models.ErrInvalidToken
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, models.ErrInvalidToken
	}
	return claims, nil
}
