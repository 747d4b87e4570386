package helpers

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/movieverse/server/internal/models"
)

// Claims is the payload carried by every access token: subject (user id),
// email and role, plus the registered exp/iat fields.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

func (c *Claims) HasRole(role string) bool {
	return c.Role == role
}

// Principal converts verified claims into the request-scoped identity.
func (c *Claims) Principal() *models.Principal {
	return &models.Principal{
		ID:    c.Subject,
		Email: c.Email,
		Role:  c.Role,
	}
}
