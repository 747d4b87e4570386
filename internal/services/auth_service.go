package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/movieverse/server/internal/helpers"
	"github.com/movieverse/server/internal/models"
)

// AuthService owns registration and login. Both end in a signed access
// token; there is no session state beyond the token itself.
type AuthService struct {
	users      models.UserRepository
	tokens     *helpers.TokenService
	bcryptCost int
	logger     *slog.Logger
}

func NewAuthService(users models.UserRepository, tokens *helpers.TokenService, bcryptCost int, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// TokenResult is what both register and login hand back to the handler.
type TokenResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Register creates a user with role "user" and returns a token for it.
// A taken email fails with ErrDuplicateEmail regardless of password. The
// name defaults to the local part of the email when omitted.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*TokenResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", models.ErrInvalidRequest)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, models.ErrDuplicateEmail
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	if name == "" {
		name = email
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}
	}

	hash, err := helpers.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", id, "email", email)
	return s.issue(id, email, models.RoleUser)
}

// Login verifies credentials and returns a token carrying the stored role.
// Unknown email and wrong password are the same failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !helpers.VerifyPassword(user.PasswordHash, password) {
		return nil, models.ErrInvalidCredentials
	}

	return s.issue(user.ID.Hex(), user.Email, user.Role)
}

func (s *AuthService) issue(subjectID, email, role string) (*TokenResult, error) {
	token, exp, err := s.tokens.Issue(subjectID, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   exp,
	}, nil
}
