package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/movieverse/server/internal/helpers"
	"github.com/movieverse/server/internal/models"
)

const principalKey = "principal"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// Authenticate guards protected routes. It expects `Authorization: Bearer
// <token>`: an absent header, a non-Bearer scheme and a token that fails
// verification are all rejected with 401 and distinct error messages. On
// success the verified principal is stored in the context.
func Authenticate(tokens *helpers.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, models.ErrMissingCredentials)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, models.ErrMalformedCredentials)
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			abortUnauthorized(c, models.ErrInvalidToken)
			return
		}

		c.Set(principalKey, claims.Principal())
		c.Next()
	}
}

// RequireRole enforces an exact role match on an already-authenticated
// request. There is no role hierarchy: admin does not implicitly satisfy a
// user-only gate.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			abortUnauthorized(c, models.ErrMissingCredentials)
			return
		}
		if !principal.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse(models.ErrForbidden.Error()))
			return
		}
		c.Next()
	}
}

// PrincipalFrom retrieves the authenticated principal set by Authenticate.
func PrincipalFrom(c *gin.Context) (*models.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := v.(*models.Principal)
	return principal, ok
}

func abortUnauthorized(c *gin.Context, err error) {
	var msg string
	switch {
	case errors.Is(err, models.ErrMissingCredentials):
		msg = models.ErrMissingCredentials.Error()
	case errors.Is(err, models.ErrMalformedCredentials):
		msg = models.ErrMalformedCredentials.Error()
	default:
		msg = models.ErrInvalidToken.Error()
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(msg))
}
