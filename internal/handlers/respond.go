package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/movieverse/server/internal/models"
)

// respondError is the one place service errors become HTTP statuses, per the
// error taxonomy: validation and conflicts are 400, credential failures 401,
// role failures 403, unknown ids 404, everything else 500.
func respondError(c *gin.Context, err error) {
	var conflict *models.SeatConflictError
	var invalid validator.ValidationErrors

	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(conflict.Error()))
	case errors.As(err, &invalid),
		errors.Is(err, models.ErrInvalidRequest),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrMissingCredentials),
		errors.Is(err, models.ErrMalformedCredentials),
		errors.Is(err, models.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(models.ErrNotConfigured.Error()))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("internal server error"))
	}
}
