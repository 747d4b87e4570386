package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movieverse/server/internal/middleware"
	"github.com/movieverse/server/internal/models"
	"github.com/movieverse/server/internal/services"
)

type bookingPayload struct {
	ShowID string   `json:"show_id" binding:"required"`
	Seats  []string `json:"seats"`
	Amount float64  `json:"amount" binding:"gte=0"`
}

type bookingCreated struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func CreateBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.PrincipalFrom(c)
		if !ok {
			respondError(c, models.ErrMissingCredentials)
			return
		}

		var payload bookingPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidRequest, err))
			return
		}

		booking, err := bookings.Create(c.Request.Context(), principal, payload.ShowID, payload.Seats, payload.Amount)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(bookingCreated{
			ID:     booking.ID.Hex(),
			Status: "pending_payment",
		}, "booking created"))
	}
}

func ListMyBookings(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.PrincipalFrom(c)
		if !ok {
			respondError(c, models.ErrMissingCredentials)
			return
		}

		items, err := bookings.ListForUser(c.Request.Context(), principal.ID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.ListResponse(items, len(items)))
	}
}
