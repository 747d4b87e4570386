package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/movieverse/server/internal/models"
)

// BookingService is the booking engine. Seat-conflict safety rests on the
// unique (show_id, seat) index behind BookingRepository.ClaimSeats, not on
// the existence pre-check: two concurrent requests for overlapping seats
// race on the index and exactly one wins.
type BookingService struct {
	bookings models.BookingRepository
	shows    models.ShowRepository
	logger   *slog.Logger
}

func NewBookingService(bookings models.BookingRepository, shows models.ShowRepository, logger *slog.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		shows:    shows,
		logger:   logger,
	}
}

// Create reserves the seats for the principal and records a booking in the
// "pending" payment state. The amount is stored as sent by the client; it is
// not validated against show price × seat count. No record of any kind is
// written for an invalid request.
func (s *BookingService) Create(ctx context.Context, principal *models.Principal, showID string, seats []string, amount float64) (*models.Booking, error) {
	if err := validateSeats(seats); err != nil {
		return nil, err
	}

	if _, err := s.shows.FindByID(ctx, showID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown show %s", models.ErrInvalidRequest, showID)
		}
		return nil, err
	}

	// Fast path: an intersection query over existing bookings names every
	// contested seat without burning claim writes. A pending booking blocks
	// a seat the same as a paid one.
	if existing, err := s.bookings.FindConflicting(ctx, showID, seats); err == nil {
		return nil, &models.SeatConflictError{ShowID: showID, Seats: intersect(existing.Seats, seats)}
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	contested, err := s.bookings.ClaimSeats(ctx, showID, seats)
	if err != nil {
		return nil, err
	}
	if contested != "" {
		return nil, &models.SeatConflictError{ShowID: showID, Seats: []string{contested}}
	}

	booking := &models.Booking{
		UserID:        principal.ID,
		ShowID:        showID,
		Seats:         seats,
		Amount:        amount,
		PaymentStatus: models.PaymentStatusPending,
	}

	id, err := s.bookings.Insert(ctx, booking)
	if err != nil {
		if relErr := s.bookings.ReleaseSeats(ctx, showID, seats); relErr != nil {
			s.logger.Error("failed to release seat claims after booking insert failure",
				"show_id", showID, "seats", seats, "error", relErr)
		}
		return nil, err
	}

	s.logger.Info("booking created",
		"booking_id", id, "user_id", principal.ID, "show_id", showID, "seats", len(seats))
	return booking, nil
}

// ListForUser returns every booking owned by userID, in any payment status.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func validateSeats(seats []string) error {
	if len(seats) == 0 {
		return fmt.Errorf("%w: seat list must not be empty", models.ErrInvalidRequest)
	}
	seen := make(map[string]bool, len(seats))
	for _, seat := range seats {
		if strings.TrimSpace(seat) == "" {
			return fmt.Errorf("%w: seat labels must not be blank", models.ErrInvalidRequest)
		}
		if seen[seat] {
			return fmt.Errorf("%w: duplicate seat %s", models.ErrInvalidRequest, seat)
		}
		seen[seat] = true
	}
	return nil
}

func intersect(held, requested []string) []string {
	taken := make(map[string]bool, len(held))
	for _, seat := range held {
		taken[seat] = true
	}
	var out []string
	for _, seat := range requested {
		if taken[seat] {
			out = append(out, seat)
		}
	}
	return out
}
