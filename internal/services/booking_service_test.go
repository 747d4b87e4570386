package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movieverse/server/internal/models"
)

func newBookingFixture(t *testing.T) (*BookingService, *fakeBookingRepo, string) {
	t.Helper()
	bookings := newFakeBookingRepo()
	shows := newFakeShowRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	showID, err := shows.Create(context.Background(), &models.Show{
		TheatreID:  "t1",
		MovieID:    42,
		ShowTime:   time.Now().Add(24 * time.Hour),
		Price:      12.5,
		SeatsTotal: 80,
	})
	require.NoError(t, err)

	return NewBookingService(bookings, shows, logger), bookings, showID
}

func userPrincipal(id string) *models.Principal {
	return &models.Principal{ID: id, Email: id + "@example.com", Role: models.RoleUser}
}

func TestCreateBookingSeatConflictSequence(t *testing.T) {
	svc, repo, showID := newBookingFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, userPrincipal("u1"), showID, []string{"A1", "A2"}, 25)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, first.PaymentStatus)
	assert.Equal(t, []string{"A1", "A2"}, first.Seats)

	_, err = svc.Create(ctx, userPrincipal("u2"), showID, []string{"A2", "A3"}, 25)
	var conflict *models.SeatConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Contains(t, conflict.Seats, "A2")
	assert.NotContains(t, conflict.Seats, "A3")

	// The rejected request must not leave A3 blocked.
	third, err := svc.Create(ctx, userPrincipal("u2"), showID, []string{"A3"}, 12.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"A3"}, third.Seats)

	assert.Equal(t, 2, repo.count())
}

func TestCreateBookingPendingBlocksSeat(t *testing.T) {
	svc, _, showID := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, userPrincipal("u1"), showID, []string{"B1"}, 12.5)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusPending, booking.PaymentStatus)

	_, err = svc.Create(ctx, userPrincipal("u2"), showID, []string{"B1"}, 12.5)
	var conflict *models.SeatConflictError
	assert.True(t, errors.As(err, &conflict), "a pending booking must block the seat")
}

func TestCreateBookingEmptySeatsCreatesNoRecord(t *testing.T) {
	svc, repo, showID := newBookingFixture(t)

	_, err := svc.Create(context.Background(), userPrincipal("u1"), showID, nil, 0)
	assert.True(t, errors.Is(err, models.ErrInvalidRequest))
	assert.Equal(t, 0, repo.count())
}

func TestCreateBookingRejectsDuplicateAndBlankSeatLabels(t *testing.T) {
	svc, repo, showID := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, userPrincipal("u1"), showID, []string{"A1", "A1"}, 25)
	assert.True(t, errors.Is(err, models.ErrInvalidRequest))

	_, err = svc.Create(ctx, userPrincipal("u1"), showID, []string{"A1", "  "}, 25)
	assert.True(t, errors.Is(err, models.ErrInvalidRequest))

	assert.Equal(t, 0, repo.count())
}

func TestCreateBookingUnknownShow(t *testing.T) {
	svc, repo, _ := newBookingFixture(t)

	_, err := svc.Create(context.Background(), userPrincipal("u1"), "missing-show", []string{"A1"}, 12.5)
	assert.True(t, errors.Is(err, models.ErrInvalidRequest))
	assert.Equal(t, 0, repo.count())
}

func TestCreateBookingConcurrentOverlapOneWinner(t *testing.T) {
	svc, repo, showID := newBookingFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	seatLists := [][]string{{"C1", "C2"}, {"C2", "C3"}}
	for i := range seatLists {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(ctx, userPrincipal("u1"), showID, seatLists[i], 25)
		}(i)
	}
	wg.Wait()

	var conflicts int
	for _, err := range errs {
		var conflict *models.SeatConflictError
		if errors.As(err, &conflict) {
			conflicts++
		} else {
			require.NoError(t, err)
		}
	}
	assert.Equal(t, 1, conflicts, "exactly one of two overlapping requests must lose")
	assert.Equal(t, 1, repo.count())
}

func TestListForUserNeverReturnsForeignBookings(t *testing.T) {
	svc, _, showID := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, userPrincipal("alice"), showID, []string{"D1"}, 12.5)
	require.NoError(t, err)
	_, err = svc.Create(ctx, userPrincipal("bob"), showID, []string{"D2"}, 12.5)
	require.NoError(t, err)

	mine, err := svc.ListForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "alice", mine[0].UserID)

	none, err := svc.ListForUser(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, none)
}
