package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/movieverse/server/internal/models"
)

// In-memory repository fakes mirroring the Mongo implementations' contracts,
// including the unique (show_id, seat) claim semantics.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return "", models.ErrDuplicateEmail
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now().UTC()
	clone := *user
	f.users[user.Email] = &clone
	return user.ID.Hex(), nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID.Hex() == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	claims   map[string]bool // showID + "|" + seat
	bookings []models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{claims: map[string]bool{}}
}

func claimKey(showID, seat string) string { return showID + "|" + seat }

func (f *fakeBookingRepo) FindConflicting(_ context.Context, showID string, seats []string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	requested := map[string]bool{}
	for _, seat := range seats {
		requested[seat] = true
	}
	for i := range f.bookings {
		if f.bookings[i].ShowID != showID {
			continue
		}
		for _, seat := range f.bookings[i].Seats {
			if requested[seat] {
				clone := f.bookings[i]
				return &clone, nil
			}
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeBookingRepo) ClaimSeats(_ context.Context, showID string, seats []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, seat := range seats {
		if f.claims[claimKey(showID, seat)] {
			for _, taken := range seats[:i] {
				delete(f.claims, claimKey(showID, taken))
			}
			return seat, nil
		}
		f.claims[claimKey(showID, seat)] = true
	}
	return "", nil
}

func (f *fakeBookingRepo) ReleaseSeats(_ context.Context, showID string, seats []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, seat := range seats {
		delete(f.claims, claimKey(showID, seat))
	}
	return nil
}

func (f *fakeBookingRepo) Insert(_ context.Context, booking *models.Booking) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	booking.CreatedAt = time.Now().UTC()
	f.bookings = append(f.bookings, *booking)
	return booking.ID.Hex(), nil
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) SetPaymentStatus(_ context.Context, id, status, provider string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID.Hex() == id {
			f.bookings[i].PaymentStatus = status
			if provider != "" {
				f.bookings[i].PaymentProvider = provider
			}
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

type fakeShowRepo struct {
	mu    sync.Mutex
	shows map[string]*models.Show
}

func newFakeShowRepo() *fakeShowRepo {
	return &fakeShowRepo{shows: map[string]*models.Show{}}
}

func (f *fakeShowRepo) Create(_ context.Context, show *models.Show) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if show.ID.IsZero() {
		show.ID = primitive.NewObjectID()
	}
	clone := *show
	f.shows[show.ID.Hex()] = &clone
	return show.ID.Hex(), nil
}

func (f *fakeShowRepo) FindByID(_ context.Context, id string) (*models.Show, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	show, ok := f.shows[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *show
	return &clone, nil
}

func (f *fakeShowRepo) List(_ context.Context, theatreID string, movieID int) ([]models.Show, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Show{}
	for _, show := range f.shows {
		if theatreID != "" && show.TheatreID != theatreID {
			continue
		}
		if movieID != 0 && show.MovieID != movieID {
			continue
		}
		out = append(out, *show)
	}
	return out, nil
}
