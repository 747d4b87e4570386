package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	// FindConflicting returns any booking for the show whose seat list
	// intersects seats, or ErrNotFound when the seats are free. Payment
	// status is deliberately not filtered: a pending booking blocks seats
	// just like a paid one.
	FindConflicting(ctx context.Context, showID string, seats []string) (*Booking, error)

	// ClaimSeats takes the seats for the show through the unique
	// (show_id, seat) index. On conflict it returns the contested seat
	// label and guarantees no claims from this call remain.
	ClaimSeats(ctx context.Context, showID string, seats []string) (string, error)

	// ReleaseSeats undoes claims, used when the booking insert itself fails.
	ReleaseSeats(ctx context.Context, showID string, seats []string) error

	Insert(ctx context.Context, booking *Booking) (string, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)

	// SetPaymentStatus is the external payment collaborator's single contract
	// point with this core: it eventually moves pending to a terminal state.
	SetPaymentStatus(ctx context.Context, id, status, provider string) error
}

type MongoBookingRepo struct {
	*MongoRepo
}

func NewMongoBookingRepo(base *MongoRepo) *MongoBookingRepo {
	return &MongoBookingRepo{MongoRepo: base}
}

func (r *MongoBookingRepo) FindConflicting(ctx context.Context, showID string, seats []string) (*Booking, error) {
	filter := bson.M{"show_id": showID, "seats": bson.M{"$in": seats}}
	var booking Booking
	err := r.Collection(BookingCollection).FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to check seat availability: %w", err)
	}
	return &booking, nil
}

// ClaimSeats inserts one claim per seat, in request order. Inserting
// sequentially means a duplicate-key error identifies exactly which seat
// lost the race; the claims already written by this call are then removed
// before returning so a rejected request never leaves seats blocked.
func (r *MongoBookingRepo) ClaimSeats(ctx context.Context, showID string, seats []string) (string, error) {
	col := r.Collection(SeatClaimCollection)
	for i, seat := range seats {
		_, err := col.InsertOne(ctx, SeatClaim{ShowID: showID, Seat: seat})
		if err == nil {
			continue
		}
		if mongo.IsDuplicateKeyError(err) {
			if relErr := r.ReleaseSeats(ctx, showID, seats[:i]); relErr != nil {
				return seat, fmt.Errorf("failed to release claims after conflict on %s: %w", seat, relErr)
			}
			return seat, nil
		}
		if relErr := r.ReleaseSeats(ctx, showID, seats[:i]); relErr != nil {
			return "", fmt.Errorf("failed to release claims after insert error: %w", relErr)
		}
		return "", fmt.Errorf("failed to claim seat %s: %w", seat, err)
	}
	return "", nil
}

func (r *MongoBookingRepo) ReleaseSeats(ctx context.Context, showID string, seats []string) error {
	if len(seats) == 0 {
		return nil
	}
	filter := bson.M{"show_id": showID, "seat": bson.M{"$in": seats}}
	_, err := r.Collection(SeatClaimCollection).DeleteMany(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to release seat claims: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) Insert(ctx context.Context, booking *Booking) (string, error) {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	_, err := r.Collection(BookingCollection).InsertOne(ctx, booking)
	if err != nil {
		return "", fmt.Errorf("failed to insert booking: %w", err)
	}
	return booking.ID.Hex(), nil
}

func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	cur, err := r.Collection(BookingCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := []Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) SetPaymentStatus(ctx context.Context, id, status, provider string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	update := bson.M{"payment_status": status}
	if provider != "" {
		update["payment_provider"] = provider
	}
	res, err := r.Collection(BookingCollection).UpdateByID(ctx, oid, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
