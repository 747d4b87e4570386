package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// Collection names are an external schema contract; other tooling reads
// these collections directly, so the names must stay stable.
const (
	UserCollection    = "user"
	MovieCollection   = "movie"
	ReviewCollection  = "review"
	TheatreCollection = "theatre"
	ShowCollection    = "show"
	BookingCollection = "booking"

	// SeatClaimCollection is internal to the booking engine and not part of
	// the stable contract above.
	SeatClaimCollection = "booking_seats"
)

// Collections returns the stable collection names exposed by the /schema
// endpoint.
func Collections() []string {
	return []string{
		UserCollection,
		MovieCollection,
		ReviewCollection,
		TheatreCollection,
		ShowCollection,
		BookingCollection,
	}
}

// MongoRepo is the shared base for the typed per-entity repositories.
type MongoRepo struct {
	db *mongo.Database
}

func NewMongoRepo(client *mongo.Client, dbName string) (*MongoRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("mongodb client is not initialized: %w", ErrNotConfigured)
	}
	return &MongoRepo{db: client.Database(dbName)}, nil
}

func (m *MongoRepo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}
