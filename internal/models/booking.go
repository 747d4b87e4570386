package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment status values. The core only ever writes "pending"; the external
// payment collaborator moves a booking to a terminal state by id.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	ShowID          string             `bson:"show_id" json:"show_id"`
	Seats           []string           `bson:"seats" json:"seats"`
	Amount          float64            `bson:"amount" json:"amount"`
	PaymentStatus   string             `bson:"payment_status" json:"payment_status"`
	PaymentProvider string             `bson:"payment_provider,omitempty" json:"payment_provider,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// SeatClaim is one row of the booking_seats ledger. A unique compound index
// on (show_id, seat) makes inserting a claim the atomic "take this seat"
// operation; the booking document itself is only written once every claim
// for the request has landed.
type SeatClaim struct {
	ShowID string `bson:"show_id"`
	Seat   string `bson:"seat"`
}
