package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Show struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TheatreID  string             `bson:"theatre_id" json:"theatre_id" validate:"required"`
	MovieID    int                `bson:"movie_id" json:"movie_id" validate:"required"`
	ShowTime   time.Time          `bson:"show_time" json:"show_time" validate:"required"`
	Price      float64            `bson:"price" json:"price" validate:"gte=0"`
	SeatsTotal int                `bson:"seats_total" json:"seats_total" validate:"min=1,max=300"`
}

type Theatre struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name" validate:"required"`
	City    string             `bson:"city" json:"city" validate:"required"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
}
