package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Movie struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TmdbID       int                `bson:"tmdb_id" json:"tmdb_id" validate:"required"`
	Title        string             `bson:"title" json:"title" validate:"required"`
	Overview     string             `bson:"overview,omitempty" json:"overview,omitempty"`
	PosterPath   string             `bson:"poster_path,omitempty" json:"poster_path,omitempty"`
	BackdropPath string             `bson:"backdrop_path,omitempty" json:"backdrop_path,omitempty"`
	Genres       []string           `bson:"genres,omitempty" json:"genres,omitempty"`
	ReleaseDate  string             `bson:"release_date,omitempty" json:"release_date,omitempty"`
	Rating       float64            `bson:"rating,omitempty" json:"rating,omitempty" validate:"gte=0,lte=10"`
}

// Review is immutable once created: there is no update or delete path.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MovieID   int                `bson:"movie_id" json:"movie_id" validate:"required"`
	UserID    string             `bson:"user_id" json:"user_id" validate:"required"`
	Rating    int                `bson:"rating" json:"rating" validate:"min=1,max=5"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
