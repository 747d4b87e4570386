package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *Review) (string, error)
	ListByMovie(ctx context.Context, movieID int) ([]Review, error)
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) (string, error)
	List(ctx context.Context) ([]Movie, error)
}

type MongoReviewRepo struct {
	*MongoRepo
}

func NewMongoReviewRepo(base *MongoRepo) *MongoReviewRepo {
	return &MongoReviewRepo{MongoRepo: base}
}

func (r *MongoReviewRepo) Create(ctx context.Context, review *Review) (string, error) {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	if err := Validate.Struct(review); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	_, err := r.Collection(ReviewCollection).InsertOne(ctx, review)
	if err != nil {
		return "", fmt.Errorf("failed to insert review: %w", err)
	}
	return review.ID.Hex(), nil
}

func (r *MongoReviewRepo) ListByMovie(ctx context.Context, movieID int) ([]Review, error) {
	cur, err := r.Collection(ReviewCollection).Find(ctx, bson.M{"movie_id": movieID})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cur.Close(ctx)

	reviews := []Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

type MongoMovieRepo struct {
	*MongoRepo
}

func NewMongoMovieRepo(base *MongoRepo) *MongoMovieRepo {
	return &MongoMovieRepo{MongoRepo: base}
}

func (r *MongoMovieRepo) Create(ctx context.Context, movie *Movie) (string, error) {
	if movie.ID.IsZero() {
		movie.ID = primitive.NewObjectID()
	}
	if err := Validate.Struct(movie); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	_, err := r.Collection(MovieCollection).InsertOne(ctx, movie)
	if err != nil {
		return "", fmt.Errorf("failed to insert movie: %w", err)
	}
	return movie.ID.Hex(), nil
}

func (r *MongoMovieRepo) List(ctx context.Context) ([]Movie, error) {
	cur, err := r.Collection(MovieCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer cur.Close(ctx)

	movies := []Movie{}
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	return movies, nil
}
