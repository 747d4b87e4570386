package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ShowRepository interface {
	Create(ctx context.Context, show *Show) (string, error)
	FindByID(ctx context.Context, id string) (*Show, error)
	List(ctx context.Context, theatreID string, movieID int) ([]Show, error)
}

type TheatreRepository interface {
	Create(ctx context.Context, theatre *Theatre) (string, error)
	List(ctx context.Context, city string) ([]Theatre, error)
}

type MongoShowRepo struct {
	*MongoRepo
}

func NewMongoShowRepo(base *MongoRepo) *MongoShowRepo {
	return &MongoShowRepo{MongoRepo: base}
}

func (r *MongoShowRepo) Create(ctx context.Context, show *Show) (string, error) {
	if show.ID.IsZero() {
		show.ID = primitive.NewObjectID()
	}
	if err := Validate.Struct(show); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	_, err := r.Collection(ShowCollection).InsertOne(ctx, show)
	if err != nil {
		return "", fmt.Errorf("failed to insert show: %w", err)
	}
	return show.ID.Hex(), nil
}

func (r *MongoShowRepo) FindByID(ctx context.Context, id string) (*Show, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var show Show
	err = r.Collection(ShowCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&show)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up show: %w", err)
	}
	return &show, nil
}

func (r *MongoShowRepo) List(ctx context.Context, theatreID string, movieID int) ([]Show, error) {
	filter := bson.M{}
	if theatreID != "" {
		filter["theatre_id"] = theatreID
	}
	if movieID != 0 {
		filter["movie_id"] = movieID
	}
	cur, err := r.Collection(ShowCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	defer cur.Close(ctx)

	shows := []Show{}
	if err := cur.All(ctx, &shows); err != nil {
		return nil, fmt.Errorf("failed to decode shows: %w", err)
	}
	return shows, nil
}

type MongoTheatreRepo struct {
	*MongoRepo
}

func NewMongoTheatreRepo(base *MongoRepo) *MongoTheatreRepo {
	return &MongoTheatreRepo{MongoRepo: base}
}

func (r *MongoTheatreRepo) Create(ctx context.Context, theatre *Theatre) (string, error) {
	if theatre.ID.IsZero() {
		theatre.ID = primitive.NewObjectID()
	}
	if err := Validate.Struct(theatre); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	_, err := r.Collection(TheatreCollection).InsertOne(ctx, theatre)
	if err != nil {
		return "", fmt.Errorf("failed to insert theatre: %w", err)
	}
	return theatre.ID.Hex(), nil
}

func (r *MongoTheatreRepo) List(ctx context.Context, city string) ([]Theatre, error) {
	filter := bson.M{}
	if city != "" {
		filter["city"] = city
	}
	cur, err := r.Collection(TheatreCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list theatres: %w", err)
	}
	defer cur.Close(ctx)

	theatres := []Theatre{}
	if err := cur.All(ctx, &theatres); err != nil {
		return nil, fmt.Errorf("failed to decode theatres: %w", err)
	}
	return theatres, nil
}
