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

type UserRepository interface {
	Create(ctx context.Context, user *User) (string, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

type MongoUserRepo struct {
	*MongoRepo
}

func NewMongoUserRepo(base *MongoRepo) *MongoUserRepo {
	return &MongoUserRepo{MongoRepo: base}
}

// Create inserts the user and returns its hex id. The unique index on email
// makes the insert the authoritative duplicate check; a racing registration
// with the same email surfaces here as ErrDuplicateEmail.
func (r *MongoUserRepo) Create(ctx context.Context, user *User) (string, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if err := Validate.Struct(user); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	_, err := r.Collection(UserCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	return user.ID.Hex(), nil
}

func (r *MongoUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.Collection(UserCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var user User
	err = r.Collection(UserCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user by id: %w", err)
	}
	return &user, nil
}
