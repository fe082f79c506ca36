package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Konete326/elitedev/internal/domain"
)

// ContactRepo is the MongoDB-backed contact store.
type ContactRepo struct {
	collection *mongo.Collection
}

func NewContactRepo(db *mongo.Database) *ContactRepo {
	return &ContactRepo{
		collection: db.Collection("contacts"),
	}
}

func (r *ContactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	res, err := r.collection.InsertOne(ctx, msg)
	if err != nil {
		return &domain.StoreError{Op: "insert contact", Err: err}
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = id
	}
	return nil
}

func (r *ContactRepo) ListAll(ctx context.Context) ([]domain.ContactMessage, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, &domain.StoreError{Op: "list contacts", Err: err}
	}

	var msgs []domain.ContactMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, &domain.StoreError{Op: "decode contacts", Err: err}
	}
	return msgs, nil
}
