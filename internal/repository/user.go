package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Konete326/elitedev/internal/domain"
)

// UserRepo is the MongoDB-backed credential store.
type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{
		collection: db.Collection("users"),
	}
}

// EnsureIndexes creates the unique index on username. Duplicate signups are
// rejected by this index, not by an application-level check.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateKey
		}
		return &domain.StoreError{Op: "insert user", Err: err}
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "find user", Err: err}
	}
	return &user, nil
}

// ListAll returns every user projected to firstname, username and the stored
// password hash, matching what the admin view displays.
func (r *UserRepo) ListAll(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetProjection(bson.M{
		"firstname": 1,
		"username":  1,
		"password":  1,
	})
	cur, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &domain.StoreError{Op: "list users", Err: err}
	}

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, &domain.StoreError{Op: "decode users", Err: err}
	}
	return users, nil
}
