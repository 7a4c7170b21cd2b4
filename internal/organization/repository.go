package organization

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"EduAgent/internal/apperr"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("organizations")}
}

// EnsureIndexes creates the unique index backing the one-account-per-email
// rule; signup races collapse into a duplicate-key error.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}
	_, err := r.collection.Indexes().CreateOne(ctx, model)
	return err
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Organization, error) {
	var org Organization
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&org)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Organization, error) {
	var org Organization
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

func (r *Repository) Create(ctx context.Context, org *Organization) error {
	_, err := r.collection.InsertOne(ctx, org)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.DuplicateAccount("email already registered")
		}
		return err
	}
	return nil
}
