package files

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("files")}
}

func (r *Repository) Create(ctx context.Context, f *File) error {
	_, err := r.collection.InsertOne(ctx, f)
	return err
}

func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*File, error) {
	var f File
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *Repository) ListByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]*File, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"organization_id": orgID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*File
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
