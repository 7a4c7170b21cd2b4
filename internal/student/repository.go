package student

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
	return &Repository{collection: db.Collection("students")}
}

// EnsureIndexes enforces uniqueness of both login identifiers.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.M{"email": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"student_id": 1}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, models)
	return err
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*Student, error) {
	var s Student
	err := r.collection.FindOne(ctx, filter).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Student, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *Repository) FindByStudentID(ctx context.Context, studentID string) (*Student, error) {
	return r.findOne(ctx, bson.M{"student_id": studentID})
}

func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Student, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *Repository) Create(ctx context.Context, s *Student) error {
	_, err := r.collection.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.DuplicateAccount("email or student_id already registered")
		}
		return err
	}
	return nil
}

func (r *Repository) ListByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]*Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"organization_id": orgID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []*Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}
