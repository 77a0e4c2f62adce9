package repositories

import (
	"context"
	"fmt"

	"summer-camp-server/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoInstructorRepository struct {
	Collection *mongo.Collection
}

func NewMongoInstructorRepository(col *mongo.Collection) *MongoInstructorRepository {
	return &MongoInstructorRepository{Collection: col}
}

func (r *MongoInstructorRepository) List(ctx context.Context) ([]models.Instructor, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find instructors: %w", err)
	}
	instructors := []models.Instructor{}
	if err := cursor.All(ctx, &instructors); err != nil {
		return nil, fmt.Errorf("decode instructors: %w", err)
	}
	return instructors, nil
}
