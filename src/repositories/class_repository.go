package repositories

import (
	"context"
	"fmt"

	"summer-camp-server/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoClassRepository struct {
	Collection *mongo.Collection
}

func NewMongoClassRepository(col *mongo.Collection) *MongoClassRepository {
	return &MongoClassRepository{Collection: col}
}

func (r *MongoClassRepository) List(ctx context.Context) ([]models.Class, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoClassRepository) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *MongoClassRepository) find(ctx context.Context, filter bson.M) ([]models.Class, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}
	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}
	return classes, nil
}

func (r *MongoClassRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var class models.Class
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&class); err != nil {
		return nil, notFound(err)
	}
	return &class, nil
}

func (r *MongoClassRepository) Insert(ctx context.Context, class *models.Class) (*models.InsertResult, error) {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
	}
	res, err := r.Collection.InsertOne(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}
	return insertResult(res), nil
}

func (r *MongoClassRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.UpdateResult, error) {
	return r.set(ctx, id, bson.M{"status": status})
}

func (r *MongoClassRepository) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*models.UpdateResult, error) {
	return r.set(ctx, id, bson.M{"feedback": feedback})
}

func (r *MongoClassRepository) set(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}
	return updateResult(res), nil
}

// enrolmentPipeline คำนวณ seat/studentsEnrolment ฝั่ง server ในคำสั่งเดียว
var enrolmentPipeline = mongo.Pipeline{
	{{Key: "$set", Value: bson.M{
		"seat": bson.M{"$max": bson.A{
			bson.M{"$subtract": bson.A{bson.M{"$ifNull": bson.A{"$seat", 0}}, 1}},
			0,
		}},
		"studentsEnrolment": bson.M{"$add": bson.A{
			bson.M{"$ifNull": bson.A{"$studentsEnrolment", 0}},
			1,
		}},
	}}},
}

func (r *MongoClassRepository) RecordEnrolment(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error) {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, enrolmentPipeline)
	if err != nil {
		return nil, fmt.Errorf("record enrolment: %w", err)
	}
	return updateResult(res), nil
}
