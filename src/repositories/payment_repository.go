package repositories

import (
	"context"
	"fmt"

	"summer-camp-server/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPaymentRepository struct {
	Collection *mongo.Collection
}

func NewMongoPaymentRepository(col *mongo.Collection) *MongoPaymentRepository {
	return &MongoPaymentRepository{Collection: col}
}

func (r *MongoPaymentRepository) Insert(ctx context.Context, payment *models.Payment) (*models.InsertResult, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	res, err := r.Collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return insertResult(res), nil
}

func (r *MongoPaymentRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete payment: %w", err)
	}
	return deleteResult(res), nil
}

func (r *MongoPaymentRepository) ListByOwner(ctx context.Context, email string) ([]models.Payment, error) {
	return r.find(ctx, bson.M{"myemail": email})
}

func (r *MongoPaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	return r.find(ctx, bson.M{})
}

// find เรียงจากรายการล่าสุดก่อน
func (r *MongoPaymentRepository) find(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}
