package repositories

import (
	"context"
	"fmt"

	"summer-camp-server/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoCartRepository struct {
	Collection *mongo.Collection
}

func NewMongoCartRepository(col *mongo.Collection) *MongoCartRepository {
	return &MongoCartRepository{Collection: col}
}

func (r *MongoCartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SelectedClass, error) {
	var entry models.SelectedClass
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry); err != nil {
		return nil, notFound(err)
	}
	return &entry, nil
}

func (r *MongoCartRepository) ListByOwner(ctx context.Context, email string) ([]models.SelectedClass, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"myemail": email})
	if err != nil {
		return nil, fmt.Errorf("find selected classes: %w", err)
	}
	entries := []models.SelectedClass{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode selected classes: %w", err)
	}
	return entries, nil
}

func (r *MongoCartRepository) Insert(ctx context.Context, entry *models.SelectedClass) (*models.InsertResult, error) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	res, err := r.Collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("insert selected class: %w", err)
	}
	return insertResult(res), nil
}

func (r *MongoCartRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.UpdateResult, error) {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update selected class: %w", err)
	}
	return updateResult(res), nil
}

func (r *MongoCartRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete selected class: %w", err)
	}
	return deleteResult(res), nil
}

// DeleteByClass ลบรายการในตะกร้าของ owner ที่อ้างถึง classId (เทียบเป็น string)
func (r *MongoCartRepository) DeleteByClass(ctx context.Context, classID, owner string) (*models.DeleteResult, error) {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"classId": classID, "myemail": owner})
	if err != nil {
		return nil, fmt.Errorf("delete selected class by class: %w", err)
	}
	return deleteResult(res), nil
}
