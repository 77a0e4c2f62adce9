package repositories

import (
	"context"
	"errors"

	"summer-camp-server/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no document matches the lookup.
var ErrNotFound = errors.New("document not found")

// ErrDuplicate is returned when a unique index rejects an insert.
var ErrDuplicate = errors.New("duplicate document")

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.InsertResult, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error)
}

type ClassRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]models.Class, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	Insert(ctx context.Context, class *models.Class) (*models.InsertResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.UpdateResult, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*models.UpdateResult, error)
	// RecordEnrolment takes one seat (never below zero) and adds one enrolled student.
	RecordEnrolment(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error)
}

type CartRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SelectedClass, error)
	ListByOwner(ctx context.Context, email string) ([]models.SelectedClass, error)
	Insert(ctx context.Context, entry *models.SelectedClass) (*models.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	DeleteByClass(ctx context.Context, classID, owner string) (*models.DeleteResult, error)
}

type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) (*models.InsertResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	ListByOwner(ctx context.Context, email string) ([]models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
}

type InstructorRepository interface {
	List(ctx context.Context) ([]models.Instructor, error)
}

// Repositories รวม repository ของทุก collection ไว้ส่งต่อให้ service
type Repositories struct {
	Users       UserRepository
	Classes     ClassRepository
	Carts       CartRepository
	Payments    PaymentRepository
	Instructors InstructorRepository
}

func insertResult(res *mongo.InsertOneResult) *models.InsertResult {
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateResult(res *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}

func deleteResult(res *mongo.DeleteResult) *models.DeleteResult {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

var (
	_ UserRepository       = (*MongoUserRepository)(nil)
	_ ClassRepository      = (*MongoClassRepository)(nil)
	_ CartRepository       = (*MongoCartRepository)(nil)
	_ PaymentRepository    = (*MongoPaymentRepository)(nil)
	_ InstructorRepository = (*MongoInstructorRepository)(nil)
)
