package services

import (
	"context"

	"summer-camp-server/src/models"
	"summer-camp-server/src/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassService has no transition guard: any status can be set at any time.
type ClassService struct {
	classes repositories.ClassRepository
}

func NewClassService(classes repositories.ClassRepository) *ClassService {
	return &ClassService{classes: classes}
}

func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	return s.classes.List(ctx)
}

func (s *ClassService) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return s.classes.ListByInstructor(ctx, email)
}

// Create บันทึกคลาสใหม่ในสถานะ pending
func (s *ClassService) Create(ctx context.Context, req models.CreateClassRequest) (*models.InsertResult, error) {
	return s.classes.Insert(ctx, req.ToClass())
}

func (s *ClassService) Approve(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error) {
	return s.classes.SetStatus(ctx, id, models.ClassApproved)
}

func (s *ClassService) Deny(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error) {
	return s.classes.SetStatus(ctx, id, models.ClassDenied)
}

func (s *ClassService) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*models.UpdateResult, error) {
	return s.classes.SetFeedback(ctx, id, feedback)
}
