package services

import (
	"context"
	"fmt"

	"summer-camp-server/src/models"
	"summer-camp-server/src/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartService struct {
	carts   repositories.CartRepository
	classes repositories.ClassRepository
}

func NewCartService(carts repositories.CartRepository, classes repositories.ClassRepository) *CartService {
	return &CartService{carts: carts, classes: classes}
}

// Select เพิ่มคลาสลงตะกร้า คลาสต้องมีอยู่จริง
func (s *CartService) Select(ctx context.Context, req models.SelectClassRequest) (*models.InsertResult, error) {
	classID, err := primitive.ObjectIDFromHex(req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("class id: %w", repositories.ErrNotFound)
	}
	if _, err := s.classes.FindByID(ctx, classID); err != nil {
		return nil, err
	}
	return s.carts.Insert(ctx, req.ToSelectedClass())
}

func (s *CartService) ListByOwner(ctx context.Context, email string) ([]models.SelectedClass, error) {
	return s.carts.ListByOwner(ctx, email)
}

// Owned returns the entry only when it belongs to email.
func (s *CartService) Owned(ctx context.Context, id primitive.ObjectID, email string) (*models.SelectedClass, error) {
	entry, err := s.carts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.MyEmail != email {
		return nil, ErrForbidden
	}
	return entry, nil
}

func (s *CartService) Update(ctx context.Context, id primitive.ObjectID, email string, req models.UpdateSelectedClassRequest) (*models.UpdateResult, error) {
	if _, err := s.Owned(ctx, id, email); err != nil {
		return nil, err
	}
	fields := req.Fields()
	if len(fields) == 0 {
		return &models.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	}
	return s.carts.Update(ctx, id, fields)
}

func (s *CartService) Remove(ctx context.Context, id primitive.ObjectID, email string) (*models.DeleteResult, error) {
	if _, err := s.Owned(ctx, id, email); err != nil {
		return nil, err
	}
	return s.carts.DeleteByID(ctx, id)
}
