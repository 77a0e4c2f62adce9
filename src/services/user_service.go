package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"summer-camp-server/src/models"
	"summer-camp-server/src/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	users          repositories.UserRepository
	bootstrapAdmin string
}

func NewUserService(users repositories.UserRepository, bootstrapAdmin string) *UserService {
	return &UserService{users: users, bootstrapAdmin: bootstrapAdmin}
}

// Register เพิ่มผู้ใช้ใหม่ ถ้ามี email นี้อยู่แล้วจะไม่ insert ซ้ำ (exists = true)
func (s *UserService) Register(ctx context.Context, req models.CreateUserRequest) (res *models.InsertResult, exists bool, err error) {
	_, err = s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, true, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, fmt.Errorf("find user: %w", err)
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  req.Role,
	}
	if s.bootstrapAdmin != "" && strings.EqualFold(req.Email, s.bootstrapAdmin) {
		log.Println("⚠️ bootstrap admin registered:", req.Email)
		user.Role = models.RoleAdmin
	}

	res, err = s.users.Insert(ctx, user)
	if errors.Is(err, repositories.ErrDuplicate) {
		// lost a race with a concurrent sign-up for the same email
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return res, false, nil
}

// HasRole reports whether the stored user has the role. Unknown users have none.
func (s *UserService) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == role, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Promote ตั้ง role ให้ผู้ใช้ตาม id (admin หรือ instructor เท่านั้น)
func (s *UserService) Promote(ctx context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error) {
	if role != models.RoleAdmin && role != models.RoleInstructor {
		return nil, ErrInvalidRole
	}
	return s.users.SetRole(ctx, id, role)
}
