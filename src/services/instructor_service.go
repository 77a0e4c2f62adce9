package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"summer-camp-server/src/models"
	"summer-camp-server/src/repositories"

	"github.com/redis/go-redis/v9"
)

const (
	instructorsCacheKey = "instructors:all"
	instructorsCacheTTL = 2 * time.Minute
)

// InstructorService อ่าน directory ของผู้สอน ถ้ามี Redis จะ cache ไว้ 2 นาที
type InstructorService struct {
	instructors repositories.InstructorRepository
	cache       *redis.Client
}

// NewInstructorService cache may be nil.
func NewInstructorService(instructors repositories.InstructorRepository, cache *redis.Client) *InstructorService {
	return &InstructorService{instructors: instructors, cache: cache}
}

func (s *InstructorService) List(ctx context.Context) ([]models.Instructor, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}
	instructors, err := s.instructors.List(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, instructors)
	return instructors, nil
}

func (s *InstructorService) fromCache(ctx context.Context) ([]models.Instructor, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, instructorsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("⚠️ instructors cache read:", err)
		}
		return nil, false
	}
	var instructors []models.Instructor
	if err := json.Unmarshal(raw, &instructors); err != nil {
		return nil, false
	}
	return instructors, true
}

func (s *InstructorService) store(ctx context.Context, instructors []models.Instructor) {
	if s.cache == nil {
		return
	}
	value, err := json.Marshal(instructors)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, instructorsCacheKey, value, instructorsCacheTTL).Err()
}
