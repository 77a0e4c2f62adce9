// Package memstore keeps every collection in process memory. It backs the
// "memory" store driver and the HTTP tests.
package memstore

import (
	"context"
	"sync"

	"summer-camp-server/src/models"
	"summer-camp-server/src/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds all five collections behind one lock.
type Store struct {
	mu          sync.Mutex
	users       []models.User
	classes     []models.Class
	carts       []models.SelectedClass
	payments    []models.Payment
	instructors []models.Instructor
}

func New() *Store {
	return &Store{}
}

// Repositories returns repository views over the store.
func (s *Store) Repositories() repositories.Repositories {
	return repositories.Repositories{
		Users:       &UserRepository{s},
		Classes:     &ClassRepository{s},
		Carts:       &CartRepository{s},
		Payments:    &PaymentRepository{s},
		Instructors: &InstructorRepository{s},
	}
}

// SeedInstructors replaces the instructor directory.
func (s *Store) SeedInstructors(instructors ...models.Instructor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instructors = nil
	for _, in := range instructors {
		if in.ID.IsZero() {
			in.ID = primitive.NewObjectID()
		}
		s.instructors = append(s.instructors, in)
	}
}

func inserted(id primitive.ObjectID) *models.InsertResult {
	return &models.InsertResult{Acknowledged: true, InsertedID: id}
}

func updated(matched, modified int64) *models.UpdateResult {
	return &models.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}
}

func deleted(n int64) *models.DeleteResult {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: n}
}

type UserRepository struct{ s *Store }

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepository) Insert(_ context.Context, user *models.User) (*models.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return nil, repositories.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.s.users = append(r.s.users, *user)
	return inserted(user.ID), nil
}

func (r *UserRepository) List(_ context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]models.User{}, r.s.users...), nil
}

func (r *UserRepository) SetRole(_ context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			if r.s.users[i].Role == role {
				return updated(1, 0), nil
			}
			r.s.users[i].Role = role
			return updated(1, 1), nil
		}
	}
	return updated(0, 0), nil
}

type ClassRepository struct{ s *Store }

func (r *ClassRepository) List(_ context.Context) ([]models.Class, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]models.Class{}, r.s.classes...), nil
}

func (r *ClassRepository) ListByInstructor(_ context.Context, email string) ([]models.Class, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Class{}
	for _, c := range r.s.classes {
		if c.Email == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *ClassRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Class, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := r.index(id); i >= 0 {
		c := r.s.classes[i]
		return &c, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *ClassRepository) Insert(_ context.Context, class *models.Class) (*models.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
	}
	r.s.classes = append(r.s.classes, *class)
	return inserted(class.ID), nil
}

func (r *ClassRepository) SetStatus(_ context.Context, id primitive.ObjectID, status string) (*models.UpdateResult, error) {
	return r.mutate(id, func(c *models.Class) bool {
		changed := c.Status != status
		c.Status = status
		return changed
	}), nil
}

func (r *ClassRepository) SetFeedback(_ context.Context, id primitive.ObjectID, feedback string) (*models.UpdateResult, error) {
	return r.mutate(id, func(c *models.Class) bool {
		changed := c.Feedback != feedback
		c.Feedback = feedback
		return changed
	}), nil
}

func (r *ClassRepository) RecordEnrolment(_ context.Context, id primitive.ObjectID) (*models.UpdateResult, error) {
	return r.mutate(id, func(c *models.Class) bool {
		if c.Seat > 0 {
			c.Seat--
		} else {
			c.Seat = 0
		}
		c.StudentsEnrolment++
		return true
	}), nil
}

func (r *ClassRepository) mutate(id primitive.ObjectID, fn func(*models.Class) bool) *models.UpdateResult {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return updated(0, 0)
	}
	if fn(&r.s.classes[i]) {
		return updated(1, 1)
	}
	return updated(1, 0)
}

func (r *ClassRepository) index(id primitive.ObjectID) int {
	for i := range r.s.classes {
		if r.s.classes[i].ID == id {
			return i
		}
	}
	return -1
}

type CartRepository struct{ s *Store }

func (r *CartRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.SelectedClass, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.carts {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *CartRepository) ListByOwner(_ context.Context, email string) ([]models.SelectedClass, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.SelectedClass{}
	for _, e := range r.s.carts {
		if e.MyEmail == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *CartRepository) Insert(_ context.Context, entry *models.SelectedClass) (*models.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	r.s.carts = append(r.s.carts, *entry)
	return inserted(entry.ID), nil
}

func (r *CartRepository) Update(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.carts {
		if r.s.carts[i].ID != id {
			continue
		}
		e := &r.s.carts[i]
		before := *e
		for k, v := range fields {
			switch k {
			case "name":
				e.Name, _ = v.(string)
			case "image":
				e.Image, _ = v.(string)
			case "instructorName":
				e.InstructorName, _ = v.(string)
			case "price":
				e.Price, _ = v.(float64)
			}
		}
		if before == *e {
			return updated(1, 0), nil
		}
		return updated(1, 1), nil
	}
	return updated(0, 0), nil
}

func (r *CartRepository) DeleteByID(_ context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return r.deleteFirst(func(e models.SelectedClass) bool { return e.ID == id }), nil
}

func (r *CartRepository) DeleteByClass(_ context.Context, classID, owner string) (*models.DeleteResult, error) {
	return r.deleteFirst(func(e models.SelectedClass) bool {
		return e.ClassID == classID && e.MyEmail == owner
	}), nil
}

func (r *CartRepository) deleteFirst(match func(models.SelectedClass) bool) *models.DeleteResult {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, e := range r.s.carts {
		if match(e) {
			r.s.carts = append(r.s.carts[:i], r.s.carts[i+1:]...)
			return deleted(1)
		}
	}
	return deleted(0)
}

type PaymentRepository struct{ s *Store }

func (r *PaymentRepository) Insert(_ context.Context, payment *models.Payment) (*models.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	r.s.payments = append(r.s.payments, *payment)
	return inserted(payment.ID), nil
}

func (r *PaymentRepository) DeleteByID(_ context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.payments {
		if p.ID == id {
			r.s.payments = append(r.s.payments[:i], r.s.payments[i+1:]...)
			return deleted(1), nil
		}
	}
	return deleted(0), nil
}

func (r *PaymentRepository) ListByOwner(_ context.Context, email string) ([]models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Payment{}
	for _, p := range r.s.payments {
		if p.MyEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PaymentRepository) List(_ context.Context) ([]models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]models.Payment{}, r.s.payments...), nil
}

type InstructorRepository struct{ s *Store }

func (r *InstructorRepository) List(_ context.Context) ([]models.Instructor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]models.Instructor{}, r.s.instructors...), nil
}

var (
	_ repositories.UserRepository       = (*UserRepository)(nil)
	_ repositories.ClassRepository      = (*ClassRepository)(nil)
	_ repositories.CartRepository       = (*CartRepository)(nil)
	_ repositories.PaymentRepository    = (*PaymentRepository)(nil)
	_ repositories.InstructorRepository = (*InstructorRepository)(nil)
)
