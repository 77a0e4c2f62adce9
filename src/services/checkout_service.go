package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"summer-camp-server/src/jobs"
	"summer-camp-server/src/models"
	"summer-camp-server/src/repositories"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const compensationTimeout = 5 * time.Second

// CheckoutGuard rejects a transaction id that was already recorded.
type CheckoutGuard interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// CheckoutService records a payment and applies its side effects as a saga:
// insert payment -> take a seat -> remove the cart entry. A failed seat update
// undoes the payment insert; a failed cart removal is retried by a job.
type CheckoutService struct {
	payments repositories.PaymentRepository
	classes  repositories.ClassRepository
	carts    repositories.CartRepository
	guard    CheckoutGuard
	jobs     TaskEnqueuer
}

// NewCheckoutService guard and jobs may be nil.
func NewCheckoutService(repos repositories.Repositories, guard CheckoutGuard, enqueuer TaskEnqueuer) *CheckoutService {
	return &CheckoutService{
		payments: repos.Payments,
		classes:  repos.Classes,
		carts:    repos.Carts,
		guard:    guard,
		jobs:     enqueuer,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, classID primitive.ObjectID, payment *models.Payment) (*models.CheckoutResult, error) {
	key, err := s.claim(ctx, payment)
	if err != nil {
		return nil, err
	}

	result, updated, err := s.record(ctx, classID, payment)
	if err != nil {
		s.release(key)
		return nil, err
	}

	removed, err := s.carts.DeleteByClass(ctx, classID.Hex(), payment.MyEmail)
	if err != nil {
		log.Printf("❌ checkout %s: remove cart entry: %v", payment.ID.Hex(), err)
		s.scheduleCartCleanup(classID.Hex(), payment.MyEmail)
		removed = &models.DeleteResult{Acknowledged: false, DeletedCount: 0}
	}

	return &models.CheckoutResult{
		Result:         result,
		UpdatedClasses: updated,
		MyClassResult:  removed,
	}, nil
}

// record runs the payment insert and the seat update, compensating the
// insert when the update fails.
func (s *CheckoutService) record(ctx context.Context, classID primitive.ObjectID, payment *models.Payment) (*models.InsertResult, *models.UpdateResult, error) {
	if _, err := s.classes.FindByID(ctx, classID); err != nil {
		return nil, nil, err
	}

	payment.ClassID = classID.Hex()
	result, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return nil, nil, fmt.Errorf("insert payment: %w", err)
	}

	updated, err := s.classes.RecordEnrolment(ctx, classID)
	if err == nil && updated.MatchedCount == 0 {
		err = fmt.Errorf("class %s: %w", classID.Hex(), repositories.ErrNotFound)
	}
	if err != nil {
		s.undoPayment(payment.ID)
		return nil, nil, fmt.Errorf("record enrolment: %w", err)
	}
	return result, updated, nil
}

func (s *CheckoutService) undoPayment(id primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), compensationTimeout)
	defer cancel()
	if _, err := s.payments.DeleteByID(ctx, id); err != nil {
		log.Printf("❌ checkout compensation failed, orphan payment %s: %v", id.Hex(), err)
		return
	}
	log.Println("⚠️ checkout compensated, payment removed:", id.Hex())
}

func (s *CheckoutService) scheduleCartCleanup(classID, email string) {
	if s.jobs == nil {
		log.Println("⚠️ no job queue, cart entry left behind:", classID, email)
		return
	}
	task, err := jobs.NewCartCleanupTask(classID, email)
	if err != nil {
		log.Println("❌ build cart cleanup task:", err)
		return
	}
	if _, err := s.jobs.Enqueue(task); err != nil {
		log.Println("❌ enqueue cart cleanup task:", err)
	}
}

func (s *CheckoutService) claim(ctx context.Context, payment *models.Payment) (string, error) {
	if s.guard == nil || payment.TransactionID == "" {
		return "", nil
	}
	key := "checkout:" + payment.TransactionID
	ok, err := s.guard.Claim(ctx, key)
	if err != nil {
		// Redis down: do not block the checkout
		log.Println("⚠️ checkout guard unavailable:", err)
		return "", nil
	}
	if !ok {
		return "", ErrDuplicateCheckout
	}
	return key, nil
}

func (s *CheckoutService) release(key string) {
	if key == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), compensationTimeout)
	defer cancel()
	if err := s.guard.Release(ctx, key); err != nil && !errors.Is(err, context.Canceled) {
		log.Println("⚠️ release checkout guard:", err)
	}
}

func (s *CheckoutService) ListByOwner(ctx context.Context, email string) ([]models.Payment, error) {
	return s.payments.ListByOwner(ctx, email)
}

func (s *CheckoutService) ListAll(ctx context.Context) ([]models.Payment, error) {
	return s.payments.List(ctx)
}
