package services

import (
	"context"
	"errors"
	"testing"

	"summer-camp-server/src/jobs"
	"summer-camp-server/src/models"
	"summer-camp-server/src/repositories"
	"summer-camp-server/src/repositories/memstore"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(task.Type(), string(task.Payload()))
	return &asynq.TaskInfo{}, args.Error(0)
}

type MockGuard struct {
	mock.Mock
}

func (m *MockGuard) Claim(ctx context.Context, key string) (bool, error) {
	args := m.Called(key)
	return args.Bool(0), args.Error(1)
}

func (m *MockGuard) Release(ctx context.Context, key string) error {
	return m.Called(key).Error(0)
}

// failingClasses breaks the seat update only.
type failingClasses struct {
	repositories.ClassRepository
}

func (failingClasses) RecordEnrolment(context.Context, primitive.ObjectID) (*models.UpdateResult, error) {
	return nil, errors.New("write conflict")
}

type failingCarts struct {
	repositories.CartRepository
}

func (failingCarts) DeleteByClass(context.Context, string, string) (*models.DeleteResult, error) {
	return nil, errors.New("connection reset")
}

func seedClass(t *testing.T, repos repositories.Repositories, seat int) primitive.ObjectID {
	t.Helper()
	class := &models.Class{Name: "Robotics", Email: "teach@example.com", Seat: seat, Status: models.ClassApproved}
	_, err := repos.Classes.Insert(context.Background(), class)
	require.NoError(t, err)
	return class.ID
}

func TestRegisterIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	svc := NewUserService(repos.Users, "")

	res, exists, err := svc.Register(ctx, models.CreateUserRequest{Email: "jane@example.com", Name: "Jane"})
	require.NoError(t, err)
	assert.False(t, exists)
	assert.True(t, res.Acknowledged)

	res, exists, err = svc.Register(ctx, models.CreateUserRequest{Email: "jane@example.com", Name: "Other"})
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Nil(t, res)

	users, _ := svc.List(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "Jane", users[0].Name)
}

func TestRegisterBootstrapAdmin(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	svc := NewUserService(repos.Users, "Boss@Example.com")

	_, _, err := svc.Register(ctx, models.CreateUserRequest{Email: "boss@example.com"})
	require.NoError(t, err)

	isAdmin, err := svc.HasRole(ctx, "boss@example.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestHasRoleUnknownUser(t *testing.T) {
	svc := NewUserService(memstore.New().Repositories().Users, "")
	ok, err := svc.HasRole(context.Background(), "ghost@example.com", models.RoleStudent)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPromote(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	svc := NewUserService(repos.Users, "")
	_, _, err := svc.Register(ctx, models.CreateUserRequest{Email: "jane@example.com", Role: models.RoleStudent})
	require.NoError(t, err)
	user, _ := repos.Users.FindByEmail(ctx, "jane@example.com")

	res, err := svc.Promote(ctx, user.ID, models.RoleInstructor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	isInstructor, _ := svc.HasRole(ctx, "jane@example.com", models.RoleInstructor)
	assert.True(t, isInstructor)

	_, err = svc.Promote(ctx, user.ID, models.RoleStudent)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestClassStatusLastWriteWins(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	svc := NewClassService(repos.Classes)

	res, err := svc.Create(ctx, models.CreateClassRequest{Name: "Art", Email: "teach@example.com", Seat: 10})
	require.NoError(t, err)
	id := res.InsertedID.(primitive.ObjectID)

	created, _ := repos.Classes.FindByID(ctx, id)
	assert.Equal(t, models.ClassPending, created.Status)
	assert.Equal(t, 0, created.StudentsEnrolment)

	_, err = svc.Approve(ctx, id)
	require.NoError(t, err)
	_, err = svc.Deny(ctx, id)
	require.NoError(t, err)
	_, err = svc.SetFeedback(ctx, id, "needs a syllabus")
	require.NoError(t, err)
	_, err = svc.Approve(ctx, id)
	require.NoError(t, err)
	_, err = svc.Deny(ctx, id)
	require.NoError(t, err)

	final, _ := repos.Classes.FindByID(ctx, id)
	assert.Equal(t, models.ClassDenied, final.Status)
	assert.Equal(t, "needs a syllabus", final.Feedback)
}

func TestCartOwnership(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	svc := NewCartService(repos.Carts, repos.Classes)
	classID := seedClass(t, repos, 5)

	res, err := svc.Select(ctx, models.SelectClassRequest{ClassID: classID.Hex(), MyEmail: "jane@example.com"})
	require.NoError(t, err)
	id := res.InsertedID.(primitive.ObjectID)

	_, err = svc.Owned(ctx, id, "bob@example.com")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Remove(ctx, id, "bob@example.com")
	assert.ErrorIs(t, err, ErrForbidden)

	name := "Robotics II"
	upd, err := svc.Update(ctx, id, "jane@example.com", models.UpdateSelectedClassRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	entry, err := svc.Owned(ctx, id, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Robotics II", entry.Name)
}

func TestCartSelectUnknownClass(t *testing.T) {
	repos := memstore.New().Repositories()
	svc := NewCartService(repos.Carts, repos.Classes)

	_, err := svc.Select(context.Background(), models.SelectClassRequest{
		ClassID: primitive.NewObjectID().Hex(),
		MyEmail: "jane@example.com",
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartRemoveExactlyOne(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	svc := NewCartService(repos.Carts, repos.Classes)
	classID := seedClass(t, repos, 5)

	var ids []primitive.ObjectID
	for i := 0; i < 3; i++ {
		res, err := svc.Select(ctx, models.SelectClassRequest{ClassID: classID.Hex(), MyEmail: "jane@example.com"})
		require.NoError(t, err)
		ids = append(ids, res.InsertedID.(primitive.ObjectID))
	}

	res, err := svc.Remove(ctx, ids[1], "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)

	left, _ := svc.ListByOwner(ctx, "jane@example.com")
	require.Len(t, left, 2)
	assert.Equal(t, ids[0], left[0].ID)
	assert.Equal(t, ids[2], left[1].ID)
}

func TestCheckoutAppliesSideEffects(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	classID := seedClass(t, repos, 3)
	_, err := repos.Carts.Insert(ctx, &models.SelectedClass{ClassID: classID.Hex(), MyEmail: "jane@example.com"})
	require.NoError(t, err)
	_, err = repos.Carts.Insert(ctx, &models.SelectedClass{ClassID: classID.Hex(), MyEmail: "bob@example.com"})
	require.NoError(t, err)

	svc := NewCheckoutService(repos, nil, nil)
	out, err := svc.Checkout(ctx, classID, &models.Payment{MyEmail: "jane@example.com", Price: 40})
	require.NoError(t, err)

	assert.True(t, out.Result.Acknowledged)
	assert.Equal(t, int64(1), out.UpdatedClasses.ModifiedCount)
	assert.Equal(t, int64(1), out.MyClassResult.DeletedCount)

	class, _ := repos.Classes.FindByID(ctx, classID)
	assert.Equal(t, 2, class.Seat)
	assert.Equal(t, 1, class.StudentsEnrolment)

	jane, _ := repos.Carts.ListByOwner(ctx, "jane@example.com")
	bob, _ := repos.Carts.ListByOwner(ctx, "bob@example.com")
	assert.Empty(t, jane)
	assert.Len(t, bob, 1)

	payments, _ := svc.ListByOwner(ctx, "jane@example.com")
	require.Len(t, payments, 1)
	assert.Equal(t, classID.Hex(), payments[0].ClassID)
}

func TestCheckoutSeatFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	classID := seedClass(t, repos, 0)
	svc := NewCheckoutService(repos, nil, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Checkout(ctx, classID, &models.Payment{MyEmail: "jane@example.com", Price: 40})
		require.NoError(t, err)
	}

	class, _ := repos.Classes.FindByID(ctx, classID)
	assert.Equal(t, 0, class.Seat)
	assert.Equal(t, 2, class.StudentsEnrolment)
}

func TestCheckoutUnknownClass(t *testing.T) {
	repos := memstore.New().Repositories()
	svc := NewCheckoutService(repos, nil, nil)

	_, err := svc.Checkout(context.Background(), primitive.NewObjectID(), &models.Payment{MyEmail: "jane@example.com"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	payments, _ := repos.Payments.List(context.Background())
	assert.Empty(t, payments)
}

func TestCheckoutCompensatesPaymentWhenSeatUpdateFails(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	classID := seedClass(t, repos, 3)
	repos.Classes = failingClasses{repos.Classes}

	guard := new(MockGuard)
	guard.On("Claim", "checkout:pi_123").Return(true, nil)
	guard.On("Release", "checkout:pi_123").Return(nil)

	svc := NewCheckoutService(repos, guard, nil)
	_, err := svc.Checkout(ctx, classID, &models.Payment{MyEmail: "jane@example.com", TransactionID: "pi_123"})
	require.Error(t, err)

	payments, _ := repos.Payments.List(ctx)
	assert.Empty(t, payments)
	guard.AssertExpectations(t)
}

func TestCheckoutSchedulesCartCleanup(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	classID := seedClass(t, repos, 3)
	repos.Carts = failingCarts{repos.Carts}

	task, err := jobs.NewCartCleanupTask(classID.Hex(), "jane@example.com")
	require.NoError(t, err)
	enqueuer := new(MockEnqueuer)
	enqueuer.On("Enqueue", jobs.TypeCartCleanup, string(task.Payload())).Return(nil)

	svc := NewCheckoutService(repos, nil, enqueuer)
	out, err := svc.Checkout(ctx, classID, &models.Payment{MyEmail: "jane@example.com"})
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.MyClassResult.DeletedCount)
	class, _ := repos.Classes.FindByID(ctx, classID)
	assert.Equal(t, 2, class.Seat)
	enqueuer.AssertExpectations(t)
}

func TestCheckoutRejectsDuplicateTransaction(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	classID := seedClass(t, repos, 3)

	guard := new(MockGuard)
	guard.On("Claim", "checkout:pi_dup").Return(true, nil).Once()
	guard.On("Claim", "checkout:pi_dup").Return(false, nil).Once()

	svc := NewCheckoutService(repos, guard, nil)
	_, err := svc.Checkout(ctx, classID, &models.Payment{MyEmail: "jane@example.com", TransactionID: "pi_dup"})
	require.NoError(t, err)
	_, err = svc.Checkout(ctx, classID, &models.Payment{MyEmail: "jane@example.com", TransactionID: "pi_dup"})
	assert.ErrorIs(t, err, ErrDuplicateCheckout)

	class, _ := repos.Classes.FindByID(ctx, classID)
	assert.Equal(t, 2, class.Seat)
	guard.AssertExpectations(t)
}

func TestCheckoutGuardOutageDoesNotBlock(t *testing.T) {
	repos := memstore.New().Repositories()
	classID := seedClass(t, repos, 1)

	guard := new(MockGuard)
	guard.On("Claim", "checkout:pi_x").Return(false, errors.New("dial tcp: refused"))

	svc := NewCheckoutService(repos, guard, nil)
	_, err := svc.Checkout(context.Background(), classID, &models.Payment{MyEmail: "jane@example.com", TransactionID: "pi_x"})
	assert.NoError(t, err)
}

func TestInstructorsWithoutCache(t *testing.T) {
	store := memstore.New()
	store.SeedInstructors(models.Instructor{Name: "John", Email: "john@example.com"})
	svc := NewInstructorService(store.Repositories().Instructors, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "John", list[0].Name)
}
