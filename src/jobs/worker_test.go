package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"summer-camp-server/src/models"
	"summer-camp-server/src/repositories/memstore"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartCleanupTask(t *testing.T) {
	task, err := NewCartCleanupTask("64b7f0c2e13a4b6d8c9e0f11", "jane@example.com")
	require.NoError(t, err)

	assert.Equal(t, TypeCartCleanup, task.Type())
	var payload CartCleanupPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "64b7f0c2e13a4b6d8c9e0f11", payload.ClassID)
	assert.Equal(t, "jane@example.com", payload.MyEmail)
}

func TestHandleCartCleanupTask(t *testing.T) {
	ctx := context.Background()
	repos := memstore.New().Repositories()
	_, err := repos.Carts.Insert(ctx, &models.SelectedClass{ClassID: "c1", MyEmail: "jane@example.com"})
	require.NoError(t, err)
	_, err = repos.Carts.Insert(ctx, &models.SelectedClass{ClassID: "c1", MyEmail: "bob@example.com"})
	require.NoError(t, err)

	task, err := NewCartCleanupTask("c1", "jane@example.com")
	require.NoError(t, err)

	handler := HandleCartCleanupTask(repos.Carts)
	require.NoError(t, handler(ctx, task))

	jane, _ := repos.Carts.ListByOwner(ctx, "jane@example.com")
	bob, _ := repos.Carts.ListByOwner(ctx, "bob@example.com")
	assert.Empty(t, jane)
	assert.Len(t, bob, 1)

	// second run finds nothing and still succeeds
	assert.NoError(t, handler(ctx, task))
}

func TestHandleCartCleanupTaskBadPayload(t *testing.T) {
	handler := HandleCartCleanupTask(memstore.New().Repositories().Carts)
	err := handler(context.Background(), asynq.NewTask(TypeCartCleanup, []byte("{not json")))

	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
