package service

import (
	"context"
	"testing"
	"time"

	"github.com/boardsync/taskboard/internal/taskboard/domain"
	"github.com/stretchr/testify/require"
)

func newTaskFixture(t *testing.T) (*TaskService, string, string) {
	t.Helper()
	ctx := context.Background()

	auth := newAuthService(t)

	alice, err := auth.SignUp(ctx, "Alice", "alice@example.com", "Sup3rSecret")
	require.NoError(t, err)

	bob, err := auth.SignUp(ctx, "Bob", "bob@example.com", "Sup3rSecret")
	require.NoError(t, err)

	return &TaskService{Store: auth.Store}, alice.UserID, bob.UserID
}

func TestTaskCreateAndGetRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, alice, _ := newTaskFixture(t)

	created, err := svc.Create(ctx, alice, TaskInput{
		Title:   "Write report",
		Content: "Quarterly numbers",
		Status:  "IN_PROGRESS",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, alice, created.UserID)
	require.Equal(t, domain.TaskStatusInProgress, created.Status)

	got, err := svc.Get(ctx, alice, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Write report", got.Title)
	require.Equal(t, "Quarterly numbers", got.Content)
	require.Equal(t, domain.TaskStatusInProgress, got.Status)
}

func TestTaskCreateDefaultsToNew(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, alice, _ := newTaskFixture(t)

	created, err := svc.Create(ctx, alice, TaskInput{Title: "No status given"})
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusNew, created.Status)
}

func TestTaskCreateValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, alice, _ := newTaskFixture(t)

	t.Run("empty title persists nothing", func(t *testing.T) {
		_, err := svc.Create(ctx, alice, TaskInput{Title: "   "})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "title", verr.Field)

		tasks, err := svc.List(ctx, alice)
		require.NoError(t, err)
		require.Empty(t, tasks)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, alice, TaskInput{Title: "ok", Status: "DONE"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "status", verr.Field)
	})
}

func TestTaskListOrderedNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, alice, _ := newTaskFixture(t)

	first, err := svc.Create(ctx, alice, TaskInput{Title: "first"})
	require.NoError(t, err)

	second, err := svc.Create(ctx, alice, TaskInput{Title: "second"})
	require.NoError(t, err)

	tasks, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, second.ID, tasks[0].ID)
	require.Equal(t, first.ID, tasks[1].ID)
}

func TestTaskListScopedToOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, alice, bob := newTaskFixture(t)

	_, err := svc.Create(ctx, alice, TaskInput{Title: "alice's task"})
	require.NoError(t, err)

	bobTasks, err := svc.List(ctx, bob)
	require.NoError(t, err)
	require.Empty(t, bobTasks)

	aliceTasks, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceTasks, 1)
}

func TestTaskOwnershipIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, alice, bob := newTaskFixture(t)

	task, err := svc.Create(ctx, alice, TaskInput{Title: "private"})
	require.NoError(t, err)

	// Another user's task is indistinguishable from a missing one.
	_, err = svc.Get(ctx, bob, task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Update(ctx, bob, task.ID, TaskInput{Title: "hijacked"})
	require.ErrorIs(t, err, ErrTaskNotFound)

	err = svc.Delete(ctx, bob, task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	// The task is untouched by all three attempts.
	got, err := svc.Get(ctx, alice, task.ID)
	require.NoError(t, err)
	require.Equal(t, "private", got.Title)
}

func TestTaskUpdateRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, alice, _ := newTaskFixture(t)

	created, err := svc.Create(ctx, alice, TaskInput{Title: "draft", Content: "v1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, alice, created.ID, TaskInput{
		Title:   "final",
		Content: "v2",
		Status:  "COMPLETED",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "final", updated.Title)
	require.Equal(t, "v2", updated.Content)
	require.Equal(t, domain.TaskStatusCompleted, updated.Status)
	require.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)
	require.WithinDuration(t, created.UpdatedAt, updated.UpdatedAt, time.Second)
}

func TestTaskUpdateValidationLeavesRecordUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, alice, _ := newTaskFixture(t)

	created, err := svc.Create(ctx, alice, TaskInput{Title: "keep me"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, alice, created.ID, TaskInput{Title: ""})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "title", verr.Field)

	got, err := svc.Get(ctx, alice, created.ID)
	require.NoError(t, err)
	require.Equal(t, "keep me", got.Title)
}

func TestTaskDeleteThenGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, alice, _ := newTaskFixture(t)

	task, err := svc.Create(ctx, alice, TaskInput{Title: "ephemeral"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, alice, task.ID))

	_, err = svc.Get(ctx, alice, task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	// A second delete reports not-found rather than succeeding twice.
	err = svc.Delete(ctx, alice, task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskGetUnknownID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, alice, _ := newTaskFixture(t)

	_, err := svc.Get(ctx, alice, "01K00000000000000000000000")
	require.ErrorIs(t, err, ErrTaskNotFound)
}
