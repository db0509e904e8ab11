package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boardsync/taskboard/internal/taskboard/domain"
	"github.com/boardsync/taskboard/internal/taskboard/store"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testUser(id, email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:               id,
		Name:             "Alice",
		Email:            email,
		PasswordHash:     "hash",
		LastActivityDate: now,
		CreatedAt:        now,
	}
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newMemStore(t)

	stamp := time.Now().UTC().Add(time.Hour)
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, testUser("user-1", "alice@example.com")); err != nil {
			return err
		}
		return tx.Users().TouchLastActivity(ctx, "user-1", stamp)
	})
	require.NoError(t, err)

	// Both statements landed.
	got, err := st.Users().GetUserByID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, stamp.UnixMilli(), got.LastActivityDate.UnixMilli())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newMemStore(t)

	boom := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, testUser("user-1", "alice@example.com")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The insert was rolled back with the failing function.
	_, err = st.Users().GetUserByID(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateTaskForOwnerReturnsStoredRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newMemStore(t)
	require.NoError(t, st.Users().CreateUser(ctx, testUser("user-1", "alice@example.com")))

	created := time.Now().UTC().Add(-time.Hour)
	task := domain.Task{
		ID:        "task-1",
		UserID:    "user-1",
		Title:     "before",
		Content:   "body",
		Status:    domain.TaskStatusNew,
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, st.Tasks().CreateTask(ctx, task))

	task.Title = "after"
	task.Status = domain.TaskStatusCompleted
	task.UpdatedAt = time.Now().UTC()

	// The write and the read-back are one statement, so the returned row is
	// exactly what was stored, created_at included.
	got, err := st.Tasks().UpdateTaskForOwner(ctx, task)
	require.NoError(t, err)
	require.Equal(t, "after", got.Title)
	require.Equal(t, domain.TaskStatusCompleted, got.Status)
	require.Equal(t, created.UnixMilli(), got.CreatedAt.UnixMilli())
	require.Equal(t, task.UpdatedAt.UnixMilli(), got.UpdatedAt.UnixMilli())
}

func TestUpdateTaskForOwnerMissesForeignAndDeletedRows(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newMemStore(t)
	require.NoError(t, st.Users().CreateUser(ctx, testUser("user-1", "alice@example.com")))

	now := time.Now().UTC()
	task := domain.Task{
		ID:        "task-1",
		UserID:    "user-1",
		Title:     "mine",
		Status:    domain.TaskStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Tasks().CreateTask(ctx, task))

	// Another owner's id on the same task misses.
	foreign := task
	foreign.UserID = "user-2"
	_, err := st.Tasks().UpdateTaskForOwner(ctx, foreign)
	require.ErrorIs(t, err, store.ErrNotFound)

	// A deleted task misses the same way.
	require.NoError(t, st.Tasks().DeleteTaskForOwner(ctx, task.ID, task.UserID))
	_, err = st.Tasks().UpdateTaskForOwner(ctx, task)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxSurfacesUniqueViolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := newMemStore(t)

	require.NoError(t, st.Users().CreateUser(ctx, testUser("user-1", "alice@example.com")))

	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, testUser("user-2", "alice@example.com"))
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}
