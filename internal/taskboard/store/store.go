package store

import (
	"context"
	"errors"
	"time"

	"github.com/boardsync/taskboard/internal/taskboard/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during sign-in. The email must already be
	// trimmed; lookup is an exact match.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// The email uniqueness constraint is the authoritative duplicate guard:
	// a violation surfaces as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// TouchLastActivity bumps last_activity_date, e.g. on sign-in.
	TouchLastActivity(ctx context.Context, userID string, at time.Time) error
}

type Tasks interface {
	// ListTasksByOwner returns all tasks owned by userID, newest first.
	ListTasksByOwner(ctx context.Context, userID string) ([]domain.Task, error)

	// GetTaskForOwner returns the task only when it exists AND belongs to
	// userID; both misses look identical (ErrNotFound).
	GetTaskForOwner(ctx context.Context, taskID, userID string) (domain.Task, error)

	// CreateTask inserts a new task (id and timestamps set by the app).
	CreateTask(ctx context.Context, t domain.Task) error

	// UpdateTaskForOwner writes title/content/status/updated_at in a single
	// statement filtered by (id AND user_id) and returns the stored row.
	// No matching row returns ErrNotFound, covering both a missing task and
	// a foreign owner.
	UpdateTaskForOwner(ctx context.Context, t domain.Task) (domain.Task, error)

	// DeleteTaskForOwner deletes filtered by (id AND user_id); zero rows
	// affected returns ErrNotFound.
	DeleteTaskForOwner(ctx context.Context, taskID, userID string) error
}
