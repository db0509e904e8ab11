package postgres

import (
	"context"

	"github.com/boardsync/taskboard/internal/taskboard/domain"
	"github.com/boardsync/taskboard/internal/taskboard/store"
)

type tasksRepo struct {
	db dbtx
}

const taskColumns = `id, user_id, title, content, status, created_at, updated_at`

func (r *tasksRepo) ListTasksByOwner(ctx context.Context, userID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) GetTaskForOwner(ctx context.Context, taskID, userID string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID, userID)
	return scanTask(row)
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, user_id, title, content, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.UserID, t.Title, t.Content, t.Status.String(), t.CreatedAt, t.UpdatedAt)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

// UpdateTaskForOwner is a single conditional statement; the owner filter, the
// write, and the read-back happen atomically.
func (r *tasksRepo) UpdateTaskForOwner(ctx context.Context, t domain.Task) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE tasks SET title = $1, content = $2, status = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6
		 RETURNING `+taskColumns,
		t.Title, t.Content, t.Status.String(), t.UpdatedAt, t.ID, t.UserID)
	return scanTask(row)
}

func (r *tasksRepo) DeleteTaskForOwner(ctx context.Context, taskID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t      domain.Task
		status string
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Content, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	t.Status = domain.TaskStatus(status)
	return t, nil
}
