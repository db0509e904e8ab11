package sqlite

import (
	"context"
	"time"

	"github.com/boardsync/taskboard/internal/taskboard/domain"
	"github.com/boardsync/taskboard/internal/taskboard/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, last_activity_date, created_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, last_activity_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, toMillis(u.LastActivityDate), toMillis(u.CreatedAt))
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) TouchLastActivity(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_activity_date = ? WHERE id = ?`, toMillis(at), userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u                     domain.User
		lastActivity, created int64
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &lastActivity, &created)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.LastActivityDate = fromMillis(lastActivity)
	u.CreatedAt = fromMillis(created)
	return u, nil
}
