package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/ports"
)

const getUserByEmailQuery = `
SELECT id, email, display_name, created_at FROM users WHERE email = ?;
`

const insertUserQuery = `
INSERT INTO users (id, email, display_name, created_at) VALUES (?, ?, ?, ?);
`

const countUsersByIDQuery = `
SELECT COUNT(*) FROM users WHERE id = ?;
`

type UserRepository struct {
	db    *sqlx.DB
	retry RetryPolicy
}

type userRow struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB, retry RetryPolicy) *UserRepository {
	return &UserRepository{db: db, retry: retry}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := withRetry(ctx, r.retry, "get user by email", func() (userRow, error) {
		var row userRow
		err := r.db.GetContext(ctx, &row, getUserByEmailQuery, email)
		return row, err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, storageError("get user by email", err)
	}

	return domain.User{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		CreatedAt:   row.CreatedAt.UTC(),
	}, nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	_, err := withRetry(ctx, r.retry, "create user", func() (sql.Result, error) {
		return r.db.ExecContext(ctx, insertUserQuery, user.ID, user.Email, user.DisplayName, user.CreatedAt.UTC())
	})
	if isUniqueViolation(err) {
		return domain.ErrUserAlreadyExists
	}
	if err != nil {
		return storageError("create user", err)
	}

	return nil
}

func (r *UserRepository) Exists(ctx context.Context, userID string) (bool, error) {
	count, err := withRetry(ctx, r.retry, "user exists", func() (int, error) {
		var count int
		err := r.db.GetContext(ctx, &count, countUsersByIDQuery, userID)
		return count, err
	})
	if err != nil {
		return false, storageError("user exists", err)
	}

	return count > 0, nil
}
