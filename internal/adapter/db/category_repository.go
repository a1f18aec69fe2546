package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/ports"
)

const listCategoriesByUserQuery = `
SELECT id, name, color, user_id, created_at
FROM categories
WHERE user_id = ?
ORDER BY name, id;
`

const insertCategoryQuery = `
INSERT INTO categories (name, color, user_id, created_at) VALUES (?, ?, ?, ?);
`

type CategoryRepository struct {
	db    *sqlx.DB
	retry RetryPolicy
}

type categoryRow struct {
	ID        uint64         `db:"id"`
	Name      string         `db:"name"`
	Color     sql.NullString `db:"color"`
	UserID    string         `db:"user_id"`
	CreatedAt time.Time      `db:"created_at"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB, retry RetryPolicy) *CategoryRepository {
	return &CategoryRepository{db: db, retry: retry}
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := withRetry(ctx, r.retry, "list categories", func() ([]categoryRow, error) {
		var rows []categoryRow
		err := r.db.SelectContext(ctx, &rows, listCategoriesByUserQuery, userID)
		return rows, err
	})
	if err != nil {
		return nil, storageError("list categories", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		category := domain.Category{
			ID:        row.ID,
			Name:      row.Name,
			UserID:    row.UserID,
			CreatedAt: row.CreatedAt.UTC(),
		}
		if row.Color.Valid {
			color := row.Color.String
			category.Color = &color
		}
		categories = append(categories, category)
	}

	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	id, err := withRetry(ctx, r.retry, "create category", func() (int64, error) {
		result, err := r.db.ExecContext(ctx, insertCategoryQuery,
			category.Name,
			nullString(category.Color),
			category.UserID,
			category.CreatedAt.UTC(),
		)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	})
	if err != nil {
		return domain.Category{}, storageError("create category", err)
	}

	category.ID = uint64(id)
	return category, nil
}
