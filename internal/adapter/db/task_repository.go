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

const selectTaskColumns = `
SELECT
  t.id,
  t.title,
  t.description,
  t.is_completed,
  t.priority,
  t.due_date,
  t.created_at,
  t.completed_at,
  t.user_id,
  t.tags,
  t.category_id,
  c.name AS category_name,
  c.color AS category_color
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id AND c.user_id = t.user_id
`

const listTasksByUserQuery = selectTaskColumns + `
WHERE t.user_id = ?
ORDER BY t.created_at DESC, t.id DESC;
`

const getTaskQuery = selectTaskColumns + `
WHERE t.id = ? AND t.user_id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (title, description, is_completed, priority, due_date, created_at, completed_at, user_id, tags, category_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, is_completed = ?, priority = ?, due_date = ?, completed_at = ?, tags = ?, category_id = ?
WHERE id = ? AND user_id = ?;
`

const deleteTaskQuery = `
DELETE FROM tasks WHERE id = ? AND user_id = ?;
`

type TaskRepository struct {
	db    *sqlx.DB
	retry RetryPolicy
}

type taskRow struct {
	ID            uint64         `db:"id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	IsCompleted   bool           `db:"is_completed"`
	Priority      int            `db:"priority"`
	DueDate       sql.NullTime   `db:"due_date"`
	CreatedAt     time.Time      `db:"created_at"`
	CompletedAt   sql.NullTime   `db:"completed_at"`
	UserID        string         `db:"user_id"`
	Tags          sql.NullString `db:"tags"`
	CategoryID    sql.NullInt64  `db:"category_id"`
	CategoryName  sql.NullString `db:"category_name"`
	CategoryColor sql.NullString `db:"category_color"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB, retry RetryPolicy) *TaskRepository {
	return &TaskRepository{db: db, retry: retry}
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	rows, err := withRetry(ctx, r.retry, "list tasks", func() ([]taskRow, error) {
		var rows []taskRow
		err := r.db.SelectContext(ctx, &rows, listTasksByUserQuery, userID)
		return rows, err
	})
	if err != nil {
		return nil, storageError("list tasks", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID uint64, userID string) (domain.Task, error) {
	row, err := withRetry(ctx, r.retry, "get task", func() (taskRow, error) {
		var row taskRow
		err := r.db.GetContext(ctx, &row, getTaskQuery, taskID, userID)
		return row, err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, storageError("get task", err)
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	id, err := withRetry(ctx, r.retry, "create task", func() (int64, error) {
		result, err := r.db.ExecContext(ctx, insertTaskQuery,
			task.Title,
			nullString(task.Description),
			task.IsCompleted,
			task.Priority,
			nullTime(task.DueDate),
			task.CreatedAt,
			nullTime(task.CompletedAt),
			task.UserID,
			nullString(task.Tags),
			nullUint64(task.CategoryID),
		)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	})
	if err != nil {
		return domain.Task{}, storageError("create task", err)
	}

	return r.GetByID(ctx, uint64(id), task.UserID)
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	affected, err := withRetry(ctx, r.retry, "update task", func() (int64, error) {
		result, err := r.db.ExecContext(ctx, updateTaskQuery,
			task.Title,
			nullString(task.Description),
			task.IsCompleted,
			task.Priority,
			nullTime(task.DueDate),
			nullTime(task.CompletedAt),
			nullString(task.Tags),
			nullUint64(task.CategoryID),
			task.ID,
			task.UserID,
		)
		if err != nil {
			return 0, err
		}
		return result.RowsAffected()
	})
	if err != nil {
		return storageError("update task", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uint64, userID string) (bool, error) {
	affected, err := withRetry(ctx, r.retry, "delete task", func() (int64, error) {
		result, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID, userID)
		if err != nil {
			return 0, err
		}
		return result.RowsAffected()
	})
	if err != nil {
		return false, storageError("delete task", err)
	}

	return affected > 0, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		IsCompleted: row.IsCompleted,
		Priority:    row.Priority,
		CreatedAt:   row.CreatedAt.UTC(),
		UserID:      row.UserID,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time.UTC()
		task.DueDate = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time.UTC()
		task.CompletedAt = &value
	}

	if row.Tags.Valid {
		value := row.Tags.String
		task.Tags = &value
	}

	if row.CategoryID.Valid {
		categoryID := uint64(row.CategoryID.Int64)
		task.CategoryID = &categoryID

		if row.CategoryName.Valid {
			task.Category = &domain.Category{
				ID:     categoryID,
				Name:   row.CategoryName.String,
				UserID: row.UserID,
			}
			if row.CategoryColor.Valid {
				color := row.CategoryColor.String
				task.Category.Color = &color
			}
		}
	}

	return task
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: value.UTC(), Valid: true}
}

func nullUint64(value *uint64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}
