package ports

import (
	"context"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
)

// TaskRepository persists tasks. Every accessor is scoped by the owning
// user id; there is deliberately no way to reach a task by id alone.
type TaskRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	GetByID(ctx context.Context, taskID uint64, userID string) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, taskID uint64, userID string) (bool, error)
}

type TaskService interface {
	GetTasks(ctx context.Context, userID string) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, taskID uint64, userID string) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput, userID string) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput, userID string) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64, userID string) (bool, error)
	CompleteTask(ctx context.Context, taskID uint64, userID string) (bool, error)
}
