package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository, opts ...Option) *TaskService {
	o := buildOptions(opts)
	return &TaskService{taskRepository: taskRepository, now: o.now}
}

func (s *TaskService) GetTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.taskRepository.ListByUser(ctx, userID)
}

func (s *TaskService) GetTaskByID(ctx context.Context, taskID uint64, userID string) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, taskID, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput, userID string) (domain.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateStruct(input); err != nil {
		return domain.Task{}, err
	}
	if input.CategoryID != nil && *input.CategoryID == 0 {
		return domain.Task{}, domain.NewValidationError("categoryId", "gt", "0")
	}

	priority := domain.DefaultPriority
	if input.Priority != nil {
		priority = *input.Priority
	}

	task, err := s.taskRepository.Create(ctx, domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
		CreatedAt:   serverTime(s.now),
		UserID:      userID,
		Tags:        input.Tags,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return domain.Task{}, err
	}

	zap.L().Debug("task created", zap.Uint64("task_id", task.ID), zap.String("user_id", userID))
	return task, nil
}

func (s *TaskService) UpdateTask(
	ctx context.Context,
	taskID uint64,
	input domain.UpdateTaskInput,
	userID string,
) (domain.Task, error) {
	input, err := validateUpdateTaskInput(input)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.GetByID(ctx, taskID, userID)
	if err != nil {
		return domain.Task{}, err
	}
	if input.IsEmpty() {
		return task, nil
	}

	input.Title.Apply(&task.Title)
	input.Description.ApplyPtr(&task.Description)
	input.Priority.Apply(&task.Priority)
	input.DueDate.ApplyPtr(&task.DueDate)
	input.Tags.ApplyPtr(&task.Tags)
	input.CategoryID.ApplyPtr(&task.CategoryID)
	if completed, ok := input.IsCompleted.Get(); ok {
		task.SetCompleted(completed, serverTime(s.now))
	}

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}

	// Re-read so joined category fields reflect the new category id.
	return s.taskRepository.GetByID(ctx, taskID, userID)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64, userID string) (bool, error) {
	return s.taskRepository.Delete(ctx, taskID, userID)
}

func (s *TaskService) CompleteTask(ctx context.Context, taskID uint64, userID string) (bool, error) {
	_, err := s.UpdateTask(ctx, taskID, domain.UpdateTaskInput{IsCompleted: domain.Some(true)}, userID)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func validateUpdateTaskInput(input domain.UpdateTaskInput) (domain.UpdateTaskInput, error) {
	if title, ok := input.Title.Get(); ok {
		title = strings.TrimSpace(title)
		if err := validateField("title", title, "required,max=200"); err != nil {
			return input, err
		}
		input.Title = domain.Some(title)
	}
	if description, ok := input.Description.Get(); ok {
		if err := validateField("description", description, "max=1000"); err != nil {
			return input, err
		}
	}
	if priority, ok := input.Priority.Get(); ok {
		if err := validateField("priority", priority, "oneof=1 2 3"); err != nil {
			return input, err
		}
	}
	if tags, ok := input.Tags.Get(); ok {
		if err := validateField("tags", tags, "max=500"); err != nil {
			return input, err
		}
	}
	if categoryID, ok := input.CategoryID.Get(); ok {
		if err := validateField("categoryId", categoryID, "gt=0"); err != nil {
			return input, err
		}
	}
	return input, nil
}

var _ ports.TaskService = (*TaskService)(nil)
