package mapper

import (
	"time"

	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/dto"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: copyPtr(task.Description),
		IsCompleted: task.IsCompleted,
		Priority:    task.Priority,
		DueDate:     formatTimePtr(task.DueDate),
		CreatedAt:   formatTime(task.CreatedAt),
		CompletedAt: formatTimePtr(task.CompletedAt),
		UserID:      task.UserID,
		Tags:        copyPtr(task.Tags),
		CategoryID:  copyPtr(task.CategoryID),
	}

	if task.Category != nil {
		name := task.Category.Name
		item.CategoryName = &name
		item.CategoryColor = copyPtr(task.Category.Color)
	}

	return item
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	value := formatTime(*t)
	return &value
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	value := *p
	return &value
}
