package domain

import "time"

const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3

	DefaultPriority = PriorityMedium
)

type Task struct {
	ID          uint64
	Title       string
	Description *string
	IsCompleted bool
	Priority    int
	DueDate     *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
	UserID      string
	Tags        *string
	CategoryID  *uint64
	Category    *Category
}

// CreateTaskInput carries the caller supplied fields of a new task. A nil
// Priority means the default priority applies.
type CreateTaskInput struct {
	Title       string     `validate:"required,max=200"`
	Description *string    `validate:"omitempty,max=1000"`
	Priority    *int       `validate:"omitempty,oneof=1 2 3"`
	DueDate     *time.Time `validate:"-"`
	Tags        *string    `validate:"omitempty,max=500"`
	CategoryID  *uint64    `validate:"omitempty,gt=0"`
}

// UpdateTaskInput describes a partial update. Only fields that are set are
// applied to the stored task.
type UpdateTaskInput struct {
	Title       Optional[string]
	Description Optional[string]
	IsCompleted Optional[bool]
	Priority    Optional[int]
	DueDate     Optional[time.Time]
	Tags        Optional[string]
	CategoryID  Optional[uint64]
}

func (in UpdateTaskInput) IsEmpty() bool {
	return !in.Title.IsSet() &&
		!in.Description.IsSet() &&
		!in.IsCompleted.IsSet() &&
		!in.Priority.IsSet() &&
		!in.DueDate.IsSet() &&
		!in.Tags.IsSet() &&
		!in.CategoryID.IsSet()
}

// SetCompleted flips the completion flag and keeps CompletedAt consistent
// with it.
func (t *Task) SetCompleted(completed bool, now time.Time) {
	t.IsCompleted = completed
	if completed {
		t.CompletedAt = &now
		return
	}
	t.CompletedAt = nil
}
