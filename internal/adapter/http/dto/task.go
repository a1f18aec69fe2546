package dto

type TaskItem struct {
	ID            uint64  `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	IsCompleted   bool    `json:"isCompleted"`
	Priority      int     `json:"priority"`
	DueDate       *string `json:"dueDate"`
	CreatedAt     string  `json:"createdAt"`
	CompletedAt   *string `json:"completedAt"`
	UserID        string  `json:"userId"`
	Tags          *string `json:"tags"`
	CategoryID    *uint64 `json:"categoryId"`
	CategoryName  *string `json:"categoryName"`
	CategoryColor *string `json:"categoryColor"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Tags        *string `json:"tags"`
	CategoryID  *uint64 `json:"categoryId"`
}

// UpdateTaskRequest accepts any subset of the task fields.
type UpdateTaskRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	IsCompleted Optional[bool]   `json:"isCompleted"`
	Priority    Optional[int]    `json:"priority"`
	DueDate     Optional[string] `json:"dueDate"`
	Tags        Optional[string] `json:"tags"`
	CategoryID  Optional[uint64] `json:"categoryId"`
}
