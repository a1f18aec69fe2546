package domain

import "time"

type Category struct {
	ID        uint64
	Name      string
	Color     *string
	UserID    string
	CreatedAt time.Time
}

type CreateCategoryInput struct {
	Name  string  `validate:"required,max=50"`
	Color *string `validate:"omitempty,max=7,hexcolor"`
}
