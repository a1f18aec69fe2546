package dto

type CategoryItem struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Color     *string `json:"color"`
	CreatedAt string  `json:"createdAt"`
}

type CreateCategoryRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}
