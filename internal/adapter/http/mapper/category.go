package mapper

import (
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/dto"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
)

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	return dto.CategoryItem{
		ID:        category.ID,
		Name:      category.Name,
		Color:     copyPtr(category.Color),
		CreatedAt: formatTime(category.CreatedAt),
	}
}
