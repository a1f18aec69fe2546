package ports

import (
	"context"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
)

type CategoryRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Category, error)
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
}

type CategoryService interface {
	GetCategories(ctx context.Context, userID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput, userID string) (domain.Category, error)
}
