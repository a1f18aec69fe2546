package service

import (
	"context"
	"strings"
	"time"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
	now                func() time.Time
}

func NewCategoryService(categoryRepository ports.CategoryRepository, opts ...Option) *CategoryService {
	o := buildOptions(opts)
	return &CategoryService{categoryRepository: categoryRepository, now: o.now}
}

func (s *CategoryService) GetCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.categoryRepository.ListByUser(ctx, userID)
}

func (s *CategoryService) CreateCategory(
	ctx context.Context,
	input domain.CreateCategoryInput,
	userID string,
) (domain.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Color != nil {
		color := strings.TrimSpace(*input.Color)
		input.Color = &color
		if color == "" {
			input.Color = nil
		}
	}
	if err := validateStruct(input); err != nil {
		return domain.Category{}, err
	}

	return s.categoryRepository.Create(ctx, domain.Category{
		Name:      input.Name,
		Color:     input.Color,
		UserID:    userID,
		CreatedAt: serverTime(s.now),
	})
}

var _ ports.CategoryService = (*CategoryService)(nil)
