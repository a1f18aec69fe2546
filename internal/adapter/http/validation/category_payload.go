package validation

import (
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/dto"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
)

func BuildCreateCategoryInput(req dto.CreateCategoryRequest) domain.CreateCategoryInput {
	return domain.CreateCategoryInput{Name: req.Name, Color: req.Color}
}
