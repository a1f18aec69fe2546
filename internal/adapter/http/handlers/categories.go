package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/dto"
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/mapper"
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/middleware"
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/validation"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/ports"
	"github.com/philipjohn05/taskapp-portfolio/pkg/apiresponse"
)

var categoryFailures = failureKeys{apiresponse.MsgInvalidCategory, apiresponse.MsgFailCreateCategory}

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, failureKeys{apiresponse.MsgInvalidCategory, apiresponse.MsgFailListCategories}, "failed to list categories")
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgCategoriesRetrieved, middleware.GetLang(c), mapper.ToCategoryItems(categories)))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apiresponse.MsgInvalidCategory, validation.DescribeBindError(err))
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), validation.BuildCreateCategoryInput(req), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err, categoryFailures, "failed to create category")
		return
	}

	c.JSON(http.StatusCreated, apiresponse.Success(apiresponse.MsgCategoryCreated, middleware.GetLang(c), mapper.ToCategoryItem(category)))
}
