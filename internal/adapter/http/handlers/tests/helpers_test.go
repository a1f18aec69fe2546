package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/handlers"
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/middleware"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
	"github.com/philipjohn05/taskapp-portfolio/pkg/translator"
)

const currentUser = "user-a"

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) GetTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTaskByID(ctx context.Context, taskID uint64, userID string) (domain.Task, error) {
	args := m.Called(ctx, taskID, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput, userID string) (domain.Task, error) {
	args := m.Called(ctx, input, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput, userID string) (domain.Task, error) {
	args := m.Called(ctx, taskID, input, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID uint64, userID string) (bool, error) {
	args := m.Called(ctx, taskID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *taskServiceMock) CompleteTask(ctx context.Context, taskID uint64, userID string) (bool, error) {
	args := m.Called(ctx, taskID, userID)
	return args.Bool(0), args.Error(1)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) GetCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, input domain.CreateCategoryInput, userID string) (domain.Category, error) {
	args := m.Called(ctx, input, userID)
	return args.Get(0).(domain.Category), args.Error(1)
}

type fixedIdentity string

func (f fixedIdentity) ResolveUserID(context.Context) (string, error) {
	return string(f), nil
}

// envelope mirrors the response body with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

func newTaskRouter(service *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(service)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware(), middleware.Identity(fixedIdentity(currentUser)))
	api.GET("/tasks", handler.GetTasks)
	api.POST("/tasks", handler.CreateTask)
	api.GET("/tasks/:taskId", handler.GetTask)
	api.PUT("/tasks/:taskId", handler.UpdateTask)
	api.DELETE("/tasks/:taskId", handler.DeleteTask)
	api.PATCH("/tasks/:taskId/complete", handler.CompleteTask)
	return router
}

func newCategoryRouter(service *categoryServiceMock) *gin.Engine {
	handler := handlers.NewCategoryHandler(service)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware(), middleware.Identity(fixedIdentity(currentUser)))
	api.GET("/categories", handler.GetCategories)
	api.POST("/categories", handler.CreateCategory)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var got envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}
