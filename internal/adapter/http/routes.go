package http

import (
	"github.com/gin-gonic/gin"

	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/handlers"
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/middleware"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/ports"
)

func RegisterRoutes(
	r *gin.Engine,
	basePath string,
	identity ports.IdentityResolver,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	categoryHandler *handlers.CategoryHandler,
) {
	api := r.Group(basePath)
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	scoped := api.Group("", middleware.Identity(identity))
	{
		scoped.GET("/tasks", taskHandler.GetTasks)
		scoped.POST("/tasks", taskHandler.CreateTask)
		scoped.GET("/tasks/:taskId", taskHandler.GetTask)
		scoped.PUT("/tasks/:taskId", taskHandler.UpdateTask)
		scoped.DELETE("/tasks/:taskId", taskHandler.DeleteTask)
		scoped.PATCH("/tasks/:taskId/complete", taskHandler.CompleteTask)

		scoped.GET("/categories", categoryHandler.GetCategories)
		scoped.POST("/categories", categoryHandler.CreateCategory)
	}
}
