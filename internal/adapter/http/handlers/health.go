package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/dto"
	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/middleware"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthHandler struct {
	db          *sqlx.DB
	version     string
	environment string
	now         func() time.Time
}

func NewHealthHandler(db *sqlx.DB, version, environment string) *HealthHandler {
	return &HealthHandler{db: db, version: version, environment: environment, now: time.Now}
}

// CheckHealth reports liveness only; it never touches the database.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.status(StatusHealthy))
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	statusCode := http.StatusOK
	report := dto.HealthReport{
		HealthStatus: h.status(StatusHealthy),
		Language:     middleware.GetLang(c),
		Database:     StatusOk,
	}

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		statusCode = http.StatusServiceUnavailable
		report.Status = StatusUnhealthy
		report.Database = StatusDown
	}

	c.JSON(statusCode, report)
}

func (h *HealthHandler) status(status string) dto.HealthStatus {
	return dto.HealthStatus{
		Status:      status,
		Timestamp:   h.now().UTC().Format(time.RFC3339),
		Version:     h.version,
		Environment: h.environment,
	}
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}
