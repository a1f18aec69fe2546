package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/middleware"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
	"github.com/philipjohn05/taskapp-portfolio/pkg/apiresponse"
)

// failureKeys names the messages used when an operation fails.
type failureKeys struct {
	invalid  string
	internal string
}

// respondError maps a service error onto the envelope and status code.
func respondError(c *gin.Context, err error, keys failureKeys, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)
	detail := domain.PublicMessage(err)

	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, apiresponse.Failure(keys.invalid, lang, detail))
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, apiresponse.Failure(apiresponse.MsgTaskNotFound, lang, detail))
	default:
		_ = c.Error(err)
		zap.L().Error(logMsg, append(fields, zap.String("user_id", middleware.GetUserID(c)), zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, apiresponse.Failure(keys.internal, lang, detail))
	}
}

func respondBadRequest(c *gin.Context, msgKey string, detail string) {
	c.JSON(http.StatusBadRequest, apiresponse.Failure(msgKey, middleware.GetLang(c), detail))
}
