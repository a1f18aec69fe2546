package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/ports"
	"github.com/philipjohn05/taskapp-portfolio/pkg/apiresponse"
)

const userIDKey = "userID"

// Identity resolves the acting user once per request and stores its id for
// the handlers.
func Identity(resolver ports.IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolver.ResolveUserID(c.Request.Context())
		if err != nil {
			zap.L().Error("failed to resolve user", zap.Error(err))
			_ = c.Error(err)
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apiresponse.Failure(apiresponse.MsgFailResolveUser, GetLang(c), domain.PublicMessage(err)),
			)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
