package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/philipjohn05/taskapp-portfolio/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware resolves the response language from the Accept-Language header.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, translator.Match(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang := c.GetString(langKey); lang != "" {
		return lang
	}
	return translator.LanguageEn
}
