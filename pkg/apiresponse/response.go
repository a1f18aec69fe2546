package apiresponse

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/philipjohn05/taskapp-portfolio/pkg/translator"
)

// Envelope is the body of every API response.
type Envelope[T any] struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    T       `json:"data"`
	Error   *string `json:"error"`
}

// Success wraps data with a translated message.
func Success[T any](msgKey string, lang string, data T) Envelope[T] {
	return Envelope[T]{
		Success: true,
		Message: GetTransMsg(msgKey, lang),
		Data:    data,
	}
}

// Failure builds an envelope without data. detail ends up in the error field.
func Failure(msgKey string, lang string, detail string) Envelope[any] {
	return Envelope[any]{
		Success: false,
		Message: GetTransMsg(msgKey, lang),
		Error:   &detail,
	}
}

// GetTransMsg retrieves the translated message, falling back to the key.
func GetTransMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
