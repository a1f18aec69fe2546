package service

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type options struct {
	now func() time.Time
}

// Option customizes a service.
type Option func(*options)

// WithClock replaces the time source used for created/completed timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// serverTime is normalized to UTC with the precision the store keeps.
func serverTime(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}

func validateStruct(value any) error {
	return toValidationError(validate.Struct(value))
}

func validateField(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domain.NewValidationError(field, fieldErrs[0].Tag(), fieldErrs[0].Param())
	}
	return err
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return domain.NewValidationError(jsonFieldName(first.Field()), first.Tag(), first.Param())
	}
	return err
}

// jsonFieldName turns a Go field name into the camelCase key used on the wire,
// e.g. CategoryID -> categoryId.
func jsonFieldName(name string) string {
	if strings.HasSuffix(name, "ID") && len(name) > 2 {
		name = strings.TrimSuffix(name, "ID") + "Id"
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
