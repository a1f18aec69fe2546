package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/philipjohn05/taskapp-portfolio/internal/adapter/http/dto"
	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
)

const dateOnlyLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := ParseDueDate(*req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		dueDate = &parsed
	}

	return domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     dueDate,
		Tags:        req.Tags,
		CategoryID:  req.CategoryID,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	input := domain.UpdateTaskInput{
		Title:       toDomain(req.Title),
		Description: toDomain(req.Description),
		IsCompleted: toDomain(req.IsCompleted),
		Priority:    toDomain(req.Priority),
		Tags:        toDomain(req.Tags),
		CategoryID:  toDomain(req.CategoryID),
	}

	if req.DueDate.Set {
		parsed, err := ParseDueDate(req.DueDate.Value)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		input.DueDate = domain.Some(parsed)
	}

	return input, nil
}

// ParseDueDate accepts an RFC3339 timestamp or a plain date, read as UTC
// midnight.
func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC(), nil
	}
	if parsed, err := time.Parse(dateOnlyLayout, value); err == nil {
		return parsed, nil
	}
	return time.Time{}, domain.NewValidationError("dueDate", "format", "RFC3339 or YYYY-MM-DD")
}

// ParseTaskID reads a positive task id from a path segment.
func ParseTaskID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("taskId must be a positive integer, got %q", raw)
	}
	return id, nil
}

// DescribeBindError turns a JSON decoding failure into a message that is safe
// to return to the client.
func DescribeBindError(err error) string {
	if errors.Is(err, io.EOF) {
		return "request body is required"
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.Kind())
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "request body is not valid JSON"
	}

	return "request body is invalid"
}

func toDomain[T any](o dto.Optional[T]) domain.Optional[T] {
	if !o.Set {
		return domain.None[T]()
	}
	return domain.Some(o.Value)
}
