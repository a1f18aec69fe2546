package dto

import (
	"bytes"
	"encoding/json"
)

// Optional records whether a JSON key was present with a non-null value.
// A missing key and an explicit null both leave it unset.
type Optional[T any] struct {
	Value T
	Set   bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = Optional[T]{Value: value, Set: true}
	return nil
}
