package dto

import (
	"bytes"
	"encoding/json"
)

// Nullable distinguishes an absent JSON field from an explicit null,
// which partial updates need for clearable references.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// Or returns the value when set, otherwise current.
func (n Nullable[T]) Or(current *T) *T {
	if n.Set {
		return n.Value
	}
	return current
}
