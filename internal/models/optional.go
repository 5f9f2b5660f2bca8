// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Optional is a single field of a partial update.
//
//	Set=false            key absent, keep the current value
//	Set=true, Null=true  explicit null, clear the field
//	Set=true, Null=false overwrite with Value
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Merge returns the field value after applying o to current.
func (o Optional[T]) Merge(current *T) *T {
	if !o.Set {
		return current
	}
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// Or returns o merged over a default value. Absent yields def,
// explicit null yields nil.
func (o Optional[T]) Or(def T) *T {
	return o.Merge(&def)
}

// FieldError reports a payload field whose JSON value has the wrong type.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

var jsonNull = []byte("null")

// OptionalFrom reads key from a decoded JSON object.
func OptionalFrom[T any](fields map[string]json.RawMessage, key string) (Optional[T], error) {
	raw, ok := fields[key]
	if !ok {
		return Optional[T]{}, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return Null[T](), nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return Optional[T]{}, &FieldError{Field: key, Err: err}
	}
	return Some(v), nil
}
