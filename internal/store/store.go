// Package store defines the repository contract shared by every content
// entity. Two implementations exist: gormstore (relational rows) and
// jsonstore (one JSON file per collection). Handlers and the client facade
// only ever see this interface, so the backend is picked at wiring time.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get, Update and Delete when no record carries
// the requested id.
var ErrNotFound = errors.New("record not found")

// Filter restricts List to records whose named fields equal the given values.
// Keys are the snake_case column/json names.
type Filter map[string]any

// Fields carries a partial update: only the named fields are overwritten,
// everything else keeps its current value. updated_at is refreshed even when
// the set is empty.
type Fields map[string]any

type Repository[T any] interface {
	// List returns the collection sorted ascending by its order column where
	// one is configured; ties keep insertion order.
	List(ctx context.Context, filter Filter) ([]T, error)

	Get(ctx context.Context, id int) (*T, error)

	// Create assigns id and timestamps on the passed record.
	Create(ctx context.Context, rec *T) error

	Update(ctx context.Context, id int, fields Fields) (*T, error)

	// Delete returns the removed record.
	Delete(ctx context.Context, id int) (*T, error)
}
