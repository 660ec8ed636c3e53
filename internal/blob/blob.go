// Package blob abstracts the object storage the uploaded images live in.
package blob

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("object not found")

type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

type Store interface {
	// Put stores the object under name. The object becomes visible atomically
	// on completion; a failed upload leaves nothing behind for readers.
	Put(ctx context.Context, name string, r io.Reader, contentType string) error

	// Get returns the object or ErrNotFound. The caller closes Body.
	Get(ctx context.Context, name string) (*Object, error)
}
