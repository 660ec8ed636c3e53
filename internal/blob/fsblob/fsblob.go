// Package fsblob is the filesystem implementation of blob.Store. Each object
// is one file plus a small sidecar carrying its content type.
package fsblob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"portfolio-app/internal/blob"
)

const metaSuffix = ".meta"

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

type meta struct {
	ContentType string `json:"content_type"`
}

// validName rejects anything that could escape the storage directory.
func validName(name string) bool {
	return name != "" && name == filepath.Base(name) && name != "." && name != ".." &&
		!strings.HasSuffix(name, metaSuffix)
}

func (s *Store) Put(_ context.Context, name string, r io.Reader, contentType string) error {
	if !validName(name) {
		return fmt.Errorf("invalid object name %q", name)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	data, err := json.Marshal(meta{ContentType: contentType})
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, name+metaSuffix), data, 0o644); err != nil {
		return err
	}

	// the rename makes the object visible in one step
	return os.Rename(tmp.Name(), filepath.Join(s.dir, name))
}

func (s *Store) Get(_ context.Context, name string) (*blob.Object, error) {
	if !validName(name) {
		return nil, blob.ErrNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, blob.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	contentType := ""
	if data, err := os.ReadFile(filepath.Join(s.dir, name+metaSuffix)); err == nil {
		var m meta
		if json.Unmarshal(data, &m) == nil {
			contentType = m.ContentType
		}
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(name))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &blob.Object{Body: f, ContentType: contentType, Size: info.Size()}, nil
}
