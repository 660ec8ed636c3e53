// Package jsonstore implements store.Repository on a single JSON file per
// collection. Every mutation rewrites the whole file, mirroring how the
// public site's fallback persisted each collection as one serialized blob
// under a fixed key. Not safe across processes; a mutex covers writers
// within this one.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"portfolio-app/internal/store"
)

type Store[T any] struct {
	mu      sync.Mutex
	path    string
	orderBy string
	seed    []T
}

// New builds a repository persisting to path. orderBy names the field List
// sorts by ("" keeps insertion order). When the file does not exist yet the
// seed is written out immediately, so reads are stable from the first access.
func New[T any](path, orderBy string, seed []T) *Store[T] {
	return &Store[T]{path: path, orderBy: orderBy, seed: seed}
}

// Records are handled as generic JSON objects internally, exactly as they sit
// in the file, and converted to T at the edges.

func toMap(rec any) (map[string]any, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromMap[T any](m map[string]any, out *T) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// jsonEq compares two values by their JSON encoding, so an int filter value
// matches the float64 the decoder produced.
func jsonEq(a, b any) bool {
	ja, err := json.Marshal(a)
	if err != nil {
		return false
	}
	jb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}

func recID(m map[string]any) int {
	f, _ := m["id"].(float64)
	return int(f)
}

func (s *Store[T]) load() ([]map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		recs := make([]map[string]any, 0, len(s.seed))
		for i := range s.seed {
			m, err := toMap(&s.seed[i])
			if err != nil {
				return nil, err
			}
			recs = append(recs, m)
		}
		if err := s.write(recs); err != nil {
			return nil, err
		}
		return recs, nil
	}
	if err != nil {
		return nil, err
	}
	var recs []map[string]any
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return recs, nil
}

func (s *Store[T]) write(recs []map[string]any) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Store[T]) List(_ context.Context, filter store.Filter) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load()
	if err != nil {
		return nil, err
	}

	matched := make([]map[string]any, 0, len(recs))
	for _, m := range recs {
		ok := true
		for k, v := range filter {
			if !jsonEq(m[k], v) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, m)
		}
	}

	if s.orderBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			a, _ := matched[i][s.orderBy].(float64)
			b, _ := matched[j][s.orderBy].(float64)
			return a < b
		})
	}

	out := make([]T, 0, len(matched))
	for _, m := range matched {
		var rec T
		if err := fromMap(m, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store[T]) Get(_ context.Context, id int) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, m := range recs {
		if recID(m) == id {
			var rec T
			if err := fromMap(m, &rec); err != nil {
				return nil, err
			}
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store[T]) Create(_ context.Context, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load()
	if err != nil {
		return err
	}

	maxID := 0
	for _, m := range recs {
		if id := recID(m); id > maxID {
			maxID = id
		}
	}

	m, err := toMap(rec)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	m["id"] = maxID + 1
	m["created_at"] = now
	m["updated_at"] = now

	recs = append(recs, m)
	if err := s.write(recs); err != nil {
		return err
	}
	return fromMap(m, rec)
}

func (s *Store[T]) Update(_ context.Context, id int, fields store.Fields) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, m := range recs {
		if recID(m) != id {
			continue
		}
		for k, v := range fields {
			// round-trip so the stored value has plain JSON types
			data, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			var plain any
			if err := json.Unmarshal(data, &plain); err != nil {
				return nil, err
			}
			m[k] = plain
		}
		m["updated_at"] = time.Now().UTC()
		if err := s.write(recs); err != nil {
			return nil, err
		}
		var rec T
		if err := fromMap(m, &rec); err != nil {
			return nil, err
		}
		return &rec, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store[T]) Delete(_ context.Context, id int) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load()
	if err != nil {
		return nil, err
	}
	for i, m := range recs {
		if recID(m) != id {
			continue
		}
		recs = append(recs[:i], recs[i+1:]...)
		if err := s.write(recs); err != nil {
			return nil, err
		}
		var rec T
		if err := fromMap(m, &rec); err != nil {
			return nil, err
		}
		return &rec, nil
	}
	return nil, store.ErrNotFound
}
