// Package gormstore implements store.Repository on a relational database.
package gormstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"portfolio-app/internal/store"
)

type Store[T any] struct {
	db      *gorm.DB
	orderBy string
}

// New builds a repository for T. orderBy names the column the collection is
// sorted by on List ("" keeps the database order).
func New[T any](db *gorm.DB, orderBy string) *Store[T] {
	return &Store[T]{db: db, orderBy: orderBy}
}

func (s *Store[T]) List(ctx context.Context, filter store.Filter) ([]T, error) {
	q := s.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		q = q.Where(map[string]any(filter))
	}
	if s.orderBy != "" {
		// secondary id sort keeps ties in insertion order
		q = q.Order(s.orderBy + " ASC, id ASC")
	}
	recs := make([]T, 0)
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *Store[T]) Get(ctx context.Context, id int) (*T, error) {
	var rec T
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store[T]) Create(ctx context.Context, rec *T) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *Store[T]) Update(ctx context.Context, id int, fields store.Fields) (*T, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	q := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id)
	var err error
	if len(fields) == 0 {
		err = q.Update("updated_at", time.Now()).Error
	} else {
		// gorm refreshes updated_at on map updates by itself
		err = q.Updates(map[string]any(fields)).Error
	}
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Store[T]) Delete(ctx context.Context, id int) (*T, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error; err != nil {
		return nil, err
	}
	return rec, nil
}
