// Package repository holds every read and write the handlers perform against the entity store.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a post, group, user or follow does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("already exists")
)

// Store wraps the gorm handle shared by all queries.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store over db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
