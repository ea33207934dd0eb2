package repository

import (
	"context"
	"fmt"

	"github.com/cppla/yatube/models"
)

// UserByUsername loads a user by exact username.
func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// UserByID loads a user by primary key.
func (s *Store) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// CreateUser inserts user, returning ErrDuplicate when the username is taken.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", user.Username).Count(&n).Error; err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if n > 0 {
		return ErrDuplicate
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
