package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/cppla/yatube/models"
)

// IsFollowing reports whether user follows authorID. A nil user is anonymous and follows nobody.
func (s *Store) IsFollowing(ctx context.Context, user *models.User, authorID uint) (bool, error) {
	if user == nil {
		return false, nil
	}
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", user.ID, authorID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return n > 0, nil
}

// Follow creates the (userID, authorID) row unless it already exists.
// It reports whether a row was inserted. Self-follows are rejected by the caller.
func (s *Store) Follow(ctx context.Context, userID, authorID uint) (bool, error) {
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("User", "Author").
		Create(&models.Follow{UserID: userID, AuthorID: authorID})
	if res.Error != nil {
		return false, fmt.Errorf("follow %d: %w", authorID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Unfollow deletes the (userID, authorID) row, or returns ErrNotFound.
func (s *Store) Unfollow(ctx context.Context, userID, authorID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return fmt.Errorf("unfollow %d: %w", authorID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
