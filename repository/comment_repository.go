package repository

import (
	"context"
	"fmt"

	"github.com/cppla/yatube/models"
)

// Comments lists the comments of postID, oldest first.
func (s *Store) Comments(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments of %d: %w", postID, err)
	}
	return comments, nil
}

// CreateComment inserts comment.
func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := s.db.WithContext(ctx).Omit("Author").Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}
