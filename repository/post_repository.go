package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cppla/yatube/models"
)

// newestFirst is the listing order; id breaks ties between posts created in the same instant.
const newestFirst = "posts.created_at DESC, posts.id DESC"

func (s *Store) posts(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Post{}).
		Preload("Author").Preload("Group").
		Order(newestFirst)
}

// AllPosts returns an ordered query over every post.
func (s *Store) AllPosts(ctx context.Context) *gorm.DB {
	return s.posts(ctx)
}

// GroupPosts resolves slug and returns the group with an ordered query over its posts.
func (s *Store) GroupPosts(ctx context.Context, slug string) (*models.Group, *gorm.DB, error) {
	var group models.Group
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, nil, notFound(err)
	}
	return &group, s.posts(ctx).Where("posts.group_id = ?", group.ID), nil
}

// AuthorPosts resolves username and returns the author, an ordered query over
// their posts and how many posts they wrote.
func (s *Store) AuthorPosts(ctx context.Context, username string) (*models.User, *gorm.DB, int64, error) {
	author, err := s.UserByUsername(ctx, username)
	if err != nil {
		return nil, nil, 0, err
	}
	count, err := s.CountPostsByAuthor(ctx, author.ID)
	if err != nil {
		return nil, nil, 0, err
	}
	return author, s.posts(ctx).Where("posts.author_id = ?", author.ID), count, nil
}

// FollowedPosts returns an ordered query over posts by authors userID follows.
func (s *Store) FollowedPosts(ctx context.Context, userID uint) *gorm.DB {
	followed := s.db.WithContext(ctx).Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", userID)
	return s.posts(ctx).Where("posts.author_id IN (?)", followed)
}

// CountPostsByAuthor counts posts written by authorID.
func (s *Store) CountPostsByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Post{}).Where("author_id = ?", authorID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count posts of %d: %w", authorID, err)
	}
	return n, nil
}

// GetPost loads a post with its author and group.
func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

// CreatePost inserts post; ID and CreatedAt are filled in.
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	if err := s.db.WithContext(ctx).Omit("Author", "Group").Create(post).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// UpdatePost writes the editable columns of post.
func (s *Store) UpdatePost(ctx context.Context, post *models.Post) error {
	err := s.db.WithContext(ctx).Model(post).
		Select("Title", "Text", "Description", "GroupID", "Image").
		Updates(post).Error
	if err != nil {
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	return nil
}
