package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cppla/yatube/models"
)

// Groups lists every group ordered by slug.
func (s *Store) Groups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := s.db.WithContext(ctx).Order("slug ASC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// GroupByID loads one group.
func (s *Store) GroupByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	if err := s.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &group, nil
}

// CreateGroup inserts group. Groups are never edited afterwards.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Group{}).Where("slug = ?", group.Slug).Count(&n).Error; err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if n > 0 {
		return ErrDuplicate
	}
	if err := s.db.WithContext(ctx).Create(group).Error; err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

// SeedGroups creates every group whose slug is free and reports how many were added.
// Existing groups are left untouched.
func (s *Store) SeedGroups(ctx context.Context, groups []models.Group) (int, error) {
	created := 0
	for i := range groups {
		err := s.CreateGroup(ctx, &groups[i])
		if errors.Is(err, ErrDuplicate) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("seed group %q: %w", groups[i].Slug, err)
		}
		created++
	}
	return created, nil
}
