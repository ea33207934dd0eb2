// Package testutil builds throwaway databases and fixtures for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cppla/yatube/config"
	"github.com/cppla/yatube/models"
)

// NewDB returns a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := config.OpenDatabase(config.AppConfig{DBDriver: "sqlite", DatabaseURI: dsn, LogLevel: "silent"})
	require.NoError(t, err, "failed to open in-memory sqlite")
	require.NoError(t, config.Migrate(db, models.All()...), "failed to migrate schema")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser inserts a user whose password is "password123".
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username}
	// default bcrypt cost is slow; fixtures use the minimum
	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)
	u.PasswordHash = string(hash)
	require.NoError(t, db.Create(u).Error, "failed to create user %s", username)
	return u
}

// CreateGroup inserts a group with the given slug.
func CreateGroup(t *testing.T, db *gorm.DB, slug string) *models.Group {
	t.Helper()
	g := &models.Group{Title: "Group " + slug, Slug: slug, Description: "About " + slug}
	require.NoError(t, db.Create(g).Error, "failed to create group %s", slug)
	return g
}

// CreatePost inserts a post by author, optionally in group.
func CreatePost(t *testing.T, db *gorm.DB, author *models.User, group *models.Group, text string) *models.Post {
	t.Helper()
	p := &models.Post{AuthorID: author.ID, Text: text}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, db.Create(p).Error, "failed to create post")
	return p
}

// Count returns the number of rows of model.
func Count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

// Password is the plaintext password of every fixture user.
const Password = "password123"
