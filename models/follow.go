package models

import "time"

// Follow means User wants Author's posts in their feed.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follow_user_author" json:"user_id"`
	AuthorID  uint      `gorm:"not null;index;uniqueIndex:idx_follow_user_author" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// All lists every model for auto-migration, in dependency order.
func All() []interface{} {
	return []interface{}{&User{}, &Group{}, &Post{}, &Comment{}, &Follow{}}
}
