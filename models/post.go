package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Post is an entry written by an author, optionally filed under a Group.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"index;not null" json:"author_id"`
	GroupID     *uint     `gorm:"index" json:"group_id"`
	Title       string    `gorm:"size:255" json:"title"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:512" json:"image"` // public URL under MediaURL
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Author      User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Group       *Group    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group,omitempty"`
	Comments    []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments,omitempty"`
}

// ShortText is used as a page title for posts without one.
const ShortText = 30

// Headline returns the title, or the first ShortText runes of the text.
func (p Post) Headline() string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	if utf8.RuneCountInString(p.Text) <= ShortText {
		return p.Text
	}
	return string([]rune(p.Text)[:ShortText])
}
