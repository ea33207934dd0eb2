// Package events publishes domain events after successful writes.
package events

import (
	"context"
	"time"
)

// Subjects published by the handlers.
const (
	PostCreated    = "post.created"
	PostUpdated    = "post.updated"
	CommentCreated = "comment.created"
	FollowCreated  = "follow.created"
	FollowDeleted  = "follow.deleted"
)

// Event is the JSON payload of every subject.
type Event struct {
	Subject    string    `json:"-"`
	ActorID    uint      `json:"actor_id"`
	PostID     uint      `json:"post_id,omitempty"`
	CommentID  uint      `json:"comment_id,omitempty"`
	AuthorID   uint      `json:"author_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers events. Delivery is best effort; callers log errors and carry on.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
