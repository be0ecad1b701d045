package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a rated note on a route, optionally carrying media attachments.
// A comment with a ParentID is a reply; threading is a single level deep and
// the parent keeps a reply counter.
type Comment struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	CommentID  string             `json:"comment_id" bson:"comment_id"`
	RouteID    string             `json:"route_id" bson:"route_id"`
	UserID     string             `json:"user_id" bson:"user_id"`
	Content    string             `json:"content" bson:"content"`
	Rating     int                `json:"rating" bson:"rating"`
	MediaURLs  []string           `json:"media_urls" bson:"media_urls"`
	ParentID   *string            `json:"parent_id" bson:"parent_id"`
	ReplyCount int                `json:"reply_count" bson:"reply_count"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`

	// Username is resolved at read time for display and never persisted.
	Username string `json:"username,omitempty" bson:"-"`
}

// IsReply reports whether the comment belongs to a parent thread.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil && *c.ParentID != ""
}
