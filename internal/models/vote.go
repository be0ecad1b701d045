package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vote is a single user's up/down vote on a public route. One vote per
// (route, user): resubmitting the same type removes it, the opposite type
// overwrites it.
type Vote struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	VoteID    string             `json:"vote_id" bson:"vote_id"`
	RouteID   string             `json:"route_id" bson:"route_id"`
	UserID    string             `json:"user_id" bson:"user_id"`
	VoteType  int                `json:"vote_type" bson:"vote_type"` // 1 upvote, -1 downvote
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
