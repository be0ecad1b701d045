package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a rated write-up on a route. At most one review exists per
// (route, user) pair; a second submission overwrites the first.
type Review struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ReviewID  string             `json:"review_id" bson:"review_id"`
	RouteID   string             `json:"route_id" bson:"route_id"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Content   string             `json:"content" bson:"content"`
	Rating    int                `json:"rating" bson:"rating"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`

	// Username is resolved at read time for display and never persisted.
	Username string `json:"username,omitempty" bson:"-"`
}
