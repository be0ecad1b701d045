package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Route is a saved cycling path with its social metadata. Aggregate fields
// (avg_rating, review_count, vote counters) are recomputed from the review and
// vote collections on every mutation rather than maintained incrementally.
type Route struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	RouteID     string             `json:"route_id" bson:"route_id"`
	Name        string             `json:"name" bson:"name"`
	Locations   []Location         `json:"locations" bson:"locations"`
	UserID      string             `json:"user_id" bson:"user_id"`
	IsPublic    bool               `json:"is_public" bson:"is_public"`
	ShareCount  int                `json:"share_count" bson:"share_count"`
	AvgRating   float64            `json:"avg_rating" bson:"avg_rating"`
	ReviewCount int                `json:"review_count" bson:"review_count"`
	Upvotes     int                `json:"upvotes" bson:"upvotes"`
	Downvotes   int                `json:"downvotes" bson:"downvotes"`
	VoteScore   int                `json:"vote_score" bson:"vote_score"`
	ImageURL    string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// VoteCounts is the recomputed counter set stored back onto a route after
// every vote mutation.
type VoteCounts struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	VoteScore int `json:"vote_score"`
}

// RatingStats is the recomputed review aggregate stored back onto a route.
type RatingStats struct {
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}
