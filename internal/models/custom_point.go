package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomPoint is a user-saved location (landmark, rest stop) reusable when
// planning routes.
type CustomPoint struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	PointID   string             `json:"point_id" bson:"point_id"`
	Name      string             `json:"name" bson:"name"`
	Location  Location           `json:"location" bson:"location"`
	UserID    string             `json:"user_id" bson:"user_id"`
	IsCustom  bool               `json:"is_custom" bson:"is_custom"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
