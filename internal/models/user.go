package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID       string             `json:"user_id" bson:"user_id"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// PublicProfile strips everything a non-owner should not see.
func (u *User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"user_id":    u.UserID,
		"username":   u.Username,
		"created_at": u.CreatedAt,
	}
}
