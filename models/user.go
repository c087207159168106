package models

import "time"

// Role values recognised across the API.
const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleCaregiver = "caregiver"
)

// User represents an account holder.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PhotoURL     string    `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
