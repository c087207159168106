package models

import "time"

// Caregiver is a daycare professional users can book.
type Caregiver struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Bio         string    `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL    string    `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	ServiceArea string    `bson:"service_area,omitempty" json:"serviceArea,omitempty"`
	RatePerHour float64   `bson:"rate_per_hour" json:"ratePerHour"`
	// Working window in minutes from midnight.
	WorkStart int       `bson:"work_start" json:"workStart"`
	WorkEnd   int       `bson:"work_end" json:"workEnd"`
	FCMToken  string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
