package models

import "time"

// Pet is a registered animal owned by a user.
type Pet struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"owner_id" json:"ownerId"`
	Name      string    `bson:"name" json:"name"`
	Species   string    `bson:"species" json:"species"` // e.g. "dog", "cat"
	Breed     string    `bson:"breed,omitempty" json:"breed,omitempty"`
	AgeMonths int       `bson:"age_months,omitempty" json:"ageMonths,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	PhotoURL  string    `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
