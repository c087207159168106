package models

import "time"

// Program kinds.
const (
	ProgramTraining  = "training"
	ProgramPregnancy = "pregnancy"
)

// Program is a listed training or pregnancy-care program.
type Program struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Kind          string    `bson:"kind" json:"kind"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationWeeks int       `bson:"duration_weeks" json:"durationWeeks"`
	Price         float64   `bson:"price" json:"price"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
