package models

import "time"

// Booking status lifecycle: pending until an admin or the booked caregiver
// decides, then terminal.
const (
	BookingPending  = "pending"
	BookingAccepted = "accepted"
	BookingRejected = "rejected"
)

// Booking is a caregiver appointment request occupying a time slot.
type Booking struct {
	ID                  string    `bson:"id" json:"id"`
	CaregiverID         string    `bson:"caregiver_id" json:"caregiverId"`
	UserID              string    `bson:"user_id" json:"userId"`
	Date                string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start               int       `bson:"start" json:"start"`
	End                 int       `bson:"end" json:"end"` // minutes from midnight, start < end
	Status              string    `bson:"status" json:"status"`
	SpecialInstructions string    `bson:"special_instructions,omitempty" json:"specialInstructions,omitempty"`
	CreatedAt           time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updatedAt"`
}

// Active reports whether the booking still occupies its slot.
// Rejected bookings free the slot.
func (b *Booking) Active() bool {
	return b.Status != BookingRejected
}

// GroomingBooking is a salon appointment for a single pet.
// Grooming slots are exact-match, there is no interval engine behind them.
type GroomingBooking struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	PetID     string    `bson:"pet_id" json:"petId"`
	Service   string    `bson:"service" json:"service"` // e.g. "full-groom", "bath", "emergency"
	Date      string    `bson:"date" json:"date"`
	Slot      int       `bson:"slot" json:"slot"` // minutes from midnight
	Status    string    `bson:"status" json:"status"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
