package bookingRepo

import (
	"context"
	"errors"

	"pawhaven/models"
)

// ErrSlotTaken is returned when an active booking already overlaps the
// requested interval for the caregiver and date.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository defines data access for caregiver bookings.
type BookingRepository interface {
	// CreateIfSlotFree inserts the booking only if no active booking for the
	// same caregiver and date overlaps [b.Start, b.End). The check and the
	// insert run inside a single Mongo transaction; on overlap ErrSlotTaken
	// is returned and nothing is persisted.
	CreateIfSlotFree(ctx context.Context, b *models.Booking) error
	// GetByID retrieves a booking by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByUser lists a user's bookings, newest first.
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// GetByCaregiverDate lists all bookings for a caregiver on a date.
	GetByCaregiverDate(ctx context.Context, caregiverID, date string) ([]models.Booking, error)
	// GetAll lists every booking, newest first.
	GetAll(ctx context.Context) ([]models.Booking, error)
	// UpdateStatus sets the status of a booking and refreshes updated_at.
	// Returns (nil, nil) when the booking does not exist.
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
}
