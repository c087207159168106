package groomingRepo

import (
	"context"
	"errors"

	"pawhaven/models"
)

// ErrSlotTaken is returned when a non-rejected grooming booking already holds
// the exact date/slot.
var ErrSlotTaken = errors.New("slot already booked")

// GroomingRepository defines data access for grooming bookings.
type GroomingRepository interface {
	// CreateIfSlotFree inserts the booking only if the exact (date, slot) pair
	// is not held by an active booking.
	CreateIfSlotFree(ctx context.Context, b *models.GroomingBooking) error
	// GetByID retrieves a grooming booking by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.GroomingBooking, error)
	// GetByUser lists a user's grooming bookings, newest first.
	GetByUser(ctx context.Context, userID string) ([]models.GroomingBooking, error)
	// GetAll lists every grooming booking, newest first.
	GetAll(ctx context.Context) ([]models.GroomingBooking, error)
	// UpdateStatus sets the status and refreshes updated_at.
	// Returns (nil, nil) when the booking does not exist.
	UpdateStatus(ctx context.Context, id, status string) (*models.GroomingBooking, error)
}
