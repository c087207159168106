package booking

import (
	"context"

	"pawhaven/models"
)

// Actor is the resolved identity performing an operation.
type Actor struct {
	ID   string
	Role string
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// CreateBookingRequest carries a validated caregiver-booking request.
type CreateBookingRequest struct {
	CaregiverID         string
	UserID              string
	Date                string // "YYYY-MM-DD"
	Start               int    // minutes from midnight
	End                 int
	SpecialInstructions string
}

// CreateGroomingRequest carries a grooming-booking request.
type CreateGroomingRequest struct {
	UserID  string
	PetID   string
	Service string
	Date    string
	Slot    int
	Notes   string
}

// BookingService is the booking conflict engine plus the status transition
// manager for both booking kinds.
type BookingService interface {
	// CreateBooking validates the request against the caregiver directory and
	// existing bookings, then persists a pending booking. Returns
	// NotFoundError, ValidationError or ConflictError on failure.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	// GetUserBookings lists the caller's bookings.
	GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	// GetAllBookings lists every booking (admin surface).
	GetAllBookings(ctx context.Context) ([]models.Booking, error)
	// SetStatus transitions a pending booking to accepted or rejected and
	// dispatches a notification to the booking's owner. The notification is
	// best-effort: its failure never rolls back the persisted transition.
	SetStatus(ctx context.Context, bookingID, newStatus string, actor Actor) (*models.Booking, error)

	// CreateGroomingBooking persists a pending grooming booking.
	CreateGroomingBooking(ctx context.Context, req CreateGroomingRequest) (*models.GroomingBooking, error)
	// GetUserGroomingBookings lists the caller's grooming bookings.
	GetUserGroomingBookings(ctx context.Context, userID string) ([]models.GroomingBooking, error)
	// SetGroomingStatus transitions a grooming booking; admin only.
	SetGroomingStatus(ctx context.Context, bookingID, newStatus string, actor Actor) (*models.GroomingBooking, error)
}

// Overlaps reports whether [s1,e1) and [s2,e2) share any instant.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}
