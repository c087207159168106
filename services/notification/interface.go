package notification

import (
	"context"

	"pawhaven/models"
)

// NotificationService dispatches booking-status messages to their owners.
// Dispatch is fire-and-forget from the caller's perspective: delivery runs on
// the queue worker with bounded retries, and an enqueue failure is reported
// but must never roll back the state change that triggered it.
type NotificationService interface {
	DispatchBookingStatus(ctx context.Context, p models.BookingStatusPayload) error
}
