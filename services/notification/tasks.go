package notification

import (
	"encoding/json"

	"pawhaven/models"

	"github.com/hibiken/asynq"
)

const TypeBookingStatus = "notification:bookingStatus"

// NewBookingStatusTask wraps a status payload into an asynq task.
func NewBookingStatusTask(payload models.BookingStatusPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingStatus, b), nil
}
