package notification

import (
	"testing"

	"pawhaven/models"

	"github.com/stretchr/testify/assert"
)

func TestComposeBookingStatusEmailCaregiver(t *testing.T) {
	subject, body := ComposeBookingStatusEmail(models.BookingStatusPayload{
		Kind:           models.NotifyKindCaregiver,
		Status:         models.BookingAccepted,
		SubjectContext: "Alice Groomsworth",
		Date:           "2026-09-14",
	})

	assert.Equal(t, "Your caregiver booking was accepted", subject)
	assert.Contains(t, body, "Alice Groomsworth")
	assert.Contains(t, body, "2026-09-14")
	assert.Contains(t, body, "accepted")
}

func TestComposeBookingStatusEmailGrooming(t *testing.T) {
	subject, body := ComposeBookingStatusEmail(models.BookingStatusPayload{
		Kind:           models.NotifyKindPet,
		Status:         models.BookingRejected,
		SubjectContext: "full-groom",
		Date:           "2026-09-20",
	})

	assert.Equal(t, "Your grooming appointment was rejected", subject)
	assert.Contains(t, body, "full-groom")
	assert.Contains(t, body, "rejected")
}
