package models

// Booking kinds used in notification payloads; the email subject and body
// shape differ between the two.
const (
	NotifyKindCaregiver = "caregiver"
	NotifyKindPet       = "pet"
)

// BookingStatusPayload is the message enqueued when a booking's status changes.
type BookingStatusPayload struct {
	BookingID      string `json:"bookingId"`
	Kind           string `json:"kind"` // "caregiver" or "pet"
	RecipientID    string `json:"recipientId"`
	RecipientEmail string `json:"recipientEmail"`
	Status         string `json:"status"`
	SubjectContext string `json:"subjectContext"` // e.g. caregiver name or grooming service
	Date           string `json:"date"`
}
