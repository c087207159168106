package models

import "time"

// Payment is a stored payment record, optionally backed by a Stripe PaymentIntent.
type Payment struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"user_id" json:"userId"`
	BookingID       string    `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	Amount          float64   `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	Method          string    `bson:"method" json:"method"` // "card" or "cash"
	StripePaymentID string    `bson:"stripe_payment_id,omitempty" json:"stripePaymentId,omitempty"`
	Status          string    `bson:"status" json:"status"` // "pending" or "paid"
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
