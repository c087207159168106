package payment

import (
	"errors"
	"fmt"

	paymentRepo "pawhaven/database/repository/payment"
	"pawhaven/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService stores payment records and creates Stripe PaymentIntents for
// card payments.
type PaymentService interface {
	// CreateIntent creates a Stripe PaymentIntent and returns its client secret
	// alongside the pending payment record.
	CreateIntent(userID string, req IntentRequest) (*IntentResult, error)
	// RecordPayment stores a cash (or externally settled) payment record.
	RecordPayment(userID string, req RecordRequest) (*models.Payment, error)
	// ListByUser returns the caller's payment records.
	ListByUser(userID string) ([]models.Payment, error)
	// ListAll returns every payment record (admin surface).
	ListAll() ([]models.Payment, error)
}

// IntentRequest asks for a card payment.
type IntentRequest struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	BookingID string  `json:"bookingId,omitempty"`
}

// IntentResult carries what the client needs to confirm the card payment.
type IntentResult struct {
	Payment      *models.Payment `json:"payment"`
	ClientSecret string          `json:"clientSecret"`
}

// RecordRequest stores a payment settled outside Stripe.
type RecordRequest struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Method    string  `json:"method"`
	BookingID string  `json:"bookingId,omitempty"`
}

// DefaultPaymentService is the production PaymentService.
type DefaultPaymentService struct {
	Repo   paymentRepo.PaymentRepository
	Logger *zap.Logger
}

// CreateIntent creates a Stripe PaymentIntent and a pending payment record.
func (s *DefaultPaymentService) CreateIntent(userID string, req IntentRequest) (*IntentResult, error) {
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount * 100)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	p := &models.Payment{
		ID:              uuid.New().String(),
		UserID:          userID,
		BookingID:       req.BookingID,
		Amount:          req.Amount,
		Currency:        currency,
		Method:          "card",
		StripePaymentID: pi.ID,
		Status:          "pending",
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	s.Logger.Info("payment intent created",
		zap.String("paymentID", p.ID),
		zap.String("stripeID", pi.ID),
	)
	return &IntentResult{Payment: p, ClientSecret: pi.ClientSecret}, nil
}

// RecordPayment stores a payment settled outside Stripe.
func (s *DefaultPaymentService) RecordPayment(userID string, req RecordRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if req.Method != "cash" && req.Method != "card" {
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	status := "pending"
	if req.Method == "card" {
		status = "paid"
	}

	p := &models.Payment{
		ID:        uuid.New().String(),
		UserID:    userID,
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Currency:  currency,
		Method:    req.Method,
		Status:    status,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	s.Logger.Info("payment recorded", zap.String("paymentID", p.ID), zap.String("method", p.Method))
	return p, nil
}

// ListByUser returns the caller's payment records.
func (s *DefaultPaymentService) ListByUser(userID string) ([]models.Payment, error) {
	return s.Repo.GetByUser(userID)
}

// ListAll returns every payment record.
func (s *DefaultPaymentService) ListAll() ([]models.Payment, error) {
	return s.Repo.GetAll()
}
