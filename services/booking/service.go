package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "pawhaven/database/repository/booking"
	caregiverRepo "pawhaven/database/repository/caregiver"
	groomingRepo "pawhaven/database/repository/grooming"
	petRepo "pawhaven/database/repository/pet"
	userRepo "pawhaven/database/repository/user"
	"pawhaven/models"
	"pawhaven/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Bookings   bookingRepo.BookingRepository
	Grooming   groomingRepo.GroomingRepository
	Caregivers caregiverRepo.CaregiverRepository
	Users      userRepo.UserRepository
	Pets       petRepo.PetRepository
	Notifier   notification.NotificationService
	Logger     *zap.Logger

	locks *caregiverLocks
}

// NewDefaultBookingService wires the booking engine.
func NewDefaultBookingService(
	bookings bookingRepo.BookingRepository,
	grooming groomingRepo.GroomingRepository,
	caregivers caregiverRepo.CaregiverRepository,
	users userRepo.UserRepository,
	pets petRepo.PetRepository,
	notifier notification.NotificationService,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:   bookings,
		Grooming:   grooming,
		Caregivers: caregivers,
		Users:      users,
		Pets:       pets,
		Notifier:   notifier,
		Logger:     logger,
		locks:      newCaregiverLocks(),
	}
}

// CreateBooking validates the request, then runs the overlap check and the
// insert while holding the caregiver's lock. The repository repeats the check
// inside its transaction; the lock keeps two in-process requests from reaching
// that transaction with the same free-slot view.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	if req.Start >= req.End {
		return nil, NewValidationError("startTime must be before endTime")
	}
	if !validDate(req.Date) {
		return nil, NewValidationError("date must be in YYYY-MM-DD form")
	}

	cg, err := s.Caregivers.GetByID(req.CaregiverID)
	if err != nil {
		return nil, fmt.Errorf("caregiver lookup failed: %w", err)
	}
	if cg == nil {
		return nil, &NotFoundError{Resource: "caregiver", ID: req.CaregiverID}
	}

	b := &models.Booking{
		ID:                  uuid.New().String(),
		CaregiverID:         req.CaregiverID,
		UserID:              req.UserID,
		Date:                req.Date,
		Start:               req.Start,
		End:                 req.End,
		Status:              models.BookingPending,
		SpecialInstructions: req.SpecialInstructions,
	}

	lock := s.locks.get(req.CaregiverID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.Bookings.CreateIfSlotFree(ctx, b); err != nil {
		if err == bookingRepo.ErrSlotTaken {
			return nil, &ConflictError{Message: "slot already booked"}
		}
		return nil, err
	}

	s.Logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("caregiverID", b.CaregiverID),
		zap.String("date", b.Date),
	)
	return b, nil
}

// GetUserBookings lists the caller's bookings.
func (s *DefaultBookingService) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Bookings.GetByUser(ctx, userID)
}

// GetAllBookings lists every booking.
func (s *DefaultBookingService) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.GetAll(ctx)
}

// SetStatus transitions a pending booking to accepted or rejected. Admins may
// decide any booking; a caregiver may only decide bookings addressed to them.
// The notification side effect never rolls back the persisted transition.
func (s *DefaultBookingService) SetStatus(ctx context.Context, bookingID, newStatus string, actor Actor) (*models.Booking, error) {
	if newStatus != models.BookingAccepted && newStatus != models.BookingRejected {
		return nil, NewValidationError("status must be %q or %q", models.BookingAccepted, models.BookingRejected)
	}

	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking lookup failed: %w", err)
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}

	if !actor.IsAdmin() && !(actor.Role == models.RoleCaregiver && actor.ID == b.CaregiverID) {
		return nil, &AuthorizationError{Message: "only an admin or the booked caregiver may decide a booking"}
	}

	if b.Status != models.BookingPending {
		return nil, NewValidationError("booking %s is already %s", bookingID, b.Status)
	}

	updated, err := s.Bookings.UpdateStatus(ctx, bookingID, newStatus)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}

	s.notifyOwner(ctx, updated.UserID, models.BookingStatusPayload{
		BookingID:      updated.ID,
		Kind:           models.NotifyKindCaregiver,
		RecipientID:    updated.UserID,
		Status:         updated.Status,
		SubjectContext: s.caregiverName(updated.CaregiverID),
		Date:           updated.Date,
	})
	return updated, nil
}

// CreateGroomingBooking persists a pending grooming booking.
func (s *DefaultBookingService) CreateGroomingBooking(ctx context.Context, req CreateGroomingRequest) (*models.GroomingBooking, error) {
	if !validDate(req.Date) {
		return nil, NewValidationError("date must be in YYYY-MM-DD form")
	}
	if req.Slot < 0 || req.Slot >= 24*60 {
		return nil, NewValidationError("slot must be a time of day")
	}
	if req.Service == "" {
		return nil, NewValidationError("service is required")
	}

	pet, err := s.Pets.GetByID(req.PetID)
	if err != nil {
		return nil, fmt.Errorf("pet lookup failed: %w", err)
	}
	if pet == nil {
		return nil, &NotFoundError{Resource: "pet", ID: req.PetID}
	}
	if pet.OwnerID != req.UserID {
		return nil, &AuthorizationError{Message: "pet does not belong to the caller"}
	}

	b := &models.GroomingBooking{
		ID:      uuid.New().String(),
		UserID:  req.UserID,
		PetID:   req.PetID,
		Service: req.Service,
		Date:    req.Date,
		Slot:    req.Slot,
		Status:  models.BookingPending,
		Notes:   req.Notes,
	}

	if err := s.Grooming.CreateIfSlotFree(ctx, b); err != nil {
		if err == groomingRepo.ErrSlotTaken {
			return nil, &ConflictError{Message: "slot already booked"}
		}
		return nil, err
	}

	s.Logger.Info("grooming booking created",
		zap.String("bookingID", b.ID),
		zap.String("date", b.Date),
	)
	return b, nil
}

// GetUserGroomingBookings lists the caller's grooming bookings.
func (s *DefaultBookingService) GetUserGroomingBookings(ctx context.Context, userID string) ([]models.GroomingBooking, error) {
	return s.Grooming.GetByUser(ctx, userID)
}

// SetGroomingStatus transitions a grooming booking; admin only.
func (s *DefaultBookingService) SetGroomingStatus(ctx context.Context, bookingID, newStatus string, actor Actor) (*models.GroomingBooking, error) {
	if newStatus != models.BookingAccepted && newStatus != models.BookingRejected {
		return nil, NewValidationError("status must be %q or %q", models.BookingAccepted, models.BookingRejected)
	}
	if !actor.IsAdmin() {
		return nil, &AuthorizationError{Message: "only an admin may decide a grooming booking"}
	}

	b, err := s.Grooming.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("grooming booking lookup failed: %w", err)
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if b.Status != models.BookingPending {
		return nil, NewValidationError("booking %s is already %s", bookingID, b.Status)
	}

	updated, err := s.Grooming.UpdateStatus(ctx, bookingID, newStatus)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}

	s.notifyOwner(ctx, updated.UserID, models.BookingStatusPayload{
		BookingID:      updated.ID,
		Kind:           models.NotifyKindPet,
		RecipientID:    updated.UserID,
		Status:         updated.Status,
		SubjectContext: updated.Service,
		Date:           updated.Date,
	})
	return updated, nil
}

// notifyOwner resolves the recipient's email and dispatches the payload.
// Failures are logged only; the status change already happened.
func (s *DefaultBookingService) notifyOwner(ctx context.Context, userID string, p models.BookingStatusPayload) {
	usr, err := s.Users.GetByID(userID)
	if err != nil || usr == nil {
		s.Logger.Warn("notification skipped: owner lookup failed",
			zap.String("userID", userID), zap.Error(err))
		return
	}
	p.RecipientEmail = usr.Email

	if err := s.Notifier.DispatchBookingStatus(ctx, p); err != nil {
		s.Logger.Error("notification dispatch failed",
			zap.String("bookingID", p.BookingID), zap.Error(err))
	}
}

func (s *DefaultBookingService) caregiverName(id string) string {
	cg, err := s.Caregivers.GetByID(id)
	if err != nil || cg == nil {
		return "your caregiver"
	}
	return cg.Name
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
