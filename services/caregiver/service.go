package caregiver

import (
	"errors"
	"fmt"

	caregiverRepo "pawhaven/database/repository/caregiver"
	"pawhaven/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CaregiverService manages the caregiver directory.
type CaregiverService interface {
	Create(input CaregiverInput) (*models.Caregiver, error)
	GetByID(id string) (*models.Caregiver, error)
	GetAll() ([]models.Caregiver, error)
	Update(id string, input CaregiverInput) (*models.Caregiver, error)
	Delete(id string) error
}

// CaregiverInput carries the mutable caregiver fields.
type CaregiverInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Bio         string  `json:"bio,omitempty"`
	ServiceArea string  `json:"serviceArea,omitempty"`
	RatePerHour float64 `json:"ratePerHour"`
	WorkStart   string  `json:"workStart,omitempty"` // "HH:MM"
	WorkEnd     string  `json:"workEnd,omitempty"`
}

// DefaultCaregiverService is the production CaregiverService.
type DefaultCaregiverService struct {
	Repo   caregiverRepo.CaregiverRepository
	Logger *zap.Logger
}

// Create adds a caregiver to the directory.
func (s *DefaultCaregiverService) Create(input CaregiverInput) (*models.Caregiver, error) {
	if input.Name == "" || input.Email == "" {
		return nil, errors.New("name and email are required")
	}

	workStart, workEnd, err := parseWindow(input.WorkStart, input.WorkEnd)
	if err != nil {
		return nil, err
	}

	cg := &models.Caregiver{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Bio:         input.Bio,
		ServiceArea: input.ServiceArea,
		RatePerHour: input.RatePerHour,
		WorkStart:   workStart,
		WorkEnd:     workEnd,
	}
	if err := s.Repo.Create(cg); err != nil {
		return nil, err
	}

	s.Logger.Info("caregiver created", zap.String("caregiverID", cg.ID))
	return cg, nil
}

// GetByID fetches a caregiver record.
func (s *DefaultCaregiverService) GetByID(id string) (*models.Caregiver, error) {
	cg, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cg == nil {
		return nil, fmt.Errorf("caregiver with id %s not found", id)
	}
	return cg, nil
}

// GetAll lists the directory.
func (s *DefaultCaregiverService) GetAll() ([]models.Caregiver, error) {
	return s.Repo.GetAll()
}

// Update applies changes to a caregiver record.
func (s *DefaultCaregiverService) Update(id string, input CaregiverInput) (*models.Caregiver, error) {
	cg, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		cg.Name = input.Name
	}
	if input.Email != "" {
		cg.Email = input.Email
	}
	if input.Bio != "" {
		cg.Bio = input.Bio
	}
	if input.ServiceArea != "" {
		cg.ServiceArea = input.ServiceArea
	}
	if input.RatePerHour > 0 {
		cg.RatePerHour = input.RatePerHour
	}
	if input.WorkStart != "" || input.WorkEnd != "" {
		workStart, workEnd, err := parseWindow(input.WorkStart, input.WorkEnd)
		if err != nil {
			return nil, err
		}
		cg.WorkStart = workStart
		cg.WorkEnd = workEnd
	}

	if err := s.Repo.Update(cg); err != nil {
		return nil, err
	}
	return cg, nil
}

// Delete removes a caregiver from the directory. Existing bookings keep their
// caregiver reference; they are never cascade-deleted.
func (s *DefaultCaregiverService) Delete(id string) error {
	return s.Repo.Delete(id)
}
