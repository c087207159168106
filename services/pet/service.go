package pet

import (
	"errors"
	"fmt"

	petRepo "pawhaven/database/repository/pet"
	"pawhaven/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotOwner is returned when a caller touches a pet they do not own.
var ErrNotOwner = errors.New("pet does not belong to the caller")

// PetService defines pet registration operations.
type PetService interface {
	Register(ownerID string, input PetInput) (*models.Pet, error)
	GetByID(id string) (*models.Pet, error)
	ListByOwner(ownerID string) ([]models.Pet, error)
	Update(ownerID, petID string, input PetInput) (*models.Pet, error)
	SetPhotoURL(ownerID, petID, url string) (*models.Pet, error)
	Delete(ownerID, petID string) error
}

// PetInput carries the mutable pet fields.
type PetInput struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed,omitempty"`
	AgeMonths int    `json:"ageMonths,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// DefaultPetService is the production PetService.
type DefaultPetService struct {
	Repo   petRepo.PetRepository
	Logger *zap.Logger
}

// Register creates a pet record for the owner.
func (s *DefaultPetService) Register(ownerID string, input PetInput) (*models.Pet, error) {
	if input.Name == "" || input.Species == "" {
		return nil, errors.New("name and species are required")
	}

	p := &models.Pet{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      input.Name,
		Species:   input.Species,
		Breed:     input.Breed,
		AgeMonths: input.AgeMonths,
		Notes:     input.Notes,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	s.Logger.Info("pet registered", zap.String("petID", p.ID), zap.String("ownerID", ownerID))
	return p, nil
}

// GetByID fetches a pet record.
func (s *DefaultPetService) GetByID(id string) (*models.Pet, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("pet with id %s not found", id)
	}
	return p, nil
}

// ListByOwner lists the caller's pets.
func (s *DefaultPetService) ListByOwner(ownerID string) ([]models.Pet, error) {
	return s.Repo.GetByOwner(ownerID)
}

func (s *DefaultPetService) owned(ownerID, petID string) (*models.Pet, error) {
	p, err := s.GetByID(petID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return p, nil
}

// Update applies changes to a pet the caller owns.
func (s *DefaultPetService) Update(ownerID, petID string, input PetInput) (*models.Pet, error) {
	p, err := s.owned(ownerID, petID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		p.Name = input.Name
	}
	if input.Species != "" {
		p.Species = input.Species
	}
	if input.Breed != "" {
		p.Breed = input.Breed
	}
	if input.AgeMonths > 0 {
		p.AgeMonths = input.AgeMonths
	}
	if input.Notes != "" {
		p.Notes = input.Notes
	}

	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPhotoURL records the uploaded photo location on the pet.
func (s *DefaultPetService) SetPhotoURL(ownerID, petID, url string) (*models.Pet, error) {
	p, err := s.owned(ownerID, petID)
	if err != nil {
		return nil, err
	}
	p.PhotoURL = url
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a pet the caller owns.
func (s *DefaultPetService) Delete(ownerID, petID string) error {
	if _, err := s.owned(ownerID, petID); err != nil {
		return err
	}
	return s.Repo.Delete(petID)
}
