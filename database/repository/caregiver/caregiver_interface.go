package caregiverRepo

import "pawhaven/models"

// CaregiverRepository defines methods for caregiver data access.
type CaregiverRepository interface {
	// GetByID retrieves a caregiver by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Caregiver, error)
	// GetAll retrieves all caregivers.
	GetAll() ([]models.Caregiver, error)
	// Create inserts a new caregiver record.
	Create(cg *models.Caregiver) error
	// Update modifies an existing caregiver record.
	Update(cg *models.Caregiver) error
	// Delete removes a caregiver record by its ID.
	Delete(id string) error
}
