package petRepo

import "pawhaven/models"

// PetRepository defines methods for pet data access.
type PetRepository interface {
	// GetByID retrieves a pet by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Pet, error)
	// GetByOwner lists all pets registered by a user.
	GetByOwner(ownerID string) ([]models.Pet, error)
	// Create inserts a new pet record.
	Create(pet *models.Pet) error
	// Update modifies an existing pet record.
	Update(pet *models.Pet) error
	// Delete removes a pet record by its ID.
	Delete(id string) error
}
