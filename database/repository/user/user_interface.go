package userRepo

import (
	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a user by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
}
