package user

import "pawhaven/models"

// AuthResult bundles an authenticated user with its issued token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService defines account management operations.
type UserService interface {
	// Register creates an account and signs the caller in.
	Register(username, email, password, phone string) (*AuthResult, error)
	// Authenticate verifies credentials and issues a fresh token.
	Authenticate(email, password string) (*AuthResult, error)
	// GetUserByID fetches an account. Returns an error when absent.
	GetUserByID(id string) (*models.User, error)
	// GetAllUsers lists every account (admin surface).
	GetAllUsers() ([]models.User, error)
	// UpdateProfile applies profile changes for the account owner.
	UpdateProfile(id string, updates ProfileUpdate) (*models.User, error)
	// UpdateFCMToken stores the push token for the account's device.
	UpdateFCMToken(id, token string) error
	// DeleteUser removes the account and revokes its session.
	DeleteUser(id string) error
	// RevokeToken invalidates the account's current session.
	RevokeToken(id string) error
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Username string `json:"username,omitempty"`
	Phone    string `json:"phone,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}
