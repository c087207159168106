package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "pawhaven/database/repository/user"
	"pawhaven/models"
	"pawhaven/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// ErrInvalidCredentials is returned when email/password verification fails.
var ErrInvalidCredentials = errors.New("invalid email or password")

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// Register creates an account and signs the caller in.
func (s *DefaultUserService) Register(username, email, password, phone string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" {
		return nil, errors.New("username and email are required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("email lookup failed: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Phone:        phone,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, err
	}

	return s.issueToken(usr)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("email lookup failed: %w", err)
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(usr)
}

func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := utils.SaveSessionToken(utils.GetAuthCacheClient(), usr.ID, utils.HashToken(token), tokenTTL); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.Logger.Info("session issued", zap.String("userID", usr.ID))
	return &AuthResult{User: usr, Token: token}, nil
}

// GetUserByID fetches an account.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return usr, nil
}

// GetAllUsers lists every account.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// UpdateProfile applies profile changes for the account owner.
func (s *DefaultUserService) UpdateProfile(id string, updates ProfileUpdate) (*models.User, error) {
	usr, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if updates.Username != "" {
		usr.Username = updates.Username
	}
	if updates.Phone != "" {
		usr.Phone = updates.Phone
	}
	if updates.PhotoURL != "" {
		usr.PhotoURL = updates.PhotoURL
	}

	if err := s.Repo.Update(usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// UpdateFCMToken stores the push token for the account's device.
func (s *DefaultUserService) UpdateFCMToken(id, token string) error {
	usr, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	usr.FCMToken = token
	return s.Repo.Update(usr)
}

// DeleteUser removes the account and revokes its session.
func (s *DefaultUserService) DeleteUser(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	return s.RevokeToken(id)
}

// RevokeToken invalidates the account's current session.
func (s *DefaultUserService) RevokeToken(id string) error {
	return utils.DeleteSessionToken(utils.GetAuthCacheClient(), id)
}
