package handlers

import (
	"errors"
	"net/http"

	"pawhaven/services/booking"
	"pawhaven/services/community"
	"pawhaven/services/pet"
	"pawhaven/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything untyped is a 500.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		validationErr *booking.ValidationError
		notFoundErr   *booking.NotFoundError
		conflictErr   *booking.ConflictError
		authErr       *booking.AuthorizationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, pet.ErrNotOwner), errors.Is(err, community.ErrNotAuthor):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

// actorFromContext builds the acting identity from the auth middleware's
// context values.
func actorFromContext(c *gin.Context) booking.Actor {
	return booking.Actor{
		ID:   c.GetString("userID"),
		Role: c.GetString("role"),
	}
}
