package handlers

import (
	"net/http"

	"pawhaven/services/user"
	"pawhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// RegisterHandler handles POST /api/users/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.Service.Register(req.Username, req.Email, req.Password, req.Phone)
	if err != nil {
		h.Logger.Warn("registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginHandler handles POST /api/users/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MeHandler handles GET /api/users/me.
func (h *UserHandler) MeHandler(c *gin.Context) {
	usr, err := h.Service.GetUserByID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateHandler handles PUT /api/users/me.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	var updates user.ProfileUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	usr, err := h.Service.UpdateProfile(c.GetString("userID"), updates)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateFCMTokenHandler handles PUT /api/users/me/fcm-token.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.Service.UpdateFCMToken(c.GetString("userID"), req.Token); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token updated"})
}

// DeleteHandler handles DELETE /api/users/me.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.DeleteUser(c.GetString("userID")); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// ListAllHandler handles GET /api/admin/users.
func (h *UserHandler) ListAllHandler(c *gin.Context) {
	users, err := h.Service.GetAllUsers()
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// LogoutHandler handles POST /api/users/logout.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if err := h.Service.RevokeToken(c.GetString("userID")); err != nil {
		utils.GetLogger().Warn("failed to revoke session", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
