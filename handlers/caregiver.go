package handlers

import (
	"net/http"

	"pawhaven/services/caregiver"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CaregiverHandler serves caregiver directory endpoints.
type CaregiverHandler struct {
	Service caregiver.CaregiverService
	Logger  *zap.Logger
}

// NewCaregiverHandler creates a CaregiverHandler.
func NewCaregiverHandler(svc caregiver.CaregiverService, logger *zap.Logger) *CaregiverHandler {
	return &CaregiverHandler{Service: svc, Logger: logger}
}

// ListHandler handles GET /api/caregivers.
func (h *CaregiverHandler) ListHandler(c *gin.Context) {
	caregivers, err := h.Service.GetAll()
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, caregivers)
}

// GetHandler handles GET /api/caregivers/:id.
func (h *CaregiverHandler) GetHandler(c *gin.Context) {
	cg, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cg)
}

// CreateHandler handles POST /api/admin/caregivers.
func (h *CaregiverHandler) CreateHandler(c *gin.Context) {
	var input caregiver.CaregiverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cg, err := h.Service.Create(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cg)
}

// UpdateHandler handles PUT /api/admin/caregivers/:id.
func (h *CaregiverHandler) UpdateHandler(c *gin.Context) {
	var input caregiver.CaregiverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cg, err := h.Service.Update(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, cg)
}

// DeleteHandler handles DELETE /api/admin/caregivers/:id.
func (h *CaregiverHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "caregiver deleted"})
}
