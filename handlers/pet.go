package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"pawhaven/services/pet"
	"pawhaven/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PetHandler serves pet registration endpoints.
type PetHandler struct {
	Service pet.PetService
	Storage storage.StorageService
	Logger  *zap.Logger
}

// NewPetHandler creates a PetHandler. Storage may be nil when photo uploads
// are not configured.
func NewPetHandler(svc pet.PetService, storageSvc storage.StorageService, logger *zap.Logger) *PetHandler {
	return &PetHandler{Service: svc, Storage: storageSvc, Logger: logger}
}

// CreateHandler handles POST /api/pets.
func (h *PetHandler) CreateHandler(c *gin.Context) {
	var input pet.PetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.Service.Register(c.GetString("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListHandler handles GET /api/pets.
func (h *PetHandler) ListHandler(c *gin.Context) {
	pets, err := h.Service.ListByOwner(c.GetString("userID"))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

// GetHandler handles GET /api/pets/:id.
func (h *PetHandler) GetHandler(c *gin.Context) {
	p, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateHandler handles PUT /api/pets/:id.
func (h *PetHandler) UpdateHandler(c *gin.Context) {
	var input pet.PetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.Service.Update(c.GetString("userID"), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UploadPhotoHandler handles POST /api/pets/:id/photo.
func (h *PetHandler) UploadPhotoHandler(c *gin.Context) {
	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "photo storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file not provided"})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save file"})
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.Storage.UploadFile(c.Request.Context(), tempFilePath, "pets/photos")
	if err != nil {
		h.Logger.Error("photo upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to upload photo"})
		return
	}

	p, err := h.Service.SetPhotoURL(c.GetString("userID"), c.Param("id"), url)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteHandler handles DELETE /api/pets/:id.
func (h *PetHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.GetString("userID"), c.Param("id")); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pet deleted"})
}
