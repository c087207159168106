package handlers

import (
	"net/http"

	"pawhaven/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves product catalog and program listing endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Service: svc, Logger: logger}
}

// ListProductsHandler handles GET /api/products.
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.Service.ListProducts(c.Query("category"))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductHandler handles GET /api/products/:id.
func (h *CatalogHandler) GetProductHandler(c *gin.Context) {
	p, err := h.Service.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProductHandler handles POST /api/admin/products.
func (h *CatalogHandler) CreateProductHandler(c *gin.Context) {
	var input catalog.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.Service.CreateProduct(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProductHandler handles PUT /api/admin/products/:id.
func (h *CatalogHandler) UpdateProductHandler(c *gin.Context) {
	var input catalog.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.Service.UpdateProduct(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProductHandler handles DELETE /api/admin/products/:id.
func (h *CatalogHandler) DeleteProductHandler(c *gin.Context) {
	if err := h.Service.DeleteProduct(c.Param("id")); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// ListProgramsHandler handles GET /api/programs.
func (h *CatalogHandler) ListProgramsHandler(c *gin.Context) {
	programs, err := h.Service.ListPrograms(c.Query("kind"))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, programs)
}

// GetProgramHandler handles GET /api/programs/:id.
func (h *CatalogHandler) GetProgramHandler(c *gin.Context) {
	p, err := h.Service.GetProgram(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProgramHandler handles POST /api/admin/programs.
func (h *CatalogHandler) CreateProgramHandler(c *gin.Context) {
	var input catalog.ProgramInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.Service.CreateProgram(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProgramHandler handles PUT /api/admin/programs/:id.
func (h *CatalogHandler) UpdateProgramHandler(c *gin.Context) {
	var input catalog.ProgramInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.Service.UpdateProgram(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProgramHandler handles DELETE /api/admin/programs/:id.
func (h *CatalogHandler) DeleteProgramHandler(c *gin.Context) {
	if err := h.Service.DeleteProgram(c.Param("id")); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "program deleted"})
}
