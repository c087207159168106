package handlers

import (
	"net/http"

	"pawhaven/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
	Logger  *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// CreateIntentHandler handles POST /api/payments/intent.
func (h *PaymentHandler) CreateIntentHandler(c *gin.Context) {
	var req payment.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.Service.CreateIntent(c.GetString("userID"), req)
	if err != nil {
		h.Logger.Error("payment intent failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// RecordHandler handles POST /api/payments.
func (h *PaymentHandler) RecordHandler(c *gin.Context) {
	var req payment.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.Service.RecordPayment(c.GetString("userID"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListUserHandler handles GET /api/payments/user.
func (h *PaymentHandler) ListUserHandler(c *gin.Context) {
	payments, err := h.Service.ListByUser(c.GetString("userID"))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// ListAllHandler handles GET /api/admin/payments.
func (h *PaymentHandler) ListAllHandler(c *gin.Context) {
	payments, err := h.Service.ListAll()
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
