package handlers

import (
	"net/http"

	"pawhaven/models"
	"pawhaven/services/booking"
	"pawhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves caregiver-booking and grooming-booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler handles POST /api/caregiver-bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req struct {
		CaregiverID         string `json:"caregiverId" binding:"required"`
		Date                string `json:"date" binding:"required"`
		StartTime           string `json:"startTime" binding:"required"`
		EndTime             string `json:"endTime" binding:"required"`
		SpecialInstructions string `json:"specialInstructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	end, err := utils.ParseClock(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), booking.CreateBookingRequest{
		CaregiverID:         req.CaregiverID,
		UserID:              c.GetString("userID"),
		Date:                req.Date,
		Start:               start,
		End:                 end,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetUserBookingsHandler handles GET /api/caregiver-bookings/user.
func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetUserBookings(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetAllBookingsHandler handles GET /api/caregiver-bookings/admin.
func (h *BookingHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetAllBookings(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// SetStatusHandler handles PUT /api/caregiver-bookings/:id/status.
func (h *BookingHandler) SetStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	h.transition(c, c.Param("id"), req.Status)
}

// AcceptBookingHandler handles PUT /api/caregiver-bookings/:id/accepted.
func (h *BookingHandler) AcceptBookingHandler(c *gin.Context) {
	h.transition(c, c.Param("id"), models.BookingAccepted)
}

// RejectBookingHandler handles PUT /api/caregiver-bookings/:id/rejected.
func (h *BookingHandler) RejectBookingHandler(c *gin.Context) {
	h.transition(c, c.Param("id"), models.BookingRejected)
}

func (h *BookingHandler) transition(c *gin.Context, bookingID, status string) {
	b, err := h.Service.SetStatus(c.Request.Context(), bookingID, status, actorFromContext(c))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateGroomingHandler handles POST /api/grooming-bookings.
func (h *BookingHandler) CreateGroomingHandler(c *gin.Context) {
	var req struct {
		PetID   string `json:"petId" binding:"required"`
		Service string `json:"service" binding:"required"`
		Date    string `json:"date" binding:"required"`
		Slot    string `json:"slot" binding:"required"` // "HH:MM"
		Notes   string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	slot, err := utils.ParseClock(req.Slot)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	b, err := h.Service.CreateGroomingBooking(c.Request.Context(), booking.CreateGroomingRequest{
		UserID:  c.GetString("userID"),
		PetID:   req.PetID,
		Service: req.Service,
		Date:    req.Date,
		Slot:    slot,
		Notes:   req.Notes,
	})
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetUserGroomingHandler handles GET /api/grooming-bookings/user.
func (h *BookingHandler) GetUserGroomingHandler(c *gin.Context) {
	bookings, err := h.Service.GetUserGroomingBookings(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// SetGroomingStatusHandler handles POST /api/admin/bookings/:id/status.
func (h *BookingHandler) SetGroomingStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	b, err := h.Service.SetGroomingStatus(c.Request.Context(), c.Param("id"), req.Status, actorFromContext(c))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
