package handlers

import (
	"net/http"

	"staybook/middleware"
	"staybook/models"
	"staybook/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves payment intents, booking commits and the
// "my bookings" view.
type BookingHandler struct {
	Svc booking.BookingService
}

// NewBookingHandler wires the booking endpoints.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreatePaymentIntent handles POST /api/hotels/:hotelId/bookings/payment-intent.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		NumberOfNights int `json:"numberOfNights"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, &models.ValidationError{Field: "numberOfNights", Reason: "invalid request body"})
		return
	}

	resp, err := h.Svc.CreatePaymentIntent(c.Request.Context(), c.Param("hotelId"), userID, input.NumberOfNights)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CommitBooking handles POST /api/hotels/:hotelId/bookings.
func (h *BookingHandler) CommitBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		PaymentIntentID string `json:"paymentIntentId"`
		models.BookingDetails
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, &models.ValidationError{Field: "bookingDetails", Reason: err.Error()})
		return
	}

	committed, err := h.Svc.CommitBooking(c.Request.Context(), c.Param("hotelId"), userID, input.PaymentIntentID, input.BookingDetails)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, committed)
}

// MyBookings handles GET /api/my-bookings.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	hotels, err := h.Svc.MyBookings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}
