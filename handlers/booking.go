package handlers

import (
	"net/http"

	"admas/middleware"
	"admas/services/booking"
	"admas/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes persisted bookings and deposit payments.
type BookingHandler struct {
	Svc      booking.BookingService
	Payments *booking.PaymentHandler
}

func NewBookingHandler(svc booking.BookingService, payments *booking.PaymentHandler) *BookingHandler {
	return &BookingHandler{Svc: svc, Payments: payments}
}

// GetByReference fetches a booking by its human-facing reference.
func (h *BookingHandler) GetByReference(c *gin.Context) {
	b, err := h.Svc.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMine returns the authenticated user's booking history.
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	bookings, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CreatePaymentIntent creates a Stripe payment intent for a booking deposit.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Reference string `json:"reference" binding:"required"`
		Amount    int64  `json:"amount" binding:"required"`
		Currency  string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if _, err := h.Svc.GetByReference(c.Request.Context(), input.Reference); err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}

	intent, err := h.Payments.CreateDepositIntent(input.Amount, input.Currency, input.Reference)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clientSecret": intent.ClientSecret,
		"intentId":     intent.ID,
	})
}
