package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"admas/middleware"
	"admas/services/admin"
	"admas/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin booking list and view preferences.
type AdminHandler struct {
	Svc admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

// ListBookings returns a filtered page of bookings. Page size defaults to
// the admin's stored preference.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserIDKey)
	prefs := h.Svc.GetViewPrefs(c.Request.Context(), adminID)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(prefs.PageSize)))
	query := c.Query("q")

	result, err := h.Svc.ListBookings(c.Request.Context(), page, pageSize, query)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelBooking marks a booking as cancelled.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	reference := c.Param("reference")

	if err := h.Svc.CancelBooking(c.Request.Context(), reference); err != nil {
		if errors.Is(err, admin.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "reference": reference})
}

// GetViewPrefs returns the admin's stored list preferences.
func (h *AdminHandler) GetViewPrefs(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserIDKey)
	c.JSON(http.StatusOK, h.Svc.GetViewPrefs(c.Request.Context(), adminID))
}

// SaveViewPrefs persists the admin's list preferences.
func (h *AdminHandler) SaveViewPrefs(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserIDKey)

	var prefs admin.ViewPrefs
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Svc.SaveViewPrefs(c.Request.Context(), adminID, prefs); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save view preferences", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
