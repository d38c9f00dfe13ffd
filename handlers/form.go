package handlers

import (
	"errors"
	"net/http"

	"admas/middleware"
	"admas/models"
	"admas/services/flights"
	"admas/services/form"
	"admas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormHandler exposes the booking form state machine over HTTP.
type FormHandler struct {
	Svc     form.FormService
	Flights *flights.Client
	Logger  *zap.Logger
}

func NewFormHandler(svc form.FormService, flightsClient *flights.Client, logger *zap.Logger) *FormHandler {
	return &FormHandler{Svc: svc, Flights: flightsClient, Logger: logger}
}

// StartSession creates a new form session seeded from the route cache.
func (h *FormHandler) StartSession(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	sess, err := h.Svc.Start(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start form session", err.Error())
		return
	}
	c.JSON(http.StatusOK, sess)
}

// GetSession returns the current session state.
func (h *FormHandler) GetSession(c *gin.Context) {
	sess, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// UpdateSession shallow-merges a draft patch into the session.
func (h *FormHandler) UpdateSession(c *gin.Context) {
	var patch models.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Svc.Update(c.Request.Context(), c.Param("sessionID"), patch)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// NextStep validates the current step and advances on success. The response
// always carries the session; a non-empty error map with an unchanged step
// signals blocked advancement.
func (h *FormHandler) NextStep(c *gin.Context) {
	sess, err := h.Svc.Next(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// PrevStep retreats one step unconditionally.
func (h *FormHandler) PrevStep(c *gin.Context) {
	sess, err := h.Svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// AutoFillSession pulls profile fields into the draft (at most once per session).
func (h *FormHandler) AutoFillSession(c *gin.Context) {
	sess, err := h.Svc.AutoFill(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SubmitSession finalizes the booking from the review step.
func (h *FormHandler) SubmitSession(c *gin.Context) {
	booking, err := h.Svc.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, form.ErrNotReviewStep) {
			utils.JSONError(c, http.StatusConflict, "submission is only possible from the review step", "")
			return
		}
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":   booking,
		"reference": booking.Reference,
	})
}

// CancelSession discards the session without submitting.
func (h *FormHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel form session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// SearchFlights runs a flight search under the session's current search
// generation, discarding results that arrive after a newer search began.
func (h *FormHandler) SearchFlights(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Params flights.SearchParams  `json:"params"`
		Filter flights.FilterOptions `json:"filter"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	generation, err := h.Svc.BeginSearch(ctx, sessionID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	result, err := h.Flights.Search(ctx, input.Params)
	if err != nil {
		if errors.Is(err, utils.ErrUnauthorized) {
			utils.JSONError(c, http.StatusBadGateway, "flight search is misconfigured", "upstream rejected credentials")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "flight search failed", err.Error())
		return
	}

	result = flights.Filter(result, input.Filter)
	applied, err := h.Svc.ApplyFlightResults(ctx, sessionID, generation, result)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	if !applied {
		h.Logger.Debug("flight search superseded before results arrived",
			zap.String("sessionId", sessionID))
	}

	c.JSON(http.StatusOK, gin.H{
		"flights":    result.Flights,
		"totalCount": result.TotalCount,
		"applied":    applied,
	})
}

func (h *FormHandler) respondSessionError(c *gin.Context, err error) {
	if errors.Is(err, form.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "form session not found or expired", "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "form session operation failed", err.Error())
}
