package handlers

import (
	"errors"
	"net/http"

	"admas/middleware"
	"admas/models"
	"admas/services/cars"
	"admas/services/form"
	"admas/utils"

	"github.com/gin-gonic/gin"
)

// CarHandler exposes car-rental search/booking plus the persisted car
// booking form cache.
type CarHandler struct {
	Client *cars.Client
	Store  form.KVStore
}

func NewCarHandler(client *cars.Client, store form.KVStore) *CarHandler {
	return &CarHandler{Client: client, Store: store}
}

// SearchCars queries the aggregator for vehicles.
func (h *CarHandler) SearchCars(c *gin.Context) {
	var params models.CarSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Client.Search(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, utils.ErrUnauthorized) {
			utils.JSONError(c, http.StatusBadGateway, "car search is misconfigured", "upstream rejected credentials")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "car search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// BookCar reserves a vehicle from a prior search and clears the cached car
// booking form on success.
func (h *CarHandler) BookCar(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	var params models.CarBookingParams
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Client.Book(c.Request.Context(), params)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "car booking failed", err.Error())
		return
	}

	// Booking succeeded; a failed cache clear just leaves a stale draft.
	_ = h.Store.Del(c.Request.Context(), form.CarFormCacheKey(userID))

	c.JSON(http.StatusOK, result)
}

// GetCarForm returns the user's cached car booking form, or an empty object
// when nothing usable is stored.
func (h *CarHandler) GetCarForm(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	cached := map[string]interface{}{}
	form.ReadJSON(c.Request.Context(), h.Store, form.CarFormCacheKey(userID), &cached)
	c.JSON(http.StatusOK, cached)
}

// SaveCarForm persists the user's in-progress car booking form.
func (h *CarHandler) SaveCarForm(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := form.WriteJSON(c.Request.Context(), h.Store, form.CarFormCacheKey(userID), body); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save car booking form", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
