package handlers

import (
	"net/http"

	"admas/middleware"
	"admas/models"
	"admas/services/user"
	"admas/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account registration, sign-in, and profile management.
type UserHandler struct {
	Svc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// Register creates an account.
func (h *UserHandler) Register(c *gin.Context) {
	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, token, err := h.Svc.Register(c.Request.Context(), reg)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// Login authenticates and returns a signed token.
func (h *UserHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, token, err := h.Svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// Profile returns the authenticated user's profile.
func (h *UserHandler) Profile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	u, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile persists profile changes for the authenticated user.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
		return
	}

	// Only profile fields are editable here; credentials stay untouched.
	if input.FullName != "" {
		u.FullName = input.FullName
	}
	if input.Phone != "" {
		u.Phone = input.Phone
	}
	if input.Nationality != "" {
		u.Nationality = input.Nationality
	}
	if input.PassportNumber != "" {
		u.PassportNumber = input.PassportNumber
	}
	if input.PassportExpiry != "" {
		u.PassportExpiry = input.PassportExpiry
	}
	if input.DateOfBirth != "" {
		u.DateOfBirth = input.DateOfBirth
	}

	if err := h.Svc.UpdateProfile(c.Request.Context(), u); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
