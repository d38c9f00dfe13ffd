package handlers

import (
	"net/http"

	"admas/middleware"
	"admas/models"
	"admas/services/quiz"
	"admas/utils"

	"github.com/gin-gonic/gin"
)

// QuizHandler exposes the travel-preference quiz.
type QuizHandler struct {
	Svc quiz.QuizService
}

func NewQuizHandler(svc quiz.QuizService) *QuizHandler {
	return &QuizHandler{Svc: svc}
}

// GetQuestions returns the quiz questions.
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.Svc.GetQuestions()})
}

// SaveAnswers merges the submitted answers into the stored record.
func (h *QuizHandler) SaveAnswers(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var answers models.QuizAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Svc.SaveAnswers(c.Request.Context(), userID, answers); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save quiz answers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// GetAnswers returns the stored answers (empty when nothing usable is stored).
func (h *QuizHandler) GetAnswers(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	c.JSON(http.StatusOK, gin.H{"answers": h.Svc.GetAnswers(c.Request.Context(), userID)})
}

// Recommend derives a destination shortlist from the stored answers.
func (h *QuizHandler) Recommend(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	rec, err := h.Svc.Recommend(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "no quiz answers recorded", err.Error())
		return
	}
	c.JSON(http.StatusOK, rec)
}
