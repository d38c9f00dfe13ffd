// File: services/quiz/service.go
package quiz

import (
	"context"
	"fmt"

	"admas/models"
	"admas/services/form"
)

// QuizService stores travel-preference answers and derives recommendations.
type QuizService interface {
	GetQuestions() []models.QuizQuestion
	SaveAnswers(ctx context.Context, userID string, answers models.QuizAnswers) error
	GetAnswers(ctx context.Context, userID string) models.QuizAnswers
	Recommend(ctx context.Context, userID string) (*models.QuizRecommendation, error)
}

// DefaultQuizService persists answers through the preference key-value store
// with the same defensive parse-to-defaults contract as the route cache.
type DefaultQuizService struct {
	Store form.KVStore
}

func (s *DefaultQuizService) GetQuestions() []models.QuizQuestion {
	return Questions
}

// SaveAnswers merges the given answers into the stored record.
func (s *DefaultQuizService) SaveAnswers(ctx context.Context, userID string, answers models.QuizAnswers) error {
	existing := s.GetAnswers(ctx, userID)
	for id, answer := range answers {
		existing[id] = answer
	}
	if err := form.WriteJSON(ctx, s.Store, form.QuizAnswersKey(userID), existing); err != nil {
		return fmt.Errorf("failed to save quiz answers: %w", err)
	}
	return nil
}

// GetAnswers returns the stored answers, or an empty map when the record is
// absent or corrupt. It never fails.
func (s *DefaultQuizService) GetAnswers(ctx context.Context, userID string) models.QuizAnswers {
	answers := models.QuizAnswers{}
	form.ReadJSON(ctx, s.Store, form.QuizAnswersKey(userID), &answers)
	if answers == nil {
		answers = models.QuizAnswers{}
	}
	return answers
}

// Recommend maps the stored answers to a destination shortlist.
func (s *DefaultQuizService) Recommend(ctx context.Context, userID string) (*models.QuizRecommendation, error) {
	answers := s.GetAnswers(ctx, userID)
	if len(answers) == 0 {
		return nil, fmt.Errorf("no quiz answers recorded for user %s", userID)
	}

	rec := &models.QuizRecommendation{TravelStyle: answers["style"]}
	if dests, ok := destinationsByAnswer[answers["scenery"]]; ok {
		rec.Destinations = dests
	} else {
		rec.Destinations = []string{"Addis Ababa", "Lalibela", "Lake Tana"}
	}
	return rec, nil
}
