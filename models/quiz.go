package models

// QuizQuestion is one travel-preference quiz question.
type QuizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"` // "single_choice", "multiple_choice", "text"
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
	Category string   `json:"category"` // "destination", "budget", "activities", "travel_style"
}

// QuizAnswers maps question IDs to the user's chosen answers.
type QuizAnswers map[string]string

// QuizRecommendation is a destination shortlist derived from quiz answers.
type QuizRecommendation struct {
	Destinations []string `json:"destinations"`
	TravelStyle  string   `json:"travelStyle,omitempty"`
}
