// File: services/quiz/questions.go
package quiz

import "admas/models"

// Questions is the travel-preference quiz. IDs are stable; answers are
// persisted keyed by question ID.
var Questions = []models.QuizQuestion{
	{
		ID:       "climate",
		Question: "What kind of weather do you enjoy most?",
		Type:     "single_choice",
		Options:  []string{"Warm and sunny", "Cool and crisp", "I don't mind"},
		Required: true,
		Category: "destination",
	},
	{
		ID:       "scenery",
		Question: "Which scenery appeals to you?",
		Type:     "single_choice",
		Options:  []string{"Mountains and highlands", "Historic cities", "Lakes and valleys", "Wildlife and safari"},
		Required: true,
		Category: "destination",
	},
	{
		ID:       "budget",
		Question: "What is your budget per person?",
		Type:     "single_choice",
		Options:  []string{"Under $1,000", "$1,000 – $2,500", "$2,500 – $5,000", "Above $5,000"},
		Required: true,
		Category: "budget",
	},
	{
		ID:       "activities",
		Question: "What do you want to spend your days doing?",
		Type:     "single_choice",
		Options:  []string{"Hiking and trekking", "Museums and culture", "Food and markets", "Relaxing"},
		Required: true,
		Category: "activities",
	},
	{
		ID:       "style",
		Question: "How do you like to travel?",
		Type:     "single_choice",
		Options:  []string{"Guided tours", "Independent exploring", "A bit of both"},
		Required: false,
		Category: "travel_style",
	},
}

// destinationsByAnswer maps scenery answers to destination shortlists.
var destinationsByAnswer = map[string][]string{
	"Mountains and highlands": {"Simien Mountains", "Bale Mountains", "Lalibela"},
	"Historic cities":         {"Axum", "Gondar", "Harar"},
	"Lakes and valleys":       {"Lake Tana", "Omo Valley", "Bahir Dar"},
	"Wildlife and safari":     {"Awash National Park", "Gambella", "Nechisar"},
}
