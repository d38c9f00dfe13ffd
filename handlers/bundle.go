package handlers

import (
	userRepo "admas/database/repository/user"
)

// HandlerBundle aggregates every handler group plus the repositories the
// auth middleware needs. Routes are registered from this bundle.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Form    *FormHandler
	Cars    *CarHandler
	Booking *BookingHandler
	Quiz    *QuizHandler
	Admin   *AdminHandler
	User    *UserHandler
}
