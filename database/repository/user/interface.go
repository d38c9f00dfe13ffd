package userRepo

import "admas/models"

// UserRepository defines persistence operations for traveller profiles.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Delete(id string) error
}
