// File: services/user/service.go
package user

import (
	"context"
	"fmt"
	"time"

	userRepo "admas/database/repository/user"
	"admas/models"
	"admas/services/form"
	"admas/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// UserService manages traveller accounts and backs the form auto-fill bridge.
type UserService interface {
	Register(ctx context.Context, reg models.UserRegistration) (*models.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	ProfileProvider() form.ProfileProvider
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account and returns the user with a signed token.
func (s *DefaultUserService) Register(ctx context.Context, reg models.UserRegistration) (*models.User, string, error) {
	if existing, _ := s.Repo.GetByEmail(reg.Email); existing != nil {
		return nil, "", fmt.Errorf("an account with email %s already exists", reg.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		FullName:     reg.FullName,
		Email:        reg.Email,
		Phone:        reg.Phone,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return u, token, nil
}

// Authenticate verifies credentials and returns the user with a signed token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return u, token, nil
}

// GetByID fetches a user profile.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// UpdateProfile persists profile changes.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, user *models.User) error {
	return s.Repo.Update(user)
}

// ProfileProvider adapts the user repository into the form engine's
// auto-fill source.
func (s *DefaultUserService) ProfileProvider() form.ProfileProvider {
	return func(ctx context.Context, userID string) (form.ProfileFields, error) {
		u, err := s.Repo.GetByID(userID)
		if err != nil {
			return form.ProfileFields{}, err
		}
		return form.ProfileFields{
			FullName:       u.FullName,
			Email:          u.Email,
			Phone:          u.Phone,
			Nationality:    u.Nationality,
			PassportNumber: u.PassportNumber,
			PassportExpiry: u.PassportExpiry,
			DateOfBirth:    u.DateOfBirth,
		}, nil
	}
}
