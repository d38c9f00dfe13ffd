package user

import (
	"context"
	"testing"

	"admas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestRegisterCreatesUserAndToken(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", "abebe@example.com").Return(nil, assert.AnError)
	repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	u, token, err := svc.Register(context.Background(), models.UserRegistration{
		FullName: "Abebe Bikila",
		Email:    "abebe@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret-password", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-password")))
	repo.AssertExpectations(t)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", "abebe@example.com").Return(&models.User{ID: "u-1"}, nil)

	_, _, err := svc.Register(context.Background(), models.UserRegistration{
		FullName: "Abebe Bikila",
		Email:    "abebe@example.com",
		Password: "secret-password",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}
	repo.On("GetByEmail", "abebe@example.com").Return(&models.User{
		ID:           "u-1",
		Email:        "abebe@example.com",
		PasswordHash: string(hash),
	}, nil)

	u, token, err := svc.Authenticate(context.Background(), "abebe@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Authenticate(context.Background(), "abebe@example.com", "wrong-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestProfileProviderMapsFields(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}
	repo.On("GetByID", "u-1").Return(&models.User{
		ID:             "u-1",
		FullName:       "Abebe Bikila",
		Email:          "abebe@example.com",
		Phone:          "+251911000000",
		Nationality:    "Ethiopian",
		PassportNumber: "EP123456",
		PassportExpiry: "2030-01-01",
		DateOfBirth:    "1990-05-05",
	}, nil)

	provider := svc.ProfileProvider()
	fields, err := provider(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, "Abebe Bikila", fields.FullName)
	assert.Equal(t, "abebe@example.com", fields.Email)
	assert.Equal(t, "+251911000000", fields.Phone)
	assert.Equal(t, "Ethiopian", fields.Nationality)
	assert.Equal(t, "EP123456", fields.PassportNumber)
	assert.Equal(t, "2030-01-01", fields.PassportExpiry)
	assert.Equal(t, "1990-05-05", fields.DateOfBirth)
}

func TestProfileProviderPropagatesRepoError(t *testing.T) {
	repo := new(mockUserRepo)
	svc := &DefaultUserService{Repo: repo}
	repo.On("GetByID", "missing").Return(nil, assert.AnError)

	provider := svc.ProfileProvider()
	_, err := provider(context.Background(), "missing")
	assert.Error(t, err)
}
