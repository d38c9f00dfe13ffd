package admin

import (
	"context"
	"testing"

	bookingRepo "admas/database/repository/booking"
	"admas/models"
	"admas/services/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *mockBookingRepo) GetByReference(reference string) (*models.Booking, error) {
	args := m.Called(reference)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingRepo) List(filter bookingRepo.ListFilter) ([]models.Booking, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *mockBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func TestListBookingsTotalNeverBelowShownRows(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := &DefaultAdminService{Repo: repo, Store: form.NewMemoryStore()}

	rows := []models.Booking{
		{Reference: "ADMAS-2610-ABC001"},
		{Reference: "ADMAS-2610-DEF002"},
		{Reference: "ADMAS-2610-GHI003"},
	}
	// The count degraded upstream and reports less than the rows returned.
	repo.On("List", bookingRepo.ListFilter{Query: "ADMAS", Page: 1, PageSize: 20}).
		Return(rows, int64(1), nil)

	page, err := svc.ListBookings(context.Background(), 1, 20, "ADMAS")
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	assert.Len(t, page.Bookings, 3)
	repo.AssertExpectations(t)
}

func TestListBookingsKeepsLargerUpstreamTotal(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := &DefaultAdminService{Repo: repo, Store: form.NewMemoryStore()}

	rows := []models.Booking{{Reference: "ADMAS-2610-ABC001"}}
	repo.On("List", bookingRepo.ListFilter{Page: 2, PageSize: 1}).
		Return(rows, int64(40), nil)

	page, err := svc.ListBookings(context.Background(), 2, 1, "")
	require.NoError(t, err)
	assert.Equal(t, 40, page.TotalCount)
	assert.Equal(t, 2, page.Page)
}

func TestListBookingsNormalizesPaging(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := &DefaultAdminService{Repo: repo, Store: form.NewMemoryStore()}

	repo.On("List", bookingRepo.ListFilter{Page: 1, PageSize: 20}).
		Return([]models.Booking{}, int64(0), nil)

	page, err := svc.ListBookings(context.Background(), 0, -5, "")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	repo.AssertExpectations(t)
}

func TestCancelBookingFlipsStatus(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := &DefaultAdminService{Repo: repo, Store: form.NewMemoryStore()}

	repo.On("GetByReference", "ADMAS-2610-ABC001").Return(&models.Booking{
		ID:        "b-1",
		Reference: "ADMAS-2610-ABC001",
		Status:    models.BookingConfirmed,
	}, nil)
	repo.On("UpdateStatus", "b-1", models.BookingCancelled).Return(nil)

	require.NoError(t, svc.CancelBooking(context.Background(), "ADMAS-2610-ABC001"))
	repo.AssertExpectations(t)
}

func TestCancelBookingUnknownReference(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := &DefaultAdminService{Repo: repo, Store: form.NewMemoryStore()}

	repo.On("GetByReference", "ADMAS-0000-XXX000").Return(nil, assert.AnError)

	err := svc.CancelBooking(context.Background(), "ADMAS-0000-XXX000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestCancelBookingAlreadyCancelledIsNoOp(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := &DefaultAdminService{Repo: repo, Store: form.NewMemoryStore()}

	repo.On("GetByReference", "ADMAS-2610-ABC001").Return(&models.Booking{
		ID:        "b-1",
		Reference: "ADMAS-2610-ABC001",
		Status:    models.BookingCancelled,
	}, nil)

	require.NoError(t, svc.CancelBooking(context.Background(), "ADMAS-2610-ABC001"))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestViewPrefsRoundTrip(t *testing.T) {
	svc := &DefaultAdminService{Store: form.NewMemoryStore()}
	ctx := context.Background()

	require.NoError(t, svc.SaveViewPrefs(ctx, "admin-1", ViewPrefs{ViewMode: "cards", PageSize: 50}))

	prefs := svc.GetViewPrefs(ctx, "admin-1")
	assert.Equal(t, "cards", prefs.ViewMode)
	assert.Equal(t, 50, prefs.PageSize)
}

func TestViewPrefsDefaultsWhenAbsentOrCorrupt(t *testing.T) {
	store := form.NewMemoryStore()
	svc := &DefaultAdminService{Store: store}
	ctx := context.Background()

	assert.Equal(t, DefaultViewPrefs(), svc.GetViewPrefs(ctx, "admin-1"))

	require.NoError(t, store.Set(ctx, form.AdminPrefsKey("admin-2"), "{bad", 0))
	assert.Equal(t, DefaultViewPrefs(), svc.GetViewPrefs(ctx, "admin-2"))

	// A stored record with out-of-range values is normalized on read.
	require.NoError(t, store.Set(ctx, form.AdminPrefsKey("admin-3"), `{"viewMode": "", "pageSize": 0}`, 0))
	assert.Equal(t, DefaultViewPrefs(), svc.GetViewPrefs(ctx, "admin-3"))
}
