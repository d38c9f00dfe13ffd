// File: services/admin/service.go
package admin

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "admas/database/repository/booking"
	"admas/models"
	"admas/services/form"
)

// ErrBookingNotFound indicates the reference matched no booking.
var ErrBookingNotFound = errors.New("booking not found")

// BookingPage is one page of the admin booking list.
type BookingPage struct {
	Bookings   []models.Booking `json:"bookings"`
	TotalCount int              `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}

// ViewPrefs are the admin's persisted list preferences.
type ViewPrefs struct {
	ViewMode string `json:"viewMode"` // "table" or "cards"
	PageSize int    `json:"pageSize"`
}

// DefaultViewPrefs returns the preferences used when none are stored.
func DefaultViewPrefs() ViewPrefs {
	return ViewPrefs{ViewMode: "table", PageSize: 20}
}

// AdminService lists bookings, cancels them, and manages admin view
// preferences.
type AdminService interface {
	ListBookings(ctx context.Context, page, pageSize int, query string) (*BookingPage, error)
	CancelBooking(ctx context.Context, reference string) error
	GetViewPrefs(ctx context.Context, adminID string) ViewPrefs
	SaveViewPrefs(ctx context.Context, adminID string, prefs ViewPrefs) error
}

type DefaultAdminService struct {
	Repo  bookingRepo.BookingRepository
	Store form.KVStore
}

// ListBookings returns a filtered page of bookings. The reported total is
// never smaller than the number of rows being shown: the repository count is
// coerced with max(len(page), total), which also covers an absent upstream
// total degrading to the page length.
func (s *DefaultAdminService) ListBookings(ctx context.Context, page, pageSize int, query string) (*BookingPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultViewPrefs().PageSize
	}

	bookings, total, err := s.Repo.List(bookingRepo.ListFilter{
		Query:    query,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	totalCount := int(total)
	if len(bookings) > totalCount {
		totalCount = len(bookings)
	}

	return &BookingPage{
		Bookings:   bookings,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// CancelBooking flips a booking to cancelled by its human-facing reference.
// Cancelling an already-cancelled booking is a no-op.
func (s *DefaultAdminService) CancelBooking(ctx context.Context, reference string) error {
	b, err := s.Repo.GetByReference(reference)
	if err != nil {
		return ErrBookingNotFound
	}
	if b.Status == models.BookingCancelled {
		return nil
	}
	if err := s.Repo.UpdateStatus(b.ID, models.BookingCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", reference, err)
	}
	return nil
}

// GetViewPrefs returns the admin's stored preferences, or defaults when the
// record is absent or corrupt.
func (s *DefaultAdminService) GetViewPrefs(ctx context.Context, adminID string) ViewPrefs {
	prefs := DefaultViewPrefs()
	form.ReadJSON(ctx, s.Store, form.AdminPrefsKey(adminID), &prefs)
	if prefs.PageSize < 1 {
		prefs.PageSize = DefaultViewPrefs().PageSize
	}
	if prefs.ViewMode == "" {
		prefs.ViewMode = DefaultViewPrefs().ViewMode
	}
	return prefs
}

// SaveViewPrefs persists the admin's preferences.
func (s *DefaultAdminService) SaveViewPrefs(ctx context.Context, adminID string, prefs ViewPrefs) error {
	if err := form.WriteJSON(ctx, s.Store, form.AdminPrefsKey(adminID), prefs); err != nil {
		return fmt.Errorf("failed to save admin view preferences: %w", err)
	}
	return nil
}
