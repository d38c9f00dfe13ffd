package bookingRepo

import "admas/models"

// ListFilter narrows and pages a booking listing.
type ListFilter struct {
	Query    string
	Page     int
	PageSize int
}

// BookingRepository defines persistence operations for booking documents.
// Create writes the canonical document and mirrors it under the per-user
// collection in the same call.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByReference(reference string) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	List(filter ListFilter) ([]models.Booking, int64, error)
	UpdateStatus(id string, status models.BookingStatus) error
}
