package models

import "time"

// BookingStatus is the lifecycle state of a persisted booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the persisted booking document. It carries the full draft the
// user submitted plus the generated reference of the form ADMAS-YYMM-XXXNNN.
type Booking struct {
	ID        string        `bson:"id" json:"id"`
	Reference string        `bson:"reference" json:"reference"`
	UserID    string        `bson:"userId" json:"userId"`
	Draft     BookingDraft  `bson:"draft" json:"draft"`
	Status    BookingStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// ConfirmationPayload is the queued notification task payload for a
// freshly confirmed booking.
type ConfirmationPayload struct {
	BookingID string `json:"bookingId"`
	Reference string `json:"reference"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}
