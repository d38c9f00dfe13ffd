// File: database/repository/booking/crud.go
package bookingRepo

import (
	"fmt"
	"time"

	"admas/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking document and mirrors it under user_bookings.
// A mirror failure after the canonical insert is surfaced so the caller can
// report the booking as not confirmed.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	if _, err := r.mirrorColl.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to mirror booking for user %s: %w", b.UserID, err)
	}
	return nil
}

// UpdateStatus sets the status on both the canonical and mirrored documents.
func (r *MongoBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	if _, err := r.mirrorColl.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update mirrored booking with id %s: %w", id, err)
	}
	return nil
}
