// File: services/booking/service.go
package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "admas/database/repository/booking"
	"admas/models"
	"admas/services/tasks"
	"admas/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingService persists submitted drafts and fans out confirmation work.
type BookingService interface {
	Submit(ctx context.Context, userID string, draft models.BookingDraft) (*models.Booking, error)
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation. The queue client
// is optional; without it confirmations are simply not enqueued.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Queue *asynq.Client
	Refs  ReferenceGenerator
}

// Submit writes the booking document with a freshly generated reference and
// enqueues the confirmation notification. A persistence failure is returned
// as-is so the caller keeps the draft for retry; nothing is ever stored as
// confirmed on failure.
func (s *DefaultBookingService) Submit(ctx context.Context, userID string, draft models.BookingDraft) (*models.Booking, error) {
	record := &models.Booking{
		ID:        uuid.New().String(),
		Reference: s.Refs.Next(time.Now()),
		UserID:    userID,
		Draft:     draft,
		Status:    models.BookingConfirmed,
	}

	if err := s.Repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.enqueueConfirmation(record)
	return record, nil
}

func (s *DefaultBookingService) enqueueConfirmation(b *models.Booking) {
	if s.Queue == nil {
		return
	}

	payload := models.ConfirmationPayload{
		BookingID: b.ID,
		Reference: b.Reference,
		UserID:    b.UserID,
		Email:     b.Draft.ContactEmail,
		Name:      b.Draft.ContactName,
	}
	task, opts, err := tasks.NewConfirmationTask(payload)
	if err != nil {
		utils.GetLogger().Error("failed to build confirmation task",
			zap.String("reference", b.Reference), zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		// The booking is already confirmed; notification delivery is best effort.
		utils.GetLogger().Error("failed to enqueue confirmation task",
			zap.String("reference", b.Reference), zap.Error(err))
	}
}

// GetByReference looks up a booking by its human-facing reference.
func (s *DefaultBookingService) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	return s.Repo.GetByReference(reference)
}

// ListByUser returns the user's booking history, newest first.
func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(userID)
}
