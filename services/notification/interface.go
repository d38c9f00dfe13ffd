package notification

import (
	"context"
	"fmt"

	userRepo "admas/database/repository/user"
	"admas/models"
	"admas/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService delivers booking confirmations to travellers.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// DefaultNotificationService is the production implementation: an email to
// the booking contact plus an FCM push when the user has a device token.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

func NewDefaultNotificationService(users userRepo.UserRepository) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{Users: users}, nil
}

// SendBookingConfirmation sends the confirmation email and, when possible,
// a push notification. Push failures do not fail the task once the email is
// out.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	subject := fmt.Sprintf("Your Admas Travel booking %s is confirmed", payload.Reference)
	body := fmt.Sprintf("Hello %s, your booking %s has been confirmed. Keep this reference for check-in.",
		payload.Name, payload.Reference)

	if err := sendEmail(payload.Email, subject, body); err != nil {
		return fmt.Errorf("SendBookingConfirmation: failed to send email for %s: %w", payload.Reference, err)
	}

	if err := s.sendPush(ctx, payload); err != nil {
		utils.GetLogger().Warn("booking confirmation push failed",
			zap.String("reference", payload.Reference), zap.Error(err))
	}
	return nil
}

func (s *DefaultNotificationService) sendPush(ctx context.Context, payload models.ConfirmationPayload) error {
	if utils.FCMClient == nil {
		return nil
	}

	u, err := s.Users.GetByID(payload.UserID)
	if err != nil {
		return fmt.Errorf("could not find user %s: %w", payload.UserID, err)
	}
	if u.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: "Booking confirmed",
			Body:  fmt.Sprintf("Your booking %s is confirmed.", payload.Reference),
		},
		Data: map[string]string{
			"bookingId": payload.BookingID,
			"reference": payload.Reference,
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

// sendEmail hands the message to the mail provider. Replace the body of this
// function with the actual transactional-mail integration; for now the
// outgoing message is logged.
func sendEmail(to, subject, body string) error {
	utils.GetLogger().Sugar().Infof("Sending email to %s: %s - %s", to, subject, body)
	return nil
}
