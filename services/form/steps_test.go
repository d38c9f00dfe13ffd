package form

import (
	"context"
	"fmt"
	"testing"

	"admas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *DefaultFormService {
	return &DefaultFormService{
		Store:      NewMemoryStore(),
		RouteCache: NewRouteCacheAdapter(NewMemoryStore()),
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func tripPtr(t models.TripType) *models.TripType { return &t }

func completeTripPatch() models.DraftPatch {
	return models.DraftPatch{
		TripType:      tripPtr(models.TripRoundTrip),
		Origin:        &models.Airport{Name: "Bole International", City: "Addis Ababa", Country: "Ethiopia", Code: "ADD"},
		Destination:   &models.Airport{Name: "Jomo Kenyatta International", City: "Nairobi", Country: "Kenya", Code: "NBO"},
		DepartureDate: strPtr("2026-10-01"),
		ReturnDate:    strPtr("2026-10-15"),
	}
}

func fillPassengers(t *testing.T, svc *DefaultFormService, sessionID string) {
	t.Helper()
	sess, err := svc.Get(context.Background(), sessionID)
	require.NoError(t, err)

	passengers := make([]models.PassengerRecord, len(sess.Draft.Passengers))
	for i, p := range sess.Draft.Passengers {
		passengers[i] = models.PassengerRecord{
			Type:           p.Type,
			FullName:       fmt.Sprintf("Passenger %d", i+1),
			DateOfBirth:    "1990-01-01",
			PassportNumber: fmt.Sprintf("EP%06d", i+1),
			PassportExpiry: "2030-01-01",
			Nationality:    "Ethiopian",
		}
	}
	_, err = svc.Update(context.Background(), sessionID, models.DraftPatch{Passengers: passengers})
	require.NoError(t, err)
}

func TestStartSessionBeginsOnTripStep(t *testing.T) {
	svc := newTestService()

	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, StepTrip, sess.Step)
	assert.Equal(t, AutoFillUninitialized, sess.AutoFill)
	assert.Equal(t, 1, sess.Draft.Adults)
	assert.Len(t, sess.Draft.Passengers, 1)
}

func TestNextRejectsIncompleteTripStep(t *testing.T) {
	svc := newTestService()
	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)

	sess, err = svc.Next(context.Background(), sess.SessionID)
	require.NoError(t, err)

	assert.Equal(t, StepTrip, sess.Step, "step must not change when validation fails")
	assert.NotEmpty(t, sess.Errors)
	assert.Contains(t, sess.Errors, "origin")
	assert.Contains(t, sess.Errors, "destination")
	assert.Contains(t, sess.Errors, "departureDate")
}

func TestNextRequiresReturnDateForRoundTrip(t *testing.T) {
	svc := newTestService()
	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)

	patch := completeTripPatch()
	patch.ReturnDate = nil
	_, err = svc.Update(context.Background(), sess.SessionID, patch)
	require.NoError(t, err)

	sess, err = svc.Next(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepTrip, sess.Step)
	assert.Contains(t, sess.Errors, "returnDate")

	// One-way trips do not need a return date.
	_, err = svc.Update(context.Background(), sess.SessionID, models.DraftPatch{TripType: tripPtr(models.TripOneWay)})
	require.NoError(t, err)
	sess, err = svc.Next(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepPassengers, sess.Step)
}

func TestNextAdvancesThroughAllSteps(t *testing.T) {
	svc := newTestService()
	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Update(ctx, sess.SessionID, completeTripPatch())
	require.NoError(t, err)

	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	require.Equal(t, StepPassengers, sess.Step)

	fillPassengers(t, svc, sess.SessionID)
	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	require.Equal(t, StepContact, sess.Step)

	_, err = svc.Update(ctx, sess.SessionID, models.DraftPatch{
		ContactName:  strPtr("Abebe Bikila"),
		ContactEmail: strPtr("abebe@example.com"),
		ContactPhone: strPtr("+251911000000"),
	})
	require.NoError(t, err)

	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	require.Equal(t, StepReview, sess.Step)

	// Review is terminal for Next.
	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepReview, sess.Step)
}

func TestNextBlocksOnIncompletePassengerRecords(t *testing.T) {
	svc := newTestService()
	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Update(ctx, sess.SessionID, completeTripPatch())
	require.NoError(t, err)
	_, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)

	// Name only; the other four document fields are still empty.
	_, err = svc.Update(ctx, sess.SessionID, models.DraftPatch{
		Passengers: []models.PassengerRecord{{Type: models.PassengerAdult, FullName: "Abebe Bikila"}},
	})
	require.NoError(t, err)

	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepPassengers, sess.Step)
	assert.Contains(t, sess.Errors, "passengers.0.dateOfBirth")
	assert.Contains(t, sess.Errors, "passengers.0.nationality")
	assert.Contains(t, sess.Errors, "passengers.0.passportNumber")
	assert.Contains(t, sess.Errors, "passengers.0.passportExpiry")
	assert.NotContains(t, sess.Errors, "passengers.0.fullName")
}

func TestBackAlwaysSucceeds(t *testing.T) {
	svc := newTestService()
	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Update(ctx, sess.SessionID, completeTripPatch())
	require.NoError(t, err)
	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	require.Equal(t, StepPassengers, sess.Step)

	// Back retreats regardless of the (invalid) passenger step.
	sess, err = svc.Back(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepTrip, sess.Step)

	// Back on the first step is a no-op.
	sess, err = svc.Back(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepTrip, sess.Step)
}

func TestUpdateClearsOnlyTouchedErrorKeys(t *testing.T) {
	svc := newTestService()
	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)
	ctx := context.Background()

	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	require.Contains(t, sess.Errors, "origin")
	require.Contains(t, sess.Errors, "departureDate")

	sess, err = svc.Update(ctx, sess.SessionID, models.DraftPatch{
		Origin: &models.Airport{Name: "Bole International", City: "Addis Ababa", Country: "Ethiopia", Code: "ADD"},
	})
	require.NoError(t, err)

	assert.NotContains(t, sess.Errors, "origin")
	assert.Contains(t, sess.Errors, "departureDate", "untouched error keys must survive")
}

func TestPassengerResizePreservesRecords(t *testing.T) {
	svc := newTestService()
	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)
	ctx := context.Background()

	// adults=2, children=1 → three passengers, child last.
	sess, err = svc.Update(ctx, sess.SessionID, models.DraftPatch{Adults: intPtr(2), Children: intPtr(1)})
	require.NoError(t, err)
	require.Len(t, sess.Draft.Passengers, 3)
	assert.Equal(t, models.PassengerChild, sess.Draft.Passengers[2].Type)

	// Fill in the adult records, then shrink.
	passengers := sess.Draft.Passengers
	passengers[0].FullName = "First Adult"
	passengers[1].FullName = "Second Adult"
	sess, err = svc.Update(ctx, sess.SessionID, models.DraftPatch{Passengers: passengers})
	require.NoError(t, err)

	// children=0 truncates to the two adults, records intact.
	sess, err = svc.Update(ctx, sess.SessionID, models.DraftPatch{Children: intPtr(0)})
	require.NoError(t, err)
	require.Len(t, sess.Draft.Passengers, 2)
	assert.Equal(t, "First Adult", sess.Draft.Passengers[0].FullName)
	assert.Equal(t, "Second Adult", sess.Draft.Passengers[1].FullName)
	for _, p := range sess.Draft.Passengers {
		assert.Equal(t, models.PassengerAdult, p.Type)
	}

	// Growing appends empty records and keeps existing ones.
	sess, err = svc.Update(ctx, sess.SessionID, models.DraftPatch{Adults: intPtr(3)})
	require.NoError(t, err)
	require.Len(t, sess.Draft.Passengers, 3)
	assert.Equal(t, "First Adult", sess.Draft.Passengers[0].FullName)
	assert.Equal(t, "", sess.Draft.Passengers[2].FullName)
}

func TestZeroPassengerCountsKeepOneAdult(t *testing.T) {
	svc := newTestService()
	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)

	sess, err = svc.Update(context.Background(), sess.SessionID, models.DraftPatch{
		Adults:   intPtr(0),
		Children: intPtr(0),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, sess.Draft.Adults)
	require.Len(t, sess.Draft.Passengers, 1)
	assert.Equal(t, models.PassengerAdult, sess.Draft.Passengers[0].Type)
}

func TestZeroPassengerCountsCannotReachSubmit(t *testing.T) {
	svc := newTestService()
	submitted := false
	svc.SubmitFn = func(ctx context.Context, userID string, draft models.BookingDraft) (*models.Booking, error) {
		submitted = true
		return &models.Booking{Reference: "ADMAS-2610-ABC001", UserID: userID, Draft: draft}, nil
	}
	ctx := context.Background()

	sess, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.Update(ctx, sess.SessionID, completeTripPatch())
	require.NoError(t, err)
	_, err = svc.Update(ctx, sess.SessionID, models.DraftPatch{Adults: intPtr(0), Children: intPtr(0)})
	require.NoError(t, err)

	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	require.Equal(t, StepPassengers, sess.Step)

	// The clamped adult record is empty, so the passenger gate holds.
	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepPassengers, sess.Step)
	assert.Contains(t, sess.Errors, "passengers.0.fullName")
	assert.False(t, submitted)

	_, err = svc.Submit(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrNotReviewStep)
}

func TestPassengersStepRejectsEmptyList(t *testing.T) {
	errs := ValidateStep(StepPassengers, models.BookingDraft{})
	assert.Contains(t, errs, "passengers")
	assert.Equal(t, StepPassengers, stepForKey("passengers"))
}

func TestSubmitOnlyFromReview(t *testing.T) {
	svc := newTestService()
	svc.SubmitFn = func(ctx context.Context, userID string, draft models.BookingDraft) (*models.Booking, error) {
		return &models.Booking{Reference: "ADMAS-2610-ABC001", UserID: userID, Draft: draft}, nil
	}

	sess, err := svc.Start(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), sess.SessionID)
	assert.ErrorIs(t, err, ErrNotReviewStep)
}

func TestSubmitFailureKeepsSession(t *testing.T) {
	svc := newTestService()
	submitErr := fmt.Errorf("persistence unavailable")
	svc.SubmitFn = func(ctx context.Context, userID string, draft models.BookingDraft) (*models.Booking, error) {
		return nil, submitErr
	}

	sess := driveToReview(t, svc)

	_, err := svc.Submit(context.Background(), sess.SessionID)
	require.Error(t, err)

	// The draft survives so the user can retry.
	kept, err := svc.Get(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepReview, kept.Step)
	assert.Equal(t, "Abebe Bikila", kept.Draft.ContactName)
}

func TestSubmitSuccessDiscardsSession(t *testing.T) {
	svc := newTestService()
	svc.SubmitFn = func(ctx context.Context, userID string, draft models.BookingDraft) (*models.Booking, error) {
		return &models.Booking{Reference: "ADMAS-2610-XYZ002", UserID: userID, Draft: draft}, nil
	}

	sess := driveToReview(t, svc)

	booking, err := svc.Submit(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "ADMAS-2610-XYZ002", booking.Reference)

	_, err = svc.Get(context.Background(), sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func driveToReview(t *testing.T, svc *DefaultFormService) *FormSession {
	t.Helper()
	ctx := context.Background()

	sess, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.Update(ctx, sess.SessionID, completeTripPatch())
	require.NoError(t, err)
	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	require.Equal(t, StepPassengers, sess.Step)

	fillPassengers(t, svc, sess.SessionID)
	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	require.Equal(t, StepContact, sess.Step)

	_, err = svc.Update(ctx, sess.SessionID, models.DraftPatch{
		ContactName:  strPtr("Abebe Bikila"),
		ContactEmail: strPtr("abebe@example.com"),
		ContactPhone: strPtr("+251911000000"),
	})
	require.NoError(t, err)

	sess, err = svc.Next(ctx, sess.SessionID)
	require.NoError(t, err)
	require.Equal(t, StepReview, sess.Step)
	return sess
}
