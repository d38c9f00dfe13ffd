// File: services/form/service.go
package form

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"admas/models"

	"github.com/google/uuid"
)

// Step is one of the four linear stages of the booking wizard.
type Step string

const (
	StepTrip       Step = "trip"
	StepPassengers Step = "passengers"
	StepContact    Step = "contact"
	StepReview     Step = "review"
)

var stepOrder = []Step{StepTrip, StepPassengers, StepContact, StepReview}

// AutoFillState tracks the one-shot auto-fill latch as an explicit state
// rather than a bare flag.
type AutoFillState string

const (
	AutoFillUninitialized AutoFillState = "uninitialized"
	AutoFillInitialized   AutoFillState = "initialized"
)

var (
	ErrSessionNotFound = errors.New("form session not found or expired")
	ErrNotReviewStep   = errors.New("submission is only possible from the review step")
)

// FormSession holds the step state machine between requests: current step,
// the full booking draft, per-field validation errors, the auto-fill latch,
// and the search generation counter.
type FormSession struct {
	SessionID        string                     `json:"sessionId"`
	UserID           string                     `json:"userId"`
	Step             Step                       `json:"step"`
	Draft            models.BookingDraft        `json:"draft"`
	Errors           map[string]string          `json:"errors"`
	AutoFill         AutoFillState              `json:"autoFill"`
	SearchGeneration int64                      `json:"searchGeneration"`
	Results          *models.FlightSearchResult `json:"results,omitempty"`
}

// ProfileFields are the known user-profile values pulled into the draft on
// auto-fill. Empty values never overwrite draft fields.
type ProfileFields struct {
	FullName       string
	Email          string
	Phone          string
	Nationality    string
	PassportNumber string
	PassportExpiry string
	DateOfBirth    string
}

// ProfileProvider supplies profile fields for a user.
type ProfileProvider func(ctx context.Context, userID string) (ProfileFields, error)

// SubmitFunc persists a completed draft and returns the stored booking.
type SubmitFunc func(ctx context.Context, userID string, draft models.BookingDraft) (*models.Booking, error)

// FormService drives the booking form state machine.
type FormService interface {
	Start(ctx context.Context, userID string) (*FormSession, error)
	Get(ctx context.Context, sessionID string) (*FormSession, error)
	Update(ctx context.Context, sessionID string, patch models.DraftPatch) (*FormSession, error)
	Next(ctx context.Context, sessionID string) (*FormSession, error)
	Back(ctx context.Context, sessionID string) (*FormSession, error)
	Submit(ctx context.Context, sessionID string) (*models.Booking, error)
	AutoFill(ctx context.Context, sessionID string) (*FormSession, error)
	BeginSearch(ctx context.Context, sessionID string) (int64, error)
	ApplyFlightResults(ctx context.Context, sessionID string, generation int64, results *models.FlightSearchResult) (bool, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultFormService is the production implementation. Sessions live in the
// injected key-value store under a TTL; the route cache adapter mirrors the
// route/date subset on every draft mutation.
type DefaultFormService struct {
	Store      KVStore
	RouteCache *RouteCacheAdapter
	Profile    ProfileProvider
	SubmitFn   SubmitFunc
	SessionTTL time.Duration
}

func sessionKey(sessionID string) string {
	return "form:session:" + sessionID
}

func (s *DefaultFormService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 30 * time.Minute
}

// Start creates a new session on the trip step, seeding the draft from the
// user's cached route selection.
func (s *DefaultFormService) Start(ctx context.Context, userID string) (*FormSession, error) {
	draft := models.NewBookingDraft()
	if s.RouteCache != nil {
		s.RouteCache.SeedDraft(ctx, userID, &draft)
	}

	sess := &FormSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Step:      StepTrip,
		Draft:     draft,
		Errors:    map[string]string{},
		AutoFill:  AutoFillUninitialized,
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads an existing session.
func (s *DefaultFormService) Get(ctx context.Context, sessionID string) (*FormSession, error) {
	return s.load(ctx, sessionID)
}

// Cancel discards a session without submitting.
func (s *DefaultFormService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Store.Del(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to cancel form session: %w", err)
	}
	return nil
}

func (s *DefaultFormService) load(ctx context.Context, sessionID string) (*FormSession, error) {
	raw, err := s.Store.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if err == ErrKeyNotFound {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load form session: %w", err)
	}
	var sess FormSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse form session: %w", err)
	}
	if sess.Errors == nil {
		sess.Errors = map[string]string{}
	}
	return &sess, nil
}

func (s *DefaultFormService) save(ctx context.Context, sess *FormSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal form session: %w", err)
	}
	if err := s.Store.Set(ctx, sessionKey(sess.SessionID), string(data), s.ttl()); err != nil {
		return fmt.Errorf("failed to store form session: %w", err)
	}
	return nil
}
