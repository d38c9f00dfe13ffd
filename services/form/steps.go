// File: services/form/steps.go
package form

import (
	"context"
	"strings"

	"admas/models"
)

// Update shallow-merges the patch into the draft, clears only the error keys
// for touched fields, renormalizes the passenger array when counts change,
// and mirrors the route/date/time subset to the cache adapter synchronously.
func (s *DefaultFormService) Update(ctx context.Context, sessionID string, patch models.DraftPatch) (*FormSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	touched := mergeDraft(&sess.Draft, patch)
	normalizePassengers(&sess.Draft)

	for _, key := range touched {
		if key == "passengers.*" {
			for k := range sess.Errors {
				if strings.HasPrefix(k, "passengers") {
					delete(sess.Errors, k)
				}
			}
			continue
		}
		delete(sess.Errors, key)
	}

	// Cache mirroring is unconditional and cheap; adapter errors never block
	// the mutation.
	if s.RouteCache != nil {
		s.RouteCache.Write(ctx, sess.UserID, sess.Draft)
	}

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Next advances one step iff the current step validates clean. On failure the
// recomputed error map replaces the current step's errors and the step does
// not change.
func (s *DefaultFormService) Next(ctx context.Context, sessionID string) (*FormSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	applyStepErrors(sess, ValidateStep(sess.Step, sess.Draft))
	if !stepClean(sess) {
		if err := s.save(ctx, sess); err != nil {
			return nil, err
		}
		return sess, nil
	}

	for i, step := range stepOrder {
		if step == sess.Step && i < len(stepOrder)-1 {
			sess.Step = stepOrder[i+1]
			break
		}
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Back retreats one step unconditionally. On the first step it is a no-op.
func (s *DefaultFormService) Back(ctx context.Context, sessionID string) (*FormSession, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i, step := range stepOrder {
		if step == sess.Step && i > 0 {
			sess.Step = stepOrder[i-1]
			break
		}
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Submit finalizes the booking from the review step. Review validation is
// re-run first (a no-op check, by policy). On success the session is
// discarded; on failure it is kept intact so the user can retry.
func (s *DefaultFormService) Submit(ctx context.Context, sessionID string) (*models.Booking, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != StepReview {
		return nil, ErrNotReviewStep
	}

	applyStepErrors(sess, ValidateStep(StepReview, sess.Draft))
	if !stepClean(sess) {
		if err := s.save(ctx, sess); err != nil {
			return nil, err
		}
		return nil, ErrNotReviewStep
	}

	booking, err := s.SubmitFn(ctx, sess.UserID, sess.Draft)
	if err != nil {
		return nil, err
	}

	if err := s.Store.Del(ctx, sessionKey(sessionID)); err != nil {
		// The booking is already confirmed; a leftover session just expires.
		return booking, nil
	}
	return booking, nil
}

// applyStepErrors replaces the current step's error keys with the freshly
// computed set, leaving other steps' errors untouched.
func applyStepErrors(sess *FormSession, errs map[string]string) {
	for k := range sess.Errors {
		if stepForKey(k) == sess.Step {
			delete(sess.Errors, k)
		}
	}
	for k, v := range errs {
		sess.Errors[k] = v
	}
}

// stepClean reports whether the current step has no recorded errors.
func stepClean(sess *FormSession) bool {
	for k := range sess.Errors {
		if stepForKey(k) == sess.Step {
			return false
		}
	}
	return true
}

// mergeDraft applies non-nil patch fields onto the draft and returns the
// touched error keys. A passenger-slice replacement touches every passenger
// key, reported as "passengers.*".
func mergeDraft(draft *models.BookingDraft, patch models.DraftPatch) []string {
	var touched []string
	if patch.TripType != nil {
		draft.TripType = *patch.TripType
		touched = append(touched, "tripType")
	}
	if patch.Origin != nil {
		draft.Origin = patch.Origin
		touched = append(touched, "origin")
	}
	if patch.Destination != nil {
		draft.Destination = patch.Destination
		touched = append(touched, "destination")
	}
	if patch.DepartureDate != nil {
		draft.DepartureDate = *patch.DepartureDate
		touched = append(touched, "departureDate")
	}
	if patch.DepartureTime != nil {
		draft.DepartureTime = *patch.DepartureTime
	}
	if patch.ReturnDate != nil {
		draft.ReturnDate = *patch.ReturnDate
		touched = append(touched, "returnDate")
	}
	if patch.ReturnTime != nil {
		draft.ReturnTime = *patch.ReturnTime
	}
	if patch.Adults != nil {
		draft.Adults = *patch.Adults
		touched = append(touched, "passengers.*")
	}
	if patch.Children != nil {
		draft.Children = *patch.Children
		touched = append(touched, "passengers.*")
	}
	if patch.Passengers != nil {
		draft.Passengers = patch.Passengers
		touched = append(touched, "passengers.*")
	}
	if patch.CabinClass != nil {
		draft.CabinClass = *patch.CabinClass
	}
	if patch.ContactName != nil {
		draft.ContactName = *patch.ContactName
		touched = append(touched, "contactName")
	}
	if patch.ContactEmail != nil {
		draft.ContactEmail = *patch.ContactEmail
		touched = append(touched, "contactEmail")
	}
	if patch.ContactPhone != nil {
		draft.ContactPhone = *patch.ContactPhone
		touched = append(touched, "contactPhone")
	}
	if patch.SpecialRequest != nil {
		draft.SpecialRequest = *patch.SpecialRequest
	}
	return touched
}

// normalizePassengers resizes the passenger array to Adults+Children,
// preserving existing records by index within each type group. New slots
// default to empty strings; child records always follow adult records.
// A booking always carries at least one adult, so the adult count is
// clamped to 1 and the slice is never empty.
func normalizePassengers(draft *models.BookingDraft) {
	if draft.Adults < 1 {
		draft.Adults = 1
	}
	if draft.Children < 0 {
		draft.Children = 0
	}

	var adults, children []models.PassengerRecord
	for _, p := range draft.Passengers {
		if p.Type == models.PassengerChild {
			children = append(children, p)
		} else {
			adults = append(adults, p)
		}
	}

	adults = resizeGroup(adults, draft.Adults, models.PassengerAdult)
	children = resizeGroup(children, draft.Children, models.PassengerChild)
	draft.Passengers = append(adults, children...)
}

func resizeGroup(group []models.PassengerRecord, want int, typ models.PassengerType) []models.PassengerRecord {
	if len(group) > want {
		return group[:want]
	}
	for len(group) < want {
		group = append(group, models.PassengerRecord{Type: typ})
	}
	return group
}
