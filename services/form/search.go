// File: services/form/search.go
package form

import (
	"context"

	"admas/models"
	"admas/utils"

	"go.uber.org/zap"
)

// BeginSearch bumps the session's search generation and returns the new
// value. Each flight search carries the generation it was started under so a
// slow response cannot clobber the state of a newer search.
func (s *DefaultFormService) BeginSearch(ctx context.Context, sessionID string) (int64, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	sess.SearchGeneration++
	if err := s.save(ctx, sess); err != nil {
		return 0, err
	}
	return sess.SearchGeneration, nil
}

// ApplyFlightResults stores search results on the session. Results from a
// stale generation are discarded and reported as not applied.
func (s *DefaultFormService) ApplyFlightResults(ctx context.Context, sessionID string, generation int64, results *models.FlightSearchResult) (bool, error) {
	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if generation != sess.SearchGeneration {
		utils.GetLogger().Debug("discarding stale flight search results",
			zap.String("sessionId", sessionID),
			zap.Int64("generation", generation),
			zap.Int64("current", sess.SearchGeneration))
		return false, nil
	}

	sess.Results = results
	if err := s.save(ctx, sess); err != nil {
		return false, err
	}
	return true, nil
}
