// File: services/form/cache.go
package form

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"admas/models"
	"admas/utils"

	"go.uber.org/zap"
)

// Storage keys, one per cached concern. Each is read and written
// independently with the same defensive parse-to-defaults contract.
const (
	routeCacheKeyFmt   = "cache:flightRoute:%s"
	carFormCacheKeyFmt = "cache:carBookingForm:%s"
	adminPrefsKeyFmt   = "prefs:adminSearch:%s"
	quizAnswersKeyFmt  = "prefs:quizAnswers:%s"
)

// routeCacheSchemaVersion is the current on-disk shape. Version 0 records
// predate the version tag and carried duplicated airport fields written by
// different producers; they are migrated on read.
const routeCacheSchemaVersion = 1

// CachedAirport is the denormalized airport shape persisted in the route
// cache. Name/AirportName and Code/AirportCode are historical duplicates;
// reads reconcile them, writes fill both.
type CachedAirport struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AirportName string `json:"airportName"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Code        string `json:"code"`
	AirportCode string `json:"airportCode"`
}

// RouteCache is the persisted subset of the booking draft: route, dates,
// times, and the trip-type flag.
type RouteCache struct {
	SchemaVersion int           `json:"schemaVersion"`
	TripType      string        `json:"tripType"`
	Origin        CachedAirport `json:"origin"`
	Destination   CachedAirport `json:"destination"`
	DepartureDate string        `json:"departureDate"`
	DepartureTime string        `json:"departureTime"`
	ReturnDate    string        `json:"returnDate"`
	ReturnTime    string        `json:"returnTime"`
}

// DefaultRouteCache returns the empty-defaults record handed out when the
// stored value is absent or unreadable.
func DefaultRouteCache() RouteCache {
	return RouteCache{SchemaVersion: routeCacheSchemaVersion}
}

// RouteCacheAdapter mirrors the route/date/time subset of the draft to the
// key-value store. Read failures are absorbed here and never surface to
// callers.
type RouteCacheAdapter struct {
	Store KVStore
	TTL   time.Duration
}

func NewRouteCacheAdapter(store KVStore) *RouteCacheAdapter {
	return &RouteCacheAdapter{Store: store}
}

func routeCacheKey(userID string) string {
	return fmt.Sprintf(routeCacheKeyFmt, userID)
}

// Read returns the cached route selection, or defaults when the record is
// missing or corrupt. It never returns an error to the caller.
func (a *RouteCacheAdapter) Read(ctx context.Context, userID string) RouteCache {
	raw, err := a.Store.Get(ctx, routeCacheKey(userID))
	if err != nil {
		if err != ErrKeyNotFound {
			utils.GetLogger().Warn("route cache read failed, using defaults",
				zap.String("userId", userID), zap.Error(err))
		}
		return DefaultRouteCache()
	}

	var rec RouteCache
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		utils.GetLogger().Warn("route cache is corrupt, using defaults",
			zap.String("userId", userID), zap.Error(err))
		return DefaultRouteCache()
	}
	return migrateRouteCache(rec)
}

// Write merges the subset drawn from the draft into the last known record
// and persists it synchronously. Write errors are logged only; a lost cache
// write never blocks a form mutation.
func (a *RouteCacheAdapter) Write(ctx context.Context, userID string, draft models.BookingDraft) {
	rec := a.Read(ctx, userID)
	rec.SchemaVersion = routeCacheSchemaVersion
	if draft.TripType != "" {
		rec.TripType = string(draft.TripType)
	}
	if draft.Origin != nil {
		rec.Origin = toCachedAirport(*draft.Origin)
	}
	if draft.Destination != nil {
		rec.Destination = toCachedAirport(*draft.Destination)
	}
	if draft.DepartureDate != "" {
		rec.DepartureDate = draft.DepartureDate
	}
	if draft.DepartureTime != "" {
		rec.DepartureTime = draft.DepartureTime
	}
	if draft.ReturnDate != "" {
		rec.ReturnDate = draft.ReturnDate
	}
	if draft.ReturnTime != "" {
		rec.ReturnTime = draft.ReturnTime
	}

	data, err := json.Marshal(rec)
	if err != nil {
		utils.GetLogger().Warn("route cache marshal failed", zap.Error(err))
		return
	}
	if err := a.Store.Set(ctx, routeCacheKey(userID), string(data), a.TTL); err != nil {
		utils.GetLogger().Warn("route cache write failed",
			zap.String("userId", userID), zap.Error(err))
	}
}

// Clear removes the persisted record.
func (a *RouteCacheAdapter) Clear(ctx context.Context, userID string) {
	if err := a.Store.Del(ctx, routeCacheKey(userID)); err != nil {
		utils.GetLogger().Warn("route cache clear failed",
			zap.String("userId", userID), zap.Error(err))
	}
}

// SeedDraft applies the cached route selection onto a fresh draft so a user
// returning to the form does not lose the previous search.
func (a *RouteCacheAdapter) SeedDraft(ctx context.Context, userID string, draft *models.BookingDraft) {
	rec := a.Read(ctx, userID)
	if rec.TripType != "" {
		draft.TripType = models.TripType(rec.TripType)
	}
	if rec.Origin.Code != "" {
		o := fromCachedAirport(rec.Origin)
		draft.Origin = &o
	}
	if rec.Destination.Code != "" {
		d := fromCachedAirport(rec.Destination)
		draft.Destination = &d
	}
	if rec.DepartureDate != "" {
		draft.DepartureDate = rec.DepartureDate
	}
	if rec.DepartureTime != "" {
		draft.DepartureTime = rec.DepartureTime
	}
	if rec.ReturnDate != "" {
		draft.ReturnDate = rec.ReturnDate
	}
	if rec.ReturnTime != "" {
		draft.ReturnTime = rec.ReturnTime
	}
}

// migrateRouteCache reconciles version-0 records in which producers wrote
// either field of each duplicated pair.
func migrateRouteCache(rec RouteCache) RouteCache {
	if rec.SchemaVersion >= routeCacheSchemaVersion {
		return rec
	}
	rec.Origin = reconcileAirport(rec.Origin)
	rec.Destination = reconcileAirport(rec.Destination)
	rec.SchemaVersion = routeCacheSchemaVersion
	return rec
}

func reconcileAirport(a CachedAirport) CachedAirport {
	if a.Code == "" {
		a.Code = a.AirportCode
	}
	if a.AirportCode == "" {
		a.AirportCode = a.Code
	}
	if a.Name == "" {
		a.Name = a.AirportName
	}
	if a.AirportName == "" {
		a.AirportName = a.Name
	}
	return a
}

func toCachedAirport(a models.Airport) CachedAirport {
	return CachedAirport{
		ID:          a.ID,
		Name:        a.Name,
		AirportName: a.Name,
		City:        a.City,
		Country:     a.Country,
		Code:        a.Code,
		AirportCode: a.Code,
	}
}

func fromCachedAirport(a CachedAirport) models.Airport {
	a = reconcileAirport(a)
	return models.Airport{
		ID:      a.ID,
		Name:    a.Name,
		City:    a.City,
		Country: a.Country,
		Code:    a.Code,
	}
}

// CarFormCacheKey returns the storage key for the car booking form cache.
func CarFormCacheKey(userID string) string {
	return fmt.Sprintf(carFormCacheKeyFmt, userID)
}

// AdminPrefsKey returns the storage key for admin search preferences.
func AdminPrefsKey(userID string) string {
	return fmt.Sprintf(adminPrefsKeyFmt, userID)
}

// QuizAnswersKey returns the storage key for travel-quiz answers.
func QuizAnswersKey(userID string) string {
	return fmt.Sprintf(quizAnswersKeyFmt, userID)
}

// ReadJSON loads and decodes a preference record into out. Absent or corrupt
// records leave out untouched and report false; decode failures are logged,
// never propagated.
func ReadJSON(ctx context.Context, store KVStore, key string, out interface{}) bool {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if err != ErrKeyNotFound {
			utils.GetLogger().Warn("preference read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		utils.GetLogger().Warn("preference record is corrupt, using defaults",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// WriteJSON encodes and persists a preference record.
func WriteJSON(ctx context.Context, store KVStore, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal preference record: %w", err)
	}
	return store.Set(ctx, key, string(data), 0)
}
