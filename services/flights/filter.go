// File: services/flights/filter.go
package flights

import (
	"admas/models"

	"github.com/samber/lo"
)

// FilterOptions narrows a search result after the fact, the way the results
// page filters offers client-side.
type FilterOptions struct {
	MaxStops    *int    `json:"maxStops,omitempty"`
	AirlineCode string  `json:"airlineCode,omitempty"`
	MaxPrice    float64 `json:"maxPrice,omitempty"`
}

// Filter applies the options to a search result. TotalCount is coerced so it
// is never smaller than the number of offers actually shown.
func Filter(result *models.FlightSearchResult, opts FilterOptions) *models.FlightSearchResult {
	filtered := lo.Filter(result.Flights, func(offer models.FlightOffer, _ int) bool {
		if opts.MaxStops != nil && offer.Stops > *opts.MaxStops {
			return false
		}
		if opts.AirlineCode != "" && !hasAirline(offer, opts.AirlineCode) {
			return false
		}
		if opts.MaxPrice > 0 && offer.Price.Amount > opts.MaxPrice {
			return false
		}
		return true
	})

	totalCount := result.TotalCount
	if len(filtered) > totalCount {
		totalCount = len(filtered)
	}

	return &models.FlightSearchResult{Flights: filtered, TotalCount: totalCount}
}

func hasAirline(offer models.FlightOffer, code string) bool {
	return lo.SomeBy(offer.Segments, func(seg models.FlightSegment) bool {
		return seg.AirlineCode == code
	})
}
