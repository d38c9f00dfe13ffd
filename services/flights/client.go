// File: services/flights/client.go
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"admas/models"
	"admas/utils"
)

// SearchParams are the query parameters forwarded to the flight aggregator.
type SearchParams struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"` // ISO date
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	CabinClass    string `json:"cabinClass"`
}

// Client is a stateless request/response mapper around the flight
// aggregator's REST API. Rate-limited responses are retried per the shared
// policy; HTTP 401 is surfaced as utils.ErrUnauthorized.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Retry      utils.RetryPolicy
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
		Retry:      utils.DefaultRetryPolicy(),
	}
}

// Search queries the aggregator and maps offers into the normalized shape.
func (c *Client) Search(ctx context.Context, params SearchParams) (*models.FlightSearchResult, error) {
	query := url.Values{}
	query.Set("origin", params.Origin)
	query.Set("destination", params.Destination)
	query.Set("departure_date", params.DepartureDate)
	if params.ReturnDate != "" {
		query.Set("return_date", params.ReturnDate)
	}
	query.Set("adults", strconv.Itoa(params.Adults))
	query.Set("children", strconv.Itoa(params.Children))
	if params.CabinClass != "" {
		query.Set("cabin_class", params.CabinClass)
	}

	endpoint := c.BaseURL + "/flights/search?" + query.Encode()
	newReq := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Api-Key", c.APIKey)
		return req, nil
	}

	resp, err := utils.DoWithRetry(ctx, c.httpClient(), newReq, c.Retry)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight search failed with status %d", resp.StatusCode)
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode flight search response: %w", err)
	}

	offers := make([]models.FlightOffer, 0, len(raw.Flights))
	for _, f := range raw.Flights {
		offers = append(offers, mapOffer(f))
	}

	totalCount := raw.TotalCount
	if len(offers) > totalCount {
		totalCount = len(offers)
	}

	return &models.FlightSearchResult{Flights: offers, TotalCount: totalCount}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

type searchResponse struct {
	Flights    []rawOffer `json:"flights"`
	TotalCount int        `json:"total_count"`
}

type rawOffer struct {
	ID       string `json:"id"`
	Segments []struct {
		Airline      string `json:"airline"`
		AirlineCode  string `json:"airline_code"`
		FlightNumber string `json:"flight_number"`
		Departure    struct {
			Airport  string `json:"airport"`
			City     string `json:"city"`
			Terminal string `json:"terminal"`
			Time     string `json:"time"`
		} `json:"departure"`
		Arrival struct {
			Airport  string `json:"airport"`
			City     string `json:"city"`
			Terminal string `json:"terminal"`
			Time     string `json:"time"`
		} `json:"arrival"`
		DurationMinutes int `json:"duration_minutes"`
	} `json:"segments"`
	Price struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`
	CabinClass     string `json:"cabin_class"`
	AvailableSeats int    `json:"available_seats"`
}

func mapOffer(f rawOffer) models.FlightOffer {
	segments := make([]models.FlightSegment, 0, len(f.Segments))
	for _, seg := range f.Segments {
		segments = append(segments, models.FlightSegment{
			Airline:      seg.Airline,
			AirlineCode:  seg.AirlineCode,
			FlightNumber: seg.FlightNumber,
			Departure: models.FlightPoint{
				Airport:  seg.Departure.Airport,
				City:     seg.Departure.City,
				Terminal: seg.Departure.Terminal,
				Time:     seg.Departure.Time,
			},
			Arrival: models.FlightPoint{
				Airport:  seg.Arrival.Airport,
				City:     seg.Arrival.City,
				Terminal: seg.Arrival.Terminal,
				Time:     seg.Arrival.Time,
			},
			DurationMin: seg.DurationMinutes,
		})
	}

	stops := len(segments) - 1
	if stops < 0 {
		stops = 0
	}

	return models.FlightOffer{
		ID:             f.ID,
		Segments:       segments,
		Stops:          stops,
		Price:          models.Price{Amount: f.Price.Amount, Currency: f.Price.Currency},
		CabinClass:     f.CabinClass,
		AvailableSeats: f.AvailableSeats,
	}
}
