// File: services/cars/client.go
package cars

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"admas/models"
	"admas/utils"
)

// Client is a stateless request/response mapper around the car-rental
// aggregator's REST API. It shares the 429-retry / 401-fatal transport
// policy with the flight client.
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

// Search queries vehicles for a coordinate-keyed pickup/dropoff window and
// remaps the aggregator's drifting field names into the normalized shape.
func (c *Client) Search(ctx context.Context, params models.CarSearchParams) (*models.CarSearchResult, error) {
	var raw searchResponse
	if err := c.postJSON(ctx, "/cars/search", params, &raw); err != nil {
		return nil, err
	}

	vehicles := make([]models.Vehicle, 0, len(raw.Vehicles))
	for _, v := range raw.Vehicles {
		vehicles = append(vehicles, remapVehicle(v))
	}
	return &models.CarSearchResult{Vehicles: vehicles, SearchKey: raw.SearchKey}, nil
}

// Book reserves a vehicle from a prior search.
func (c *Client) Book(ctx context.Context, params models.CarBookingParams) (*models.CarBookingResult, error) {
	var result models.CarBookingResult
	if err := c.postJSON(ctx, "/cars/book", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	newReq := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Api-Key", c.APIKey)
		return req, nil
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := utils.DoWithRetry(ctx, client, newReq, c.Retry)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("car rental request failed with status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode car rental response: %w", err)
	}
	return nil
}

type searchResponse struct {
	Vehicles  []rawVehicle `json:"vehicles"`
	SearchKey string       `json:"search_key"`
}

// rawVehicle accepts every field spelling the aggregator has shipped.
type rawVehicle struct {
	ID             string  `json:"id"`
	VehicleID      string  `json:"vehicle_id"`
	VName          string  `json:"v_name"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	VehicleClass   string  `json:"vehicle_class"`
	Transmission   string  `json:"transmission"`
	Seats          int     `json:"seats"`
	Supplier       string  `json:"supplier"`
	SupplierName   string  `json:"supplier_name"`
	ImageURL       string  `json:"image_url"`
	DriveAwayPrice float64 `json:"drive_away_price"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
}

// remapVehicle implements the explicit renaming table for the aggregator's
// historical field names: v_name/name → Name, drive_away_price/price →
// TotalPrice.Amount, vehicle_class/category → Category, and so on.
func remapVehicle(v rawVehicle) models.Vehicle {
	vehicle := models.Vehicle{
		ID:           firstNonEmpty(v.ID, v.VehicleID),
		Name:         firstNonEmpty(v.VName, v.Name),
		Category:     firstNonEmpty(v.VehicleClass, v.Category),
		Transmission: v.Transmission,
		Seats:        v.Seats,
		Supplier:     firstNonEmpty(v.Supplier, v.SupplierName),
		ImageURL:     v.ImageURL,
	}

	amount := v.DriveAwayPrice
	if amount == 0 {
		amount = v.Price
	}
	currency := v.Currency
	if currency == "" {
		currency = "USD"
	}
	vehicle.TotalPrice = models.Price{Amount: amount, Currency: currency}
	return vehicle
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
