package models

// Vehicle is a normalized car-rental offer. The aggregator has shipped
// several field spellings over time; the client remaps them all into this
// shape (see services/cars).
type Vehicle struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Transmission string `json:"transmission"`
	Seats        int    `json:"seats"`
	Supplier     string `json:"supplier"`
	ImageURL     string `json:"imageUrl,omitempty"`
	TotalPrice   Price  `json:"total_price"`
}

// CarSearchParams keys a car-rental search by coordinates and a
// pickup/dropoff window.
type CarSearchParams struct {
	PickupLat     float64 `json:"pickupLat"`
	PickupLng     float64 `json:"pickupLng"`
	DropoffLat    float64 `json:"dropoffLat"`
	DropoffLng    float64 `json:"dropoffLng"`
	PickupDate    string  `json:"pickupDate"`
	PickupTime    string  `json:"pickupTime"`
	DropoffDate   string  `json:"dropoffDate"`
	DropoffTime   string  `json:"dropoffTime"`
	DriverAge     int     `json:"driverAge,omitempty"`
	ResidenceCode string  `json:"residenceCode,omitempty"`
	CurrencyCode  string  `json:"currencyCode,omitempty"`
}

// CarSearchResult carries the normalized vehicles plus the aggregator's
// search key, which must be echoed back on booking.
type CarSearchResult struct {
	Vehicles  []Vehicle `json:"vehicles"`
	SearchKey string    `json:"search_key"`
}

// CarBookingParams books a vehicle from a prior search.
type CarBookingParams struct {
	SearchKey   string `json:"search_key"`
	VehicleID   string `json:"vehicleId"`
	DriverName  string `json:"driverName"`
	DriverEmail string `json:"driverEmail"`
	DriverPhone string `json:"driverPhone"`
}

// CarBookingResult is the aggregator's booking confirmation.
type CarBookingResult struct {
	BookingID          string `json:"booking_id"`
	ConfirmationNumber string `json:"confirmation_number"`
}
