package models

// Price is a monetary amount as returned by the aggregators.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// FlightPoint is one end of a flight segment.
type FlightPoint struct {
	Airport  string `json:"airport"`
	City     string `json:"city"`
	Terminal string `json:"terminal,omitempty"`
	Time     string `json:"time"`
}

// FlightSegment is a single leg of an offer. Segments are consumed verbatim
// from the aggregator response.
type FlightSegment struct {
	Airline      string      `json:"airline"`
	AirlineCode  string      `json:"airlineCode"`
	FlightNumber string      `json:"flightNumber"`
	Departure    FlightPoint `json:"departure"`
	Arrival      FlightPoint `json:"arrival"`
	DurationMin  int         `json:"durationMinutes"`
}

// FlightOffer is one bookable itinerary from the flight aggregator.
type FlightOffer struct {
	ID             string          `json:"id"`
	Segments       []FlightSegment `json:"segments"`
	Stops          int             `json:"stops"`
	Price          Price           `json:"price"`
	CabinClass     string          `json:"cabinClass"`
	AvailableSeats int             `json:"availableSeats"`
}

// FlightSearchResult is the shaped response handed to the form layer.
type FlightSearchResult struct {
	Flights    []FlightOffer `json:"flights"`
	TotalCount int           `json:"totalCount"`
}
