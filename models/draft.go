package models

// TripType distinguishes one-way from round-trip bookings.
type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// PassengerType tags a passenger record as adult or child.
type PassengerType string

const (
	PassengerAdult PassengerType = "adult"
	PassengerChild PassengerType = "child"
)

// Airport identifies a selected origin or destination.
type Airport struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Code    string `json:"code"`
}

// PassengerRecord holds the travel-document fields collected per passenger.
type PassengerRecord struct {
	Type           PassengerType `json:"type"`
	FullName       string        `json:"fullName"`
	DateOfBirth    string        `json:"dateOfBirth"`
	PassportNumber string        `json:"passportNumber"`
	PassportExpiry string        `json:"passportExpiry"`
	Nationality    string        `json:"nationality"`
}

// BookingDraft is the in-progress, not-yet-submitted booking form data.
// The passenger slice always has length Adults+Children, adults first.
type BookingDraft struct {
	TripType       TripType          `json:"tripType"`
	Origin         *Airport          `json:"origin,omitempty"`
	Destination    *Airport          `json:"destination,omitempty"`
	DepartureDate  string            `json:"departureDate"`
	DepartureTime  string            `json:"departureTime"`
	ReturnDate     string            `json:"returnDate"`
	ReturnTime     string            `json:"returnTime"`
	Adults         int               `json:"adults"`
	Children       int               `json:"children"`
	Passengers     []PassengerRecord `json:"passengers"`
	CabinClass     string            `json:"cabinClass"`
	ContactName    string            `json:"contactName"`
	ContactEmail   string            `json:"contactEmail"`
	ContactPhone   string            `json:"contactPhone"`
	SpecialRequest string            `json:"specialRequest,omitempty"`
}

// NewBookingDraft returns a draft with one adult passenger slot.
func NewBookingDraft() BookingDraft {
	return BookingDraft{
		TripType:   TripOneWay,
		Adults:     1,
		Passengers: []PassengerRecord{{Type: PassengerAdult}},
	}
}

// DraftPatch is a partial draft update. Nil fields are untouched by the merge.
type DraftPatch struct {
	TripType       *TripType         `json:"tripType,omitempty"`
	Origin         *Airport          `json:"origin,omitempty"`
	Destination    *Airport          `json:"destination,omitempty"`
	DepartureDate  *string           `json:"departureDate,omitempty"`
	DepartureTime  *string           `json:"departureTime,omitempty"`
	ReturnDate     *string           `json:"returnDate,omitempty"`
	ReturnTime     *string           `json:"returnTime,omitempty"`
	Adults         *int              `json:"adults,omitempty"`
	Children       *int              `json:"children,omitempty"`
	Passengers     []PassengerRecord `json:"passengers,omitempty"`
	CabinClass     *string           `json:"cabinClass,omitempty"`
	ContactName    *string           `json:"contactName,omitempty"`
	ContactEmail   *string           `json:"contactEmail,omitempty"`
	ContactPhone   *string           `json:"contactPhone,omitempty"`
	SpecialRequest *string           `json:"specialRequest,omitempty"`
}
