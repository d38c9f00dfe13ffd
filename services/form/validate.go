// File: services/form/validate.go
package form

import (
	"fmt"
	"strings"

	"admas/models"
)

// ValidateStep returns the full error map for one step. Each call recomputes
// the step's errors wholesale; callers must not merge results across steps.
func ValidateStep(step Step, draft models.BookingDraft) map[string]string {
	switch step {
	case StepTrip:
		return validateTrip(draft)
	case StepPassengers:
		return validatePassengers(draft)
	case StepContact:
		return validateContact(draft)
	case StepReview:
		// Review is a display-only confirmation step.
		return map[string]string{}
	}
	return map[string]string{}
}

func validateTrip(draft models.BookingDraft) map[string]string {
	errs := map[string]string{}
	if draft.TripType == "" {
		errs["tripType"] = "Please select a trip type"
	}
	if draft.Origin == nil || draft.Origin.Code == "" {
		errs["origin"] = "Please select a departure airport"
	}
	if draft.Destination == nil || draft.Destination.Code == "" {
		errs["destination"] = "Please select a destination airport"
	}
	if draft.DepartureDate == "" {
		errs["departureDate"] = "Please choose a departure date"
	}
	if draft.TripType == models.TripRoundTrip && draft.ReturnDate == "" {
		errs["returnDate"] = "Please choose a return date"
	}
	return errs
}

// validatePassengers reports one error per passenger per missing field so the
// UI can localize each message next to its input.
func validatePassengers(draft models.BookingDraft) map[string]string {
	errs := map[string]string{}
	if len(draft.Passengers) == 0 {
		errs["passengers"] = "At least one adult passenger is required"
		return errs
	}
	for i, p := range draft.Passengers {
		if p.FullName == "" {
			errs[passengerKey(i, "fullName")] = fmt.Sprintf("Full name is required for passenger %d", i+1)
		}
		if p.DateOfBirth == "" {
			errs[passengerKey(i, "dateOfBirth")] = fmt.Sprintf("Date of birth is required for passenger %d", i+1)
		}
		if p.Nationality == "" {
			errs[passengerKey(i, "nationality")] = fmt.Sprintf("Nationality is required for passenger %d", i+1)
		}
		if p.PassportNumber == "" {
			errs[passengerKey(i, "passportNumber")] = fmt.Sprintf("Passport number is required for passenger %d", i+1)
		}
		if p.PassportExpiry == "" {
			errs[passengerKey(i, "passportExpiry")] = fmt.Sprintf("Passport expiry is required for passenger %d", i+1)
		}
	}
	return errs
}

// validateContact checks presence only; format enforcement is left to the
// input elements.
func validateContact(draft models.BookingDraft) map[string]string {
	errs := map[string]string{}
	if draft.ContactName == "" {
		errs["contactName"] = "Please enter a contact name"
	}
	if draft.ContactEmail == "" {
		errs["contactEmail"] = "Please enter a contact email"
	}
	if draft.ContactPhone == "" {
		errs["contactPhone"] = "Please enter a contact phone number"
	}
	return errs
}

func passengerKey(index int, field string) string {
	return fmt.Sprintf("passengers.%d.%s", index, field)
}

// stepForKey maps an error key back to the step that owns it, so validating
// one step never clears errors recorded for another.
func stepForKey(key string) Step {
	if strings.HasPrefix(key, "passengers") {
		return StepPassengers
	}
	switch key {
	case "tripType", "origin", "destination", "departureDate", "returnDate":
		return StepTrip
	case "contactName", "contactEmail", "contactPhone":
		return StepContact
	}
	return StepReview
}
