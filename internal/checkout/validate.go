package checkout

import (
	"errors"
	"fmt"
	"strings"

	"artstudio-booking/internal/reservation"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// normalize trims every free-text field the customer typed.
func normalize(req *Request) {
	b := &req.Billing
	for _, f := range []*string{
		&b.FirstName, &b.LastName, &b.AddressLine1, &b.AddressLine2, &b.City,
		&b.StateProvince, &b.PostalCode, &b.Country, &b.EmailAddress, &b.PhoneNumber,
	} {
		*f = strings.TrimSpace(*f)
	}
	for date, people := range req.ParticipantsByDate {
		for i := range people {
			people[i].FirstName = strings.TrimSpace(people[i].FirstName)
			people[i].LastName = strings.TrimSpace(people[i].LastName)
		}
		req.ParticipantsByDate[date] = people
	}
}

// Validate checks a request locally, trimming free-text fields in place. It
// returns the first problem as a *ValidationError or a
// *reservation.IncompleteSelectionError.
func Validate(cal *reservation.Calendar, req *Request) error {
	if req.Offering == nil {
		return &ValidationError{Field: "offering", Message: "Please choose a reservation"}
	}
	if len(req.Entries) == 0 {
		return &reservation.IncompleteSelectionError{Message: "Please select at least one date"}
	}

	normalize(req)

	for _, e := range req.Entries {
		if e.ParticipantCount < 1 {
			return &reservation.IncompleteSelectionError{
				Message: fmt.Sprintf("Please choose at least 1 participant for %s", cal.Label(e.Date)),
			}
		}
		people := req.ParticipantsByDate[e.Date]
		if len(people) != e.ParticipantCount {
			return &ValidationError{
				Field:   "participants",
				Message: fmt.Sprintf("Please enter details for %d participant(s) on %s", e.ParticipantCount, cal.Label(e.Date)),
			}
		}
		for _, p := range people {
			if p.FirstName == "" || p.LastName == "" {
				return &ValidationError{Field: "participants", Message: "Please enter first and last name for all participants"}
			}
		}
	}

	if err := validateBilling(&req.Billing); err != nil {
		return err
	}

	if req.Offering.TimeSlotsEnabled {
		for _, e := range req.Entries {
			if e.TimeSlot == nil {
				return &reservation.IncompleteSelectionError{Message: "Please select a time slot for all selected dates"}
			}
		}
	}

	if strings.TrimSpace(req.PaymentSourceID) == "" {
		return &ValidationError{Field: "paymentSource", Message: "Please enter your card details"}
	}
	return nil
}

func validateBilling(b *BillingInfo) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "billingInfo", Message: "Please fill in all required billing fields"}
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return &ValidationError{Field: fe.Field(), Message: "Please fill in all required billing fields"}
		}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required_without":
		return &ValidationError{Field: "contact", Message: "Please provide either an email address or phone number"}
	case "email":
		return &ValidationError{Field: fe.Field(), Message: "Please enter a valid email address"}
	default:
		return &ValidationError{Field: fe.Field(), Message: "Please fill in all required billing fields"}
	}
}
