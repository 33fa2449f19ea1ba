package checkout

import (
	"artstudio-booking/internal/reservation"
)

// Participant is one named attendee for one selected date.
type Participant struct {
	FirstName       string
	LastName        string
	SelectedOptions []reservation.SelectedAddOn
}

// BillingInfo is the payer's contact. Either an email address or a phone
// number is required.
type BillingInfo struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	AddressLine1  string `json:"addressLine1" validate:"required"`
	AddressLine2  string `json:"addressLine2,omitempty"`
	City          string `json:"city" validate:"required"`
	StateProvince string `json:"stateProvince" validate:"required"`
	PostalCode    string `json:"postalCode" validate:"required"`
	Country       string `json:"country" validate:"required"`
	EmailAddress  string `json:"emailAddress,omitempty" validate:"required_without=PhoneNumber,omitempty,email"`
	PhoneNumber   string `json:"phoneNumber,omitempty" validate:"required_without=EmailAddress"`
}

// Request is everything the customer entered for one checkout attempt.
type Request struct {
	Offering           *reservation.Offering
	Entries            []reservation.Entry
	ParticipantsByDate map[reservation.DateKey][]Participant
	RegistrantOptions  []reservation.SelectedAddOn
	Billing            BillingInfo
	PaymentSourceID    string
	IdempotencyKey     string
}

// AddOns flattens the registrant's and every participant's add-on choices in
// selection order.
func (r *Request) AddOns() []reservation.SelectedAddOn {
	out := append([]reservation.SelectedAddOn(nil), r.RegistrantOptions...)
	for _, e := range r.Entries {
		for _, p := range r.ParticipantsByDate[e.Date] {
			out = append(out, p.SelectedOptions...)
		}
	}
	return out
}

type SubmittedSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type SubmittedDate struct {
	Date                 string         `json:"date"`
	NumberOfParticipants int            `json:"numberOfParticipants"`
	TimeSlot             *SubmittedSlot `json:"timeSlot,omitempty"`
}

type SubmittedParticipant struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SubmittedOption struct {
	CategoryName string `json:"categoryName"`
	ChoiceName   string `json:"choiceName"`
}

// Submission is the payload posted to the booking API. Participants are
// flattened in date order, so the first NumberOfParticipants belong to the
// first date and so on.
type Submission struct {
	OfferingID      string                 `json:"offeringId"`
	SelectedDates   []SubmittedDate        `json:"selectedDates"`
	Quantity        int                    `json:"quantity"`
	Total           float64                `json:"total"`
	Participants    []SubmittedParticipant `json:"participants"`
	SelectedOptions []SubmittedOption      `json:"selectedOptions"`
	BillingInfo     BillingInfo            `json:"billingInfo"`
	PaymentToken    string                 `json:"paymentToken"`
}

// BuildSubmission assembles the booking payload. Dates are sent as ISO 8601
// timestamps at business-timezone midnight.
func BuildSubmission(cal *reservation.Calendar, req *Request, pricing reservation.PricingBreakdown, token string) *Submission {
	s := &Submission{
		OfferingID:      req.Offering.ID,
		SelectedDates:   make([]SubmittedDate, 0, len(req.Entries)),
		Quantity:        pricing.TotalParticipantDays,
		Total:           pricing.GrandTotal.Float(),
		Participants:    make([]SubmittedParticipant, 0, pricing.TotalParticipantDays),
		SelectedOptions: []SubmittedOption{},
		BillingInfo:     req.Billing,
		PaymentToken:    token,
	}

	for _, e := range req.Entries {
		d := SubmittedDate{Date: cal.ISO(e.Date), NumberOfParticipants: e.ParticipantCount}
		if e.TimeSlot != nil {
			d.TimeSlot = &SubmittedSlot{StartTime: e.TimeSlot.StartTime, EndTime: e.TimeSlot.EndTime}
		}
		s.SelectedDates = append(s.SelectedDates, d)

		for _, p := range req.ParticipantsByDate[e.Date] {
			s.Participants = append(s.Participants, SubmittedParticipant{FirstName: p.FirstName, LastName: p.LastName})
		}
	}

	for _, opt := range req.AddOns() {
		s.SelectedOptions = append(s.SelectedOptions, SubmittedOption{CategoryName: opt.CategoryName, ChoiceName: opt.ChoiceName})
	}
	return s
}
