package request

type BookingSlotRequest struct {
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

type BookingDateRequest struct {
	Date                 string              `json:"date" validate:"required"`
	NumberOfParticipants int                 `json:"numberOfParticipants" validate:"min=1"`
	TimeSlot             *BookingSlotRequest `json:"timeSlot,omitempty"`
}

type BookingParticipantRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type BookingBillingRequest struct {
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

// CreateBookingRequest is the booking submission posted by checkout.
// Participants are flattened in date order.
type CreateBookingRequest struct {
	OfferingID      string                      `json:"offeringId" validate:"required,uuid"`
	SelectedDates   []BookingDateRequest        `json:"selectedDates" validate:"required,min=1,dive"`
	Quantity        int                         `json:"quantity" validate:"min=1"`
	Total           float64                     `json:"total" validate:"gte=0"`
	Participants    []BookingParticipantRequest `json:"participants" validate:"required,min=1,dive"`
	SelectedOptions []SelectedOptionRequest     `json:"selectedOptions" validate:"dive"`
	BillingInfo     BookingBillingRequest       `json:"billingInfo"`
	PaymentToken    string                      `json:"paymentToken" validate:"required"`
}
