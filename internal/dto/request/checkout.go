package request

type ParticipantRequest struct {
	FirstName       string                  `json:"firstName"`
	LastName        string                  `json:"lastName"`
	SelectedOptions []SelectedOptionRequest `json:"selectedOptions" validate:"dive"`
}

// DateParticipantsRequest names the attendees of one selected date.
type DateParticipantsRequest struct {
	Date         string               `json:"date" validate:"required"`
	Participants []ParticipantRequest `json:"participants" validate:"dive"`
}

type BillingInfoRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	AddressLine1  string `json:"addressLine1"`
	AddressLine2  string `json:"addressLine2,omitempty"`
	City          string `json:"city"`
	StateProvince string `json:"stateProvince"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	EmailAddress  string `json:"emailAddress,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
}

// CheckoutRequest carries only shape rules; participant names and billing
// fields are checked by the checkout flow so customers get one message at a time.
type CheckoutRequest struct {
	SelectedDates   []SelectedDateRequest     `json:"selectedDates" validate:"dive"`
	Participants    []DateParticipantsRequest `json:"participants" validate:"dive"`
	SelectedOptions []SelectedOptionRequest   `json:"selectedOptions" validate:"dive"`
	BillingInfo     BillingInfoRequest        `json:"billingInfo"`
	SourceID        string                    `json:"sourceId"`
	IdempotencyKey  string                    `json:"idempotencyKey,omitempty"`
}
