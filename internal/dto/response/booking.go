package response

import "time"

type CreatedBookingData struct {
	ID               string `json:"id"`
	CustomerID       string `json:"customerId"`
	ConfirmationCode string `json:"confirmationCode"`
}

// BookingCreateResponse is the booking API contract answered by POST /api/bookings.
type BookingCreateResponse struct {
	Success bool                `json:"success"`
	Data    *CreatedBookingData `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
}

type BookingDateResponse struct {
	Date             string                `json:"date"`
	ParticipantCount int                   `json:"participantCount"`
	TimeSlot         *SelectedSlotResponse `json:"timeSlot,omitempty"`
}

type BookingParticipantResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type BookingOptionResponse struct {
	CategoryName string  `json:"categoryName"`
	ChoiceName   string  `json:"choiceName"`
	Price        float64 `json:"price"`
}

type CustomerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type BookingDetailResponse struct {
	ID               string                       `json:"id"`
	ConfirmationCode string                       `json:"confirmationCode"`
	ReservationID    string                       `json:"reservationId"`
	Customer         *CustomerResponse            `json:"customer,omitempty"`
	Quantity         int                          `json:"quantity"`
	Total            float64                      `json:"total"`
	Status           string                       `json:"status"`
	Dates            []BookingDateResponse        `json:"dates"`
	Participants     []BookingParticipantResponse `json:"participants"`
	SelectedOptions  []BookingOptionResponse      `json:"selectedOptions"`
	CreatedAt        time.Time                    `json:"createdAt"`
}
