package checkout

import (
	"context"

	"artstudio-booking/internal/reservation"
)

// TokenStatusOK is the status of a successful tokenization.
const TokenStatusOK = "OK"

// TokenizeRequest asks the payment processor to turn a card source into a
// chargeable token for amount.
type TokenizeRequest struct {
	SourceID       string
	Amount         reservation.Money
	IdempotencyKey string
	BuyerEmail     string
	Note           string
}

// ProcessorError is one error reported by the payment processor.
type ProcessorError struct {
	Code     string
	Detail   string
	Category string
}

// TokenResult is the processor's answer. Token is set when Status is OK.
type TokenResult struct {
	Status string
	Token  string
	Errors []ProcessorError
}

// Tokenizer hands card details to the payment processor.
type Tokenizer interface {
	Tokenize(ctx context.Context, req TokenizeRequest) (*TokenResult, error)
}

// CreatedBooking identifies a booking the booking API accepted.
type CreatedBooking struct {
	ID               string `json:"id"`
	CustomerID       string `json:"customerId"`
	ConfirmationCode string `json:"confirmationCode,omitempty"`
}

// CreateResponse is the booking API contract.
type CreateResponse struct {
	Success bool            `json:"success"`
	Data    *CreatedBooking `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// BookingCreator posts an assembled submission to the booking API.
type BookingCreator interface {
	CreateBooking(ctx context.Context, submission *Submission) (*CreateResponse, error)
}

// Confirmation is what the notifier needs to send a confirmation email.
type Confirmation struct {
	BookingID        string  `json:"bookingId"`
	CustomerID       string  `json:"customerId"`
	ConfirmationCode string  `json:"confirmationCode,omitempty"`
	OfferingID       string  `json:"offeringId"`
	OfferingName     string  `json:"offeringName"`
	Email            string  `json:"email,omitempty"`
	Phone            string  `json:"phone,omitempty"`
	Total            float64 `json:"total"`
}

// Notifier triggers the confirmation email.
type Notifier interface {
	SendConfirmation(ctx context.Context, c Confirmation) error
}

// PaymentStatusApproved is the status of an authorized payment that has not
// been captured yet.
const PaymentStatusApproved = "APPROVED"

// Payment is a card payment as the processor reports it.
type Payment struct {
	ID       string
	Status   string
	Amount   reservation.Money
	Currency string
}

// PaymentLedger settles the payments handed to the booking API. GetPayment
// returns nil when the processor does not know the payment for this location.
type PaymentLedger interface {
	GetPayment(ctx context.Context, id string) (*Payment, error)
	CompletePayment(ctx context.Context, id string) error
	CancelPayment(ctx context.Context, id string) error
}
