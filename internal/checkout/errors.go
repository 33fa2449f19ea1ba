package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrPayment           = errors.New("payment failed")
	ErrSubmission        = errors.New("booking submission failed")
	ErrNotification      = errors.New("confirmation notification failed")
	ErrInvalidTransition = errors.New("invalid checkout transition")

	// ErrAlreadySubmitted is returned when Submit is called on an assembler
	// that already left idle. A new attempt needs a new assembler.
	ErrAlreadySubmitted = errors.New("checkout already submitted")
)

const (
	genericBookingFailure = "We could not complete your booking."
	contactSupport        = "Your payment may already have been processed. Please contact us before trying again so you are not charged twice."
)

// ValidationError blocks submission before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PaymentError is a tokenization failure. The customer may try again with a
// new assembler; nothing was charged or booked.
type PaymentError struct {
	Code    string
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	return e.Message
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

func (e *PaymentError) Is(target error) bool {
	return target == ErrPayment
}

// SubmissionError is a booking-create failure after payment was tokenized.
// Message is the server's error verbatim when it sent one.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmission
}

// Guidance is the follow-up shown next to the message.
func (e *SubmissionError) Guidance() string {
	return contactSupport
}

func newSubmissionError(serverMessage string, err error) *SubmissionError {
	msg := serverMessage
	if msg == "" {
		msg = genericBookingFailure
	}
	if err != nil {
		err = fmt.Errorf("create booking: %w", err)
	}
	return &SubmissionError{Message: msg, Err: err}
}
