package checkout

import (
	"context"
	"fmt"
	"sync"

	"artstudio-booking/internal/reservation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoChargeToken replaces a processor token when the total is zero.
const NoChargeToken = "NO_CHARGE"

// Result describes a booking that was created.
type Result struct {
	Booking    CreatedBooking
	Pricing    reservation.PricingBreakdown
	Submission *Submission
}

// Assembler drives one checkout attempt: validate, tokenize the payment,
// create the booking, then notify in the background. It is single use; once
// it reaches success or error a new attempt needs a new Assembler.
type Assembler struct {
	tokenizer  Tokenizer
	creator    BookingCreator
	notifier   Notifier
	dispatcher *Dispatcher
	cal        *reservation.Calendar
	log        *zap.Logger

	mu    sync.Mutex
	state State
	err   error
}

// NewAssembler wires an assembler. A nil notifier disables confirmations.
func NewAssembler(tokenizer Tokenizer, creator BookingCreator, notifier Notifier, dispatcher *Dispatcher, cal *reservation.Calendar, log *zap.Logger) *Assembler {
	return &Assembler{
		tokenizer:  tokenizer,
		creator:    creator,
		notifier:   notifier,
		dispatcher: dispatcher,
		cal:        cal,
		log:        log.With(zap.String("service", "checkout")),
		state:      StateIdle,
	}
}

// State returns the current step.
func (a *Assembler) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Err returns the error that moved the assembler into StateError.
func (a *Assembler) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

func (a *Assembler) advance(to State) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	next, err := transition(a.state, to)
	if err != nil {
		return err
	}
	a.state = next
	return nil
}

// fail records cause and moves to StateError.
func (a *Assembler) fail(cause error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if next, err := transition(a.state, StateError); err == nil {
		a.state = next
		a.err = cause
	}
	return cause
}

// Submit runs the checkout. Payment tokenization and booking creation are
// sequential and neither is retried.
func (a *Assembler) Submit(ctx context.Context, req Request) (*Result, error) {
	if err := a.advance(StateValidating); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadySubmitted, err)
	}

	if err := Validate(a.cal, &req); err != nil {
		a.log.Info("Checkout rejected by validation", zap.Error(err))
		return nil, a.fail(err)
	}

	pricing, err := reservation.ComputePricing(req.Entries, req.Offering, req.AddOns())
	if err != nil {
		a.log.Warn("Checkout priced with unknown add-on", zap.String("offering_id", req.Offering.ID), zap.Error(err))
		return nil, a.fail(&ValidationError{Field: "selectedOptions", Message: "One of the selected options is no longer offered"})
	}
	if pricing.Clamped {
		a.log.Warn("Discount exceeds subtotal, total clamped to zero",
			zap.String("offering_id", req.Offering.ID),
			zap.String("discount", pricing.DiscountAmount.String()),
		)
	}

	if err := a.advance(StateTokenizing); err != nil {
		return nil, a.fail(err)
	}
	token, err := a.tokenize(ctx, &req, pricing.GrandTotal)
	if err != nil {
		return nil, a.fail(err)
	}

	if err := a.advance(StateSubmitting); err != nil {
		return nil, a.fail(err)
	}
	submission := BuildSubmission(a.cal, &req, pricing, token)

	resp, err := a.creator.CreateBooking(ctx, submission)
	if err != nil {
		a.log.Error("Booking create call failed after payment",
			zap.String("offering_id", req.Offering.ID),
			zap.String("payment_token", token),
			zap.Error(err),
		)
		return nil, a.fail(newSubmissionError("", err))
	}
	if !resp.Success {
		a.log.Error("Booking rejected after payment",
			zap.String("offering_id", req.Offering.ID),
			zap.String("payment_token", token),
			zap.String("error", resp.Error),
		)
		return nil, a.fail(newSubmissionError(resp.Error, nil))
	}

	if err := a.advance(StateSuccess); err != nil {
		return nil, a.fail(err)
	}

	result := &Result{Pricing: pricing, Submission: submission}
	if resp.Data != nil {
		result.Booking = *resp.Data
	}

	a.log.Info("Booking created",
		zap.String("offering_id", req.Offering.ID),
		zap.String("booking_id", result.Booking.ID),
		zap.Int("dates", len(req.Entries)),
		zap.Int("participant_days", pricing.TotalParticipantDays),
		zap.String("total", pricing.GrandTotal.String()),
	)

	a.notify(ctx, &req, result)
	return result, nil
}

func (a *Assembler) tokenize(ctx context.Context, req *Request, amount reservation.Money) (string, error) {
	if amount <= 0 {
		return NoChargeToken, nil
	}

	key := req.IdempotencyKey
	if key == "" {
		key = uuid.New().String()
	}

	result, err := a.tokenizer.Tokenize(ctx, TokenizeRequest{
		SourceID:       req.PaymentSourceID,
		Amount:         amount,
		IdempotencyKey: key,
		BuyerEmail:     req.Billing.EmailAddress,
		Note:           req.Offering.Name,
	})
	if err != nil {
		a.log.Error("Payment tokenization failed", zap.String("offering_id", req.Offering.ID), zap.Error(err))
		return "", &PaymentError{Message: PaymentMessage(""), Err: fmt.Errorf("tokenize payment: %w", err)}
	}
	if result.Status != TokenStatusOK || result.Token == "" {
		perr := paymentErrorFrom(result)
		a.log.Warn("Payment declined",
			zap.String("offering_id", req.Offering.ID),
			zap.String("status", result.Status),
			zap.String("code", perr.Code),
		)
		return "", perr
	}
	return result.Token, nil
}

func (a *Assembler) notify(ctx context.Context, req *Request, result *Result) {
	if a.notifier == nil || a.dispatcher == nil {
		return
	}
	if result.Booking.ID == "" {
		a.log.Warn("Booking API returned no booking id, skipping confirmation", zap.String("offering_id", req.Offering.ID))
		return
	}

	confirmation := Confirmation{
		BookingID:        result.Booking.ID,
		CustomerID:       result.Booking.CustomerID,
		ConfirmationCode: result.Booking.ConfirmationCode,
		OfferingID:       req.Offering.ID,
		OfferingName:     req.Offering.Name,
		Email:            req.Billing.EmailAddress,
		Phone:            req.Billing.PhoneNumber,
		Total:            result.Pricing.GrandTotal.Float(),
	}

	a.dispatcher.Go(ctx, "confirmation", func(ctx context.Context) error {
		if err := a.notifier.SendConfirmation(ctx, confirmation); err != nil {
			return fmt.Errorf("%w: booking %s: %v", ErrNotification, confirmation.BookingID, err)
		}
		return nil
	})
}
