package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"artstudio-booking/internal/checkout"

	"go.uber.org/zap"
)

const bookingResponseLimit = 64 << 10

// BookingClient posts submissions to a remote booking API.
type BookingClient struct {
	rest *RESTClient
	log  *zap.Logger
}

func NewBookingClient(baseURL string, timeout time.Duration, client *http.Client, log *zap.Logger) *BookingClient {
	return &BookingClient{
		rest: NewRESTClient(baseURL, timeout, client),
		log:  log.With(zap.String("gateway", "booking")),
	}
}

// CreateBooking never retries; a failed call is reported to the caller as is.
func (c *BookingClient) CreateBooking(ctx context.Context, submission *checkout.Submission) (*checkout.CreateResponse, error) {
	req, err := c.rest.NewJSONRequest(ctx, http.MethodPost, "/api/bookings", submission)
	if err != nil {
		return nil, err
	}

	res, err := c.rest.Do(req)
	if err != nil {
		return nil, fmt.Errorf("booking request: %w", err)
	}
	defer res.Body.Close()

	raw, err := readBody(res, bookingResponseLimit)
	if err != nil {
		return nil, fmt.Errorf("read booking response: %w", err)
	}

	resp := normalizeCreateResponse(res.StatusCode, raw)
	if !resp.Success {
		c.log.Warn("Booking API rejected submission",
			zap.Int("status", res.StatusCode),
			zap.String("offering_id", submission.OfferingID),
			zap.String("error", resp.Error),
		)
	}
	return resp, nil
}

// bookingEnvelope covers both response shapes the booking API is known to
// send: {success, data, error} and {status, message, data, errors}.
type bookingEnvelope struct {
	Success *bool           `json:"success"`
	Status  *bool           `json:"status"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

// normalizeCreateResponse is the single adapter for booking-create answers.
func normalizeCreateResponse(status int, raw []byte) *checkout.CreateResponse {
	var env bookingEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &checkout.CreateResponse{Success: false}
	}

	ok := status/100 == 2
	switch {
	case env.Success != nil:
		ok = ok && *env.Success
	case env.Status != nil:
		ok = ok && *env.Status
	}

	if !ok {
		msg := errorText(env.Error)
		if msg == "" {
			msg = env.Message
		}
		return &checkout.CreateResponse{Success: false, Error: msg}
	}

	return &checkout.CreateResponse{Success: true, Data: decodeCreatedBooking(env.Data)}
}

// errorText accepts "error": "text" and "error": {"message": "text"}.
func errorText(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Message
	}
	return ""
}

// decodeCreatedBooking accepts the booking at data or nested at data.data.
func decodeCreatedBooking(raw json.RawMessage) *checkout.CreatedBooking {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var nested struct {
		Data *checkout.CreatedBooking `json:"data"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && nested.Data != nil && nested.Data.ID != "" {
		return nested.Data
	}

	var booking checkout.CreatedBooking
	if err := json.Unmarshal(raw, &booking); err != nil || booking.ID == "" {
		return nil
	}
	return &booking
}
