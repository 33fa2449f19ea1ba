package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/reservation"

	square "github.com/square/square-go-sdk"
	squareclient "github.com/square/square-go-sdk/client"
	"github.com/square/square-go-sdk/core"
	"github.com/square/square-go-sdk/option"
	"go.uber.org/zap"
)

const (
	squareProductionURL = "https://connect.squareup.com"
	squareSandboxURL    = "https://connect.squareupsandbox.com"
)

// SquareConfig holds the credentials of a Square location.
type SquareConfig struct {
	AccessToken string
	LocationID  string
	Environment string
	BaseURL     string
	Currency    string
	Timeout     time.Duration
}

// SquareGateway authorizes card payments through the Square Payments API and
// settles them once the booking is recorded. Payments are created with
// autocomplete disabled; the payment id is the token handed to the booking API.
type SquareGateway struct {
	client   *squareclient.Client
	baseURL  string
	location string
	currency square.Currency
	log      *zap.Logger
}

func NewSquareGateway(cfg SquareConfig, httpClient *http.Client, log *zap.Logger) *SquareGateway {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = squareSandboxURL
		if strings.EqualFold(cfg.Environment, "production") {
			base = squareProductionURL
		}
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)}
	} else if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	currency := strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if currency == "" {
		currency = "USD"
	}

	return &SquareGateway{
		client: squareclient.NewClient(
			option.WithToken(cfg.AccessToken),
			option.WithBaseURL(base),
			option.WithHTTPClient(httpClient),
		),
		baseURL:  base,
		location: cfg.LocationID,
		currency: square.Currency(currency),
		log:      log.With(zap.String("gateway", "square")),
	}
}

func (g *SquareGateway) Tokenize(ctx context.Context, in checkout.TokenizeRequest) (*checkout.TokenResult, error) {
	resp, err := g.client.Payments.Create(ctx, &square.CreatePaymentRequest{
		SourceID:          in.SourceID,
		IdempotencyKey:    in.IdempotencyKey,
		AmountMoney:       g.money(in.Amount),
		Autocomplete:      square.Bool(false),
		LocationID:        optional(g.location),
		BuyerEmailAddress: optional(in.BuyerEmail),
		Note:              optional(in.Note),
	})
	if err != nil {
		status, sqErrs, ok := squareErrors(err)
		if !ok || len(sqErrs) == 0 {
			return nil, fmt.Errorf("square create payment: %w", err)
		}
		return g.declined(status, sqErrs), nil
	}
	if len(resp.Errors) > 0 {
		return g.declined(http.StatusOK, resp.Errors), nil
	}

	p := resp.Payment
	if p == nil || value(p.ID) == "" {
		return nil, errors.New("square create payment: response has no payment")
	}

	switch status := value(p.Status); status {
	case "FAILED", "CANCELED":
		return &checkout.TokenResult{
			Status: status,
			Errors: []checkout.ProcessorError{{Code: "GENERIC_DECLINE", Category: "PAYMENT_METHOD_ERROR"}},
		}, nil
	}

	g.log.Info("Square payment authorized",
		zap.String("payment_id", *p.ID),
		zap.String("status", value(p.Status)),
		zap.Int64("amount", int64(in.Amount)),
	)
	return &checkout.TokenResult{Status: checkout.TokenStatusOK, Token: *p.ID}, nil
}

// GetPayment returns nil for payments Square does not know and for payments
// taken at another location or in another currency.
func (g *SquareGateway) GetPayment(ctx context.Context, id string) (*checkout.Payment, error) {
	resp, err := g.client.Payments.Get(ctx, &square.GetPaymentsRequest{PaymentID: id})
	if err != nil {
		var apiErr *core.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusNotFound || apiErr.StatusCode == http.StatusBadRequest) {
			return nil, nil
		}
		return nil, fmt.Errorf("square get payment %s: %w", id, err)
	}
	if resp.Payment == nil {
		return nil, nil
	}

	p := resp.Payment
	payment := &checkout.Payment{ID: value(p.ID), Status: value(p.Status)}
	if m := p.AmountMoney; m != nil {
		if m.Amount != nil {
			payment.Amount = reservation.Money(*m.Amount)
		}
		if m.Currency != nil {
			payment.Currency = string(*m.Currency)
		}
	}

	if g.location != "" && value(p.LocationID) != g.location {
		g.log.Warn("Payment belongs to another location", zap.String("payment_id", id), zap.String("location_id", value(p.LocationID)))
		return nil, nil
	}
	if payment.Currency != string(g.currency) {
		g.log.Warn("Payment taken in another currency", zap.String("payment_id", id), zap.String("currency", payment.Currency))
		return nil, nil
	}
	return payment, nil
}

// CompletePayment captures an authorized payment.
func (g *SquareGateway) CompletePayment(ctx context.Context, id string) error {
	if _, err := g.client.Payments.Complete(ctx, &square.CompletePaymentRequest{PaymentID: id}); err != nil {
		return fmt.Errorf("square complete payment %s: %w", id, err)
	}
	g.log.Info("Square payment completed", zap.String("payment_id", id))
	return nil
}

// CancelPayment voids an authorized payment that was never captured.
func (g *SquareGateway) CancelPayment(ctx context.Context, id string) error {
	if _, err := g.client.Payments.Cancel(ctx, &square.CancelPaymentsRequest{PaymentID: id}); err != nil {
		return fmt.Errorf("square cancel payment %s: %w", id, err)
	}
	g.log.Info("Square payment cancelled", zap.String("payment_id", id))
	return nil
}

func (g *SquareGateway) declined(status int, sqErrs []*square.Error) *checkout.TokenResult {
	result := &checkout.TokenResult{Status: "FAILED"}
	for _, e := range sqErrs {
		if e == nil {
			continue
		}
		result.Errors = append(result.Errors, checkout.ProcessorError{
			Code:     string(e.Code),
			Detail:   value(e.Detail),
			Category: string(e.Category),
		})
	}
	if len(result.Errors) > 0 {
		g.log.Warn("Square rejected payment",
			zap.Int("status", status),
			zap.String("code", result.Errors[0].Code),
			zap.String("category", result.Errors[0].Category),
		)
	}
	return result
}

func (g *SquareGateway) money(amount reservation.Money) *square.Money {
	currency := g.currency
	return &square.Money{Amount: square.Int64(int64(amount)), Currency: &currency}
}

// squareErrors decodes the error list Square sends with a non-2xx answer.
func squareErrors(err error) (int, []*square.Error, bool) {
	var apiErr *core.APIError
	if !errors.As(err, &apiErr) {
		return 0, nil, false
	}
	inner := errors.Unwrap(apiErr)
	if inner == nil {
		return apiErr.StatusCode, nil, true
	}
	var body struct {
		Errors []*square.Error `json:"errors"`
	}
	if json.Unmarshal([]byte(inner.Error()), &body) != nil {
		return apiErr.StatusCode, nil, true
	}
	return apiErr.StatusCode, body.Errors, true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
