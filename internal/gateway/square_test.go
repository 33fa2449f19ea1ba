package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSquare(t *testing.T, handler http.HandlerFunc) *SquareGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSquareGateway(SquareConfig{
		AccessToken: "sq-token",
		LocationID:  "LOC1",
		BaseURL:     srv.URL,
	}, nil, zap.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func TestSquareTokenize_Authorized(t *testing.T) {
	var got struct {
		SourceID       string `json:"source_id"`
		IdempotencyKey string `json:"idempotency_key"`
		AmountMoney    struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		} `json:"amount_money"`
		Autocomplete *bool  `json:"autocomplete"`
		LocationID   string `json:"location_id"`
	}
	sq := newSquare(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/payments", r.URL.Path)
		assert.Equal(t, "Bearer sq-token", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		writeJSON(w, http.StatusOK, `{"payment":{"id":"pay_abc","status":"APPROVED"}}`)
	})

	result, err := sq.Tokenize(context.Background(), checkout.TokenizeRequest{
		SourceID:       "cnon:ok",
		Amount:         reservation.MoneyFromFloat(112.5),
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, checkout.TokenStatusOK, result.Status)
	assert.Equal(t, "pay_abc", result.Token)

	assert.Equal(t, "cnon:ok", got.SourceID)
	assert.Equal(t, int64(11250), got.AmountMoney.Amount)
	assert.Equal(t, "USD", got.AmountMoney.Currency)
	require.NotNil(t, got.Autocomplete)
	assert.False(t, *got.Autocomplete)
	assert.Equal(t, "LOC1", got.LocationID)
	assert.Equal(t, "key-1", got.IdempotencyKey)
}

func TestSquareTokenize_Declined(t *testing.T) {
	sq := newSquare(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusPaymentRequired, `{"errors":[{"category":"PAYMENT_METHOD_ERROR","code":"CVV_FAILURE","detail":"Card verification code check failed."}]}`)
	})

	result, err := sq.Tokenize(context.Background(), checkout.TokenizeRequest{SourceID: "cnon:bad", Amount: 500})
	require.NoError(t, err)
	assert.NotEqual(t, checkout.TokenStatusOK, result.Status)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "CVV_FAILURE", result.Errors[0].Code)
	assert.Equal(t, "PAYMENT_METHOD_ERROR", result.Errors[0].Category)
}

func TestSquareTokenize_FailedPaymentIsGenericDecline(t *testing.T) {
	sq := newSquare(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"payment":{"id":"pay_abc","status":"FAILED"}}`)
	})

	result, err := sq.Tokenize(context.Background(), checkout.TokenizeRequest{SourceID: "cnon:ok", Amount: 500})
	require.NoError(t, err)
	assert.Equal(t, "FAILED", result.Status)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "GENERIC_DECLINE", result.Errors[0].Code)
}

func TestSquareTokenize_UnreadableError(t *testing.T) {
	sq := newSquare(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`<html>unauthorized</html>`))
	})

	_, err := sq.Tokenize(context.Background(), checkout.TokenizeRequest{SourceID: "cnon:ok", Amount: 500})
	assert.Error(t, err)
}

func TestSquareGetPayment(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   *checkout.Payment
	}{
		{
			name:   "approved",
			status: http.StatusOK,
			body:   `{"payment":{"id":"pay_abc","status":"APPROVED","location_id":"LOC1","amount_money":{"amount":8550,"currency":"USD"}}}`,
			want:   &checkout.Payment{ID: "pay_abc", Status: "APPROVED", Amount: 8550, Currency: "USD"},
		},
		{
			name:   "unknown payment",
			status: http.StatusNotFound,
			body:   `{"errors":[{"category":"INVALID_REQUEST_ERROR","code":"NOT_FOUND","detail":"Could not find payment"}]}`,
		},
		{
			name:   "other location",
			status: http.StatusOK,
			body:   `{"payment":{"id":"pay_abc","status":"APPROVED","location_id":"LOC2","amount_money":{"amount":8550,"currency":"USD"}}}`,
		},
		{
			name:   "other currency",
			status: http.StatusOK,
			body:   `{"payment":{"id":"pay_abc","status":"APPROVED","location_id":"LOC1","amount_money":{"amount":8550,"currency":"CAD"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := newSquare(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v2/payments/pay_abc", r.URL.Path)
				writeJSON(w, tt.status, tt.body)
			})

			got, err := sq.GetPayment(context.Background(), "pay_abc")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSquareSettlement(t *testing.T) {
	var paths []string
	sq := newSquare(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
		writeJSON(w, http.StatusOK, `{"payment":{"id":"pay_abc","status":"COMPLETED"}}`)
	})

	require.NoError(t, sq.CompletePayment(context.Background(), "pay_abc"))
	require.NoError(t, sq.CancelPayment(context.Background(), "pay_def"))
	assert.Equal(t, []string{"/v2/payments/pay_abc/complete", "/v2/payments/pay_def/cancel"}, paths)
}

func TestSquareSettlement_Rejected(t *testing.T) {
	sq := newSquare(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"errors":[{"category":"INVALID_REQUEST_ERROR","code":"BAD_REQUEST","detail":"Payment is already completed"}]}`)
	})

	assert.Error(t, sq.CompletePayment(context.Background(), "pay_abc"))
	assert.Error(t, sq.CancelPayment(context.Background(), "pay_abc"))
}

func TestNewSquareGateway_Environment(t *testing.T) {
	prod := NewSquareGateway(SquareConfig{Environment: "production"}, nil, zap.NewNop())
	assert.Equal(t, squareProductionURL, prod.baseURL)

	sandbox := NewSquareGateway(SquareConfig{}, nil, zap.NewNop())
	assert.Equal(t, squareSandboxURL, sandbox.baseURL)
	assert.Equal(t, "USD", string(sandbox.currency))
}
