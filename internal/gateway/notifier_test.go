package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"artstudio-booking/internal/checkout"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailClient_SendConfirmation(t *testing.T) {
	var got checkout.Confirmation
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/send-confirmation-email", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewEmailClient(srv.URL, "", 0, nil)
	err := client.SendConfirmation(context.Background(), checkout.Confirmation{BookingID: "bk-1", CustomerID: "cus-1"})
	require.NoError(t, err)
	assert.Equal(t, "bk-1", got.BookingID)
	assert.Equal(t, "cus-1", got.CustomerID)
}

func TestEmailClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "mailer offline", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewEmailClient(srv.URL, "/mail", 0, nil)
	err := client.SendConfirmation(context.Background(), checkout.Confirmation{BookingID: "bk-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailer offline")
}

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaNotifier_PublishesKeyedEvent(t *testing.T) {
	writer := &recordingWriter{}
	n := &KafkaNotifier{writer: writer}

	err := n.SendConfirmation(context.Background(), checkout.Confirmation{BookingID: "bk-9", Email: "ada@example.com"})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "bk-9", string(msg.Key))

	var event confirmationEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "booking", event.Entity)
	assert.Equal(t, "confirmed", event.Action)
	assert.Equal(t, "ada@example.com", event.Data.Email)
}

func TestKafkaNotifier_WriteFailure(t *testing.T) {
	n := &KafkaNotifier{writer: &recordingWriter{err: errors.New("no brokers")}}

	err := n.SendConfirmation(context.Background(), checkout.Confirmation{BookingID: "bk-9"})
	assert.ErrorContains(t, err, "bk-9")
}
