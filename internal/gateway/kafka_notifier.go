package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"artstudio-booking/internal/checkout"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes confirmation requests for the mailer to consume.
type KafkaNotifier struct {
	writer messageWriter
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

type confirmationEvent struct {
	Entity     string                `json:"entity"`
	Action     string                `json:"action"`
	ResourceID string                `json:"resourceId"`
	Data       checkout.Confirmation `json:"data"`
}

// SendConfirmation keys the message by booking id, keeping every event of one
// booking on one partition.
func (n *KafkaNotifier) SendConfirmation(ctx context.Context, confirmation checkout.Confirmation) error {
	value, err := json.Marshal(confirmationEvent{
		Entity:     "booking",
		Action:     "confirmed",
		ResourceID: confirmation.BookingID,
		Data:       confirmation,
	})
	if err != nil {
		return fmt.Errorf("encode confirmation event: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(confirmation.BookingID),
		Value: value,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("publish confirmation for booking %s: %w", confirmation.BookingID, err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
