package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Envelope is the message value published for every ledger event.
type Envelope struct {
	ID          uuid.UUID       `json:"id"`
	Aggregate   string          `json:"aggregate"`
	AggregateID uuid.UUID       `json:"aggregate_id"`
	EventType   string          `json:"event_type"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// Publish keys messages by aggregate id so events of one aggregate share a partition.
func (k *KafkaPublisher) Publish(ctx context.Context, event domain.LedgerEvent) error {
	msg, err := json.Marshal(Envelope{
		ID:          event.ID,
		Aggregate:   event.Aggregate,
		AggregateID: event.AggregateID,
		EventType:   event.EventType,
		OccurredAt:  event.CreatedAt,
		Payload:     event.Payload,
	})
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AggregateID.String()),
		Value: msg,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
