package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/polkiloo/freelancehub/internal/domain/model"
)

const (
	eventSource      = "freelancehub/bookings"
	eventSpecVersion = "1.0"
	eventTypePrefix  = "freelancehub.booking."
)

// messageWriter is the part of *kafkago.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// CloudEvent is the envelope every booking event is published in.
type CloudEvent struct {
	SpecVersion     string             `json:"specversion"`
	ID              string             `json:"id"`
	Source          string             `json:"source"`
	Type            string             `json:"type"`
	Time            time.Time          `json:"time"`
	DataContentType string             `json:"datacontenttype"`
	Data            model.BookingEvent `json:"data"`
}

// KafkaPublisher writes booking events to a Kafka topic keyed by booking id,
// so events of one booking keep their order within a partition.
type KafkaPublisher struct {
	writer messageWriter
	newID  func() uuid.UUID
}

// NewKafkaPublisher builds a publisher backed by a kafka-go writer.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return newKafkaPublisher(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	})
}

func newKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w, newID: uuid.New}
}

// Publish sends event wrapped in a CloudEvent envelope.
func (p *KafkaPublisher) Publish(ctx context.Context, event model.BookingEvent) error {
	envelope := CloudEvent{
		SpecVersion:     eventSpecVersion,
		ID:              p.newID().String(),
		Source:          eventSource,
		Type:            EventType(event.To),
		Time:            event.OccurredAt,
		DataContentType: "application/json",
		Data:            event,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(event.BookingID.String()),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "ce_type", Value: []byte(envelope.Type)},
			{Key: "ce_id", Value: []byte(envelope.ID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write booking event: %w", err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// EventType names the CloudEvent type for a booking entering status.
func EventType(status model.BookingStatus) string {
	return eventTypePrefix + string(status)
}
