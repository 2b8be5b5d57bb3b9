package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventHandler is a function that processes an event.
type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber reads events back from the FORMULARY stream.
type Subscriber struct {
	nc  *nats.Conn
	js  jetstream.JetStream
	log logger.ILogger
}

func NewSubscriber(url string, log logger.ILogger) (*Subscriber, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Subscriber{nc: nc, js: js, log: log}, nil
}

// Tail delivers every event on subject, oldest first when replay is set,
// until ctx is done. The consumer is ephemeral and ordered, nothing is
// acknowledged on behalf of other readers.
func (s *Subscriber) Tail(ctx context.Context, subject string, replay bool, handler EventHandler) error {
	cfg := jetstream.OrderedConsumerConfig{
		FilterSubjects: []string{subject},
		DeliverPolicy:  jetstream.DeliverNewPolicy,
	}
	if replay {
		cfg.DeliverPolicy = jetstream.DeliverAllPolicy
	}

	consumer, err := s.js.OrderedConsumer(ctx, StreamName, cfg)
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		event, err := DecodeEvent(msg.Data())
		if err != nil {
			s.log.Warn("NatsSubscriber", "Skipping undecodable event", map[string]interface{}{
				"subject": msg.Subject(),
				"error":   err.Error(),
			})
			return
		}
		if err := handler(ctx, event); err != nil {
			s.log.Error("NatsSubscriber", "Handler failed", map[string]interface{}{
				"subject": msg.Subject(),
				"error":   err.Error(),
			})
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	defer consumeCtx.Stop()

	<-ctx.Done()
	return nil
}

// DecodeEvent parses the envelope written by Publisher.Publish.
func DecodeEvent(data []byte) (events.BaseEvent, error) {
	var envelope struct {
		Type       string                 `json:"type"`
		Payload    map[string]interface{} `json:"payload"`
		OccurredAt time.Time              `json:"occurred_at"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return events.BaseEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if envelope.Type == "" {
		return events.BaseEvent{}, fmt.Errorf("event has no type")
	}
	return events.BaseEvent{
		Type:       envelope.Type,
		Data:       envelope.Payload,
		OccurredAt: envelope.OccurredAt,
	}, nil
}

// Close closes the connection.
func (s *Subscriber) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}
