package service

import (
	"context"
	"encoding/json"

	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// EventPublisher is the external bus (NATS JetStream in production).
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IPublisherService interface {
	PublishCollectionLoaded(ctx context.Context, status dto.StatusResponse)
}

type publisherService struct {
	topicName string
	publisher message.Publisher
	bus       EventPublisher
	logger    logger.ILogger
}

// NewPublisherService fans collection events out to the in-process topic
// and, when bus is not nil, to the external event bus.
func NewPublisherService(topicName string, publisher message.Publisher, bus EventPublisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
		bus:       bus,
		logger:    log,
	}
}

func (s *publisherService) PublishCollectionLoaded(ctx context.Context, status dto.StatusResponse) {
	payload, err := json.Marshal(status)
	if err != nil {
		s.logger.Error("PublisherService", "Failed to marshal collection status", map[string]interface{}{"error": err})
		return
	}

	if err := s.publisher.Publish(s.topicName, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.logger.Error("PublisherService", "Failed to publish collection event", map[string]interface{}{"error": err, "topic": s.topicName})
	}

	if s.bus == nil {
		return
	}
	event := events.New(constant.EventTypeFormulationsLoaded, map[string]interface{}{
		"source": status.Source,
		"total":  status.Total,
	})
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("PublisherService", "Failed to publish to event bus", map[string]interface{}{"error": err})
	}
}
