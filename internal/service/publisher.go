package service

import (
	"context"

	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/rs/zerolog/log"
)

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, msg dto.KafkaMessage) error {
	return nil
}

// publish runs after the write has committed, so a broker failure is logged
// and never turns a successful request into an error.
func (s *CatalogServiceImpl) publish(ctx context.Context, eventType string, data interface{}) {
	err := s.publisher.Publish(ctx, dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "publish").Str("event_type", eventType).Msg("failed to publish catalog event")
	}
}
