package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/segmentio/kafka-go"
)

const publishTimeout = 5 * time.Second

// Producer writes catalog events to a single topic, keyed by event type.
type Producer struct {
	writer *kafka.Writer
}

func CreateKafkaProducer(conf config.KafkaConfig) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(conf.BrokerAddress),
			Topic:                  conf.BrokerTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           publishTimeout,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, msg dto.KafkaMessage) error {
	m, err := encode(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.writer.WriteMessages(ctx, m)
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func encode(msg dto.KafkaMessage) (kafka.Message, error) {
	value, err := json.Marshal(msg)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	return kafka.Message{
		Key:   []byte(msg.EventType),
		Value: value,
		Time:  time.Now(),
	}, nil
}
