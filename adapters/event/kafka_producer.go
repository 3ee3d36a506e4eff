package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/internal/config"
	"github.com/khoahotran/resume-portal/pkg/logger"
	"github.com/khoahotran/resume-portal/pkg/metrics"
)

const (
	TopicViewEvents = "view.events"
)

// messageWriter is the part of kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ViewEventsWriter messageWriter
	logger           logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	client := &KafkaProducerClient{logger: log}
	// Async keeps the broker off the request path; delivery failures only surface in
	// Completion.
	client.ViewEventsWriter = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        TopicViewEvents,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Completion:   client.reportDelivery,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers))

	return client, nil
}

// reportDelivery is the async writer's completion hook.
func (c *KafkaProducerClient) reportDelivery(msgs []kafka.Message, err error) {
	if err != nil {
		metrics.AddViewEventsPublished("failed", len(msgs))
		c.logger.Warn("Failed to deliver view events",
			zap.Int("count", len(msgs)), zap.Error(err))
		return
	}
	metrics.AddViewEventsPublished("delivered", len(msgs))
}

func (c *KafkaProducerClient) PublishView(ctx context.Context, ev service.ViewEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal view event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(ev.Resource),
		Value: payload,
		Time:  ev.At,
	}
	if err := c.ViewEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish view event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ViewEventsWriter != nil {
		if err := c.ViewEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka writer", err)
		}
	}
	c.logger.Info("Closed Kafka Producers")
}
