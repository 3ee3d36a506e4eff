package event

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/pkg/logger"
	"github.com/khoahotran/resume-portal/pkg/metrics"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ViewEventConsumer counts view events. Malformed messages are committed and skipped.
type ViewEventConsumer struct {
	reader messageReader
	logger logger.Logger
}

func NewViewEventConsumer(reader messageReader, log logger.Logger) *ViewEventConsumer {
	return &ViewEventConsumer{reader: reader, logger: log}
}

// Run blocks until ctx is done.
func (c *ViewEventConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		c.Handle(msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
		}
	}
}

// Handle decodes one message and records it.
func (c *ViewEventConsumer) Handle(msg kafka.Message) (service.ViewEvent, bool) {
	var ev service.ViewEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		c.logger.Warn("Skipping malformed view event", zap.String("key", string(msg.Key)), zap.Error(err))
		return ev, false
	}
	metrics.IncrementViewEventConsumed(ev.Resource, ev.Lang)
	c.logger.Info("View event",
		zap.String("resource", ev.Resource),
		zap.String("key", ev.Key),
		zap.String("lang", ev.Lang),
		zap.Bool("degraded", ev.Degraded),
		zap.String("request_id", ev.RequestID),
	)
	return ev, true
}
