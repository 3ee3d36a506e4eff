package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/adapters/event"
	"github.com/khoahotran/resume-portal/internal/config"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer logger.Sync(appLogger)

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Kafka brokers are required for the worker", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Kafka Consumer
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicViewEvents,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicViewEvents), zap.String("group_id", cfg.Kafka.GroupID))

	consumer := event.NewViewEventConsumer(reader, appLogger)
	if err := consumer.Run(ctx); err != nil {
		appLogger.Error("View event consumer stopped", err)
	}
	appLogger.Info("Worker stopped")
}
