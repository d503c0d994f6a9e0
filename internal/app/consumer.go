package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-pms/internal/config"
	"go-pms/internal/events"
	"go-pms/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	in, err := Connect(cfg, true)
	if err != nil {
		return err
	}
	defer in.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	m, err := buildModules(in)
	if err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.KPIAnalysisRequestedTopic,
		GroupID:        "go-pms-kpi-analysis",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAnalysisRequests(ctx, reader, m.Analyzer, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
