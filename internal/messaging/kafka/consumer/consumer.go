package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-pms/internal/events"
	"go-pms/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type AnalysisRunner interface {
	RunRequested(ctx context.Context, event events.KPIAnalysisRequestedEvent) error
}

var (
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 30 * time.Second
)

// backoff returns the wait before retry number attempt (starting at 1).
func backoff(attempt int) time.Duration {
	d := retryBaseDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= retryMaxDelay {
			return retryMaxDelay
		}
	}
	return d
}

// sleepCtx waits for d or until ctx is done. It reports whether the full
// wait elapsed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// ConsumeAnalysisRequests runs bulk KPI analysis for each request event.
// Undecodable messages are committed and dropped. A failed run is retried
// in place with capped exponential backoff and the reader does not advance
// until it succeeds, so a later commit never skips it. Fetch errors back
// off the same way.
func ConsumeAnalysisRequests(
	ctx context.Context,
	reader MessageReader,
	runner AnalysisRunner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.kpi_analysis")
	log.Info("kpi analysis consumer started")

	fetchFailures := 0
	for ctx.Err() == nil {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			fetchFailures++
			wait := backoff(fetchFailures)
			log.Error("fetch kpi analysis message failed",
				zap.Int("attempt", fetchFailures),
				zap.Duration("retry_in", wait),
				zap.Error(err),
			)
			sleepCtx(ctx, wait)
			continue
		}
		fetchFailures = 0

		handleAnalysisMessage(ctx, reader, runner, msg, log)
	}
	log.Info("kpi analysis consumer stopped")
}

func handleAnalysisMessage(
	ctx context.Context,
	reader MessageReader,
	runner AnalysisRunner,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.KPIAnalysisRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.EventType != events.EventKPIAnalysisRequested {
		log.Error("decode kpi_analysis_requested event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	runCtx := contextutil.WithRequestID(ctx, event.RequestID)
	runCtx = contextutil.WithUserID(runCtx, event.RequestedBy)

	for attempt := 1; ; attempt++ {
		err := runner.RunRequested(runCtx, event)
		if err == nil {
			break
		}
		wait := backoff(attempt)
		log.Error("kpi analysis run failed",
			zap.String("request_id", event.RequestID),
			zap.String("employee_id", event.EmployeeID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)
		// left uncommitted on shutdown, redelivered after restart
		if !sleepCtx(ctx, wait) {
			return
		}
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit kpi analysis message failed", zap.Error(err))
		return
	}

	log.Info("kpi analysis request processed",
		zap.String("request_id", event.RequestID),
		zap.String("employee_id", event.EmployeeID),
	)
}
