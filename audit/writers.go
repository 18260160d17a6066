package audit

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RedisStreamWriter appends each event as JSON to a redis stream
type RedisStreamWriter struct {
	Client backend.Cmdable
	Stream string
	// MaxLen caps the stream approximately; zero keeps everything
	MaxLen int64
}

func (w *RedisStreamWriter) Write(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	args := &backend.XAddArgs{
		Stream: w.Stream,
		ID:     "*",
		Values: map[string]interface{}{
			"type":  event.Type,
			"event": string(payload),
		},
	}
	if w.MaxLen > 0 {
		args.MaxLen = w.MaxLen
		args.Approx = true
	}

	if err := w.Client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", w.Stream, err)
	}
	return nil
}

// LogWriter emits each event as a structured log line
type LogWriter struct {
	Logger log.FieldLogger
}

func (w *LogWriter) Write(_ context.Context, event Event) error {
	logger := w.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	fields := log.Fields{
		"type":             event.Type,
		"actor_guid":       event.Actor.Guid,
		"app_guid":         event.Actee.Guid,
		"route_guid":       event.Metadata.RouteGuid,
		"destination_guid": event.Metadata.DestinationGuid,
		"process_type":     event.Metadata.ProcessType,
	}
	if event.Metadata.AppPort != nil {
		fields["app_port"] = *event.Metadata.AppPort
	}
	if event.Metadata.Weight != nil {
		fields["weight"] = *event.Metadata.Weight
	}
	if event.Metadata.ManifestTriggered {
		fields["manifest_triggered"] = true
	}
	logger.WithFields(fields).Info("audit event")
	return nil
}
