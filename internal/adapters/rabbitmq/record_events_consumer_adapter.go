package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"listing-service/internal/contracts"
	"listing-service/internal/core/port"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_consumer"
)

// RecordEventsConsumerAdapter listens for record_changed events from the
// admin CRUD surface and invalidates the snapshot so the next read
// re-observes the raw stores. Raw records remain the system of record;
// this adapter never touches them.
type RecordEventsConsumerAdapter struct {
	consumer *rabbitmq_consumer.EventConsumer
	snapshot port.SnapshotPort
	logger   port.LoggerPort
}

func NewRecordEventsConsumerAdapter(cfg rabbitmq_consumer.ConsumerConfig,
	snapshot port.SnapshotPort,
	baseLogger port.LoggerPort,
	connManager *rabbitmq_common.ConnectionManager) (*RecordEventsConsumerAdapter, error) {

	logger := baseLogger.WithFields(port.Fields{"component": "record_events_listener"})
	if cfg.Logger == nil {
		cfg.Logger = NewPkgLoggerBridge(logger)
	}

	consumer, err := rabbitmq_consumer.NewEventConsumer(cfg, connManager)
	if err != nil {
		return nil, fmt.Errorf("record events adapter: %w", err)
	}

	return &RecordEventsConsumerAdapter{
		consumer: consumer,
		snapshot: snapshot,
		logger:   logger,
	}, nil
}

func (a *RecordEventsConsumerAdapter) Start() error {
	return a.consumer.Start(a.handle)
}

func (a *RecordEventsConsumerAdapter) handle(ctx context.Context, body []byte) error {
	if err := contracts.ValidateEvent("record_changed", body); err != nil {
		// An invalid event is dropped, not retried: the producer has a bug
		// and redelivery would fail the same way.
		a.logger.Warn("Dropping invalid record event", port.Fields{"error": err.Error()})
		return err
	}

	var event RecordChangedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		a.logger.Warn("Dropping unparseable record event", port.Fields{"error": err.Error()})
		return err
	}

	a.snapshot.Invalidate()
	a.logger.Info("Snapshot invalidated by record event", port.Fields{
		"kind":      event.Kind,
		"record_id": event.RecordID,
		"action":    event.Action,
	})
	return nil
}

func (a *RecordEventsConsumerAdapter) Close() error {
	return a.consumer.Close()
}
