package rabbitmq_consumer

import (
	"context"
	"fmt"
	"sync"

	"listing-service/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one delivery body. A non-nil error rejects the message
// without requeue.
type Handler func(ctx context.Context, body []byte) error

// ConsumerConfig configures one queue consumer.
type ConsumerConfig struct {
	rabbitmq_common.Config

	// Queue settings.
	QueueName    string
	DeclareQueue bool
	DurableQueue bool
	QueueArgs    amqp.Table

	// Exchange binding (skipped when ExchangeNameForBind is empty).
	ExchangeNameForBind    string
	DeclareExchangeForBind bool
	ExchangeTypeForBind    string
	DurableExchangeForBind bool
	RoutingKeyForBind      string

	// QoS.
	PrefetchCount int

	ConsumerTag string

	Logger rabbitmq_common.Logger
}

// EventConsumer consumes one queue on a channel from the shared connection.
type EventConsumer struct {
	config  ConsumerConfig
	channel *amqp.Channel
	wg      sync.WaitGroup
	cancel  context.CancelFunc

	Logger rabbitmq_common.Logger
}

func NewEventConsumer(cfg ConsumerConfig, connManager *rabbitmq_common.ConnectionManager) (*EventConsumer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("event consumer: invalid config: %w", err)
	}
	if !cfg.DeclareQueue && cfg.QueueName == "" {
		return nil, fmt.Errorf("event consumer: queue name is required if DeclareQueue is false")
	}
	if cfg.ExchangeNameForBind != "" && cfg.DeclareExchangeForBind && cfg.ExchangeTypeForBind == "" {
		return nil, fmt.Errorf("event consumer: exchange type is required if declaring an exchange for binding")
	}

	_, channel, err := connManager.GetChannel()
	if err != nil {
		return nil, fmt.Errorf("event consumer: failed to get channel: %w", err)
	}

	c := &EventConsumer{config: cfg, channel: channel, Logger: logger}
	if err := c.setupTopology(); err != nil {
		channel.Close()
		return nil, err
	}
	return c, nil
}

func (c *EventConsumer) setupTopology() error {
	if c.config.DeclareQueue {
		if _, err := c.channel.QueueDeclare(
			c.config.QueueName,
			c.config.DurableQueue,
			false, // autoDelete
			false, // exclusive
			false, // noWait
			c.config.QueueArgs,
		); err != nil {
			return fmt.Errorf("event consumer: failed to declare queue %q: %w", c.config.QueueName, err)
		}
	}

	if c.config.ExchangeNameForBind != "" {
		if c.config.DeclareExchangeForBind {
			if err := c.channel.ExchangeDeclare(
				c.config.ExchangeNameForBind,
				c.config.ExchangeTypeForBind,
				c.config.DurableExchangeForBind,
				false, // autoDelete
				false, // internal
				false, // noWait
				nil,
			); err != nil {
				return fmt.Errorf("event consumer: failed to declare exchange %q: %w", c.config.ExchangeNameForBind, err)
			}
		}
		if err := c.channel.QueueBind(
			c.config.QueueName,
			c.config.RoutingKeyForBind,
			c.config.ExchangeNameForBind,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("event consumer: failed to bind queue %q: %w", c.config.QueueName, err)
		}
	}

	if c.config.PrefetchCount > 0 {
		if err := c.channel.Qos(c.config.PrefetchCount, 0, false); err != nil {
			return fmt.Errorf("event consumer: failed to set QoS: %w", err)
		}
	}

	return nil
}

// Start begins consuming in a background goroutine. The handler is invoked
// per delivery; errors reject without requeue (the feed is idempotent, a
// dropped message is not worth a retry topology).
func (c *EventConsumer) Start(handler Handler) error {
	deliveries, err := c.channel.Consume(
		c.config.QueueName,
		c.config.ConsumerTag,
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("event consumer: failed to start consuming: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for delivery := range deliveries {
			if err := handler(ctx, delivery.Body); err != nil {
				c.Logger.Warn("Handler rejected delivery", "queue", c.config.QueueName, "error", err.Error())
				_ = delivery.Nack(false, false)
				continue
			}
			_ = delivery.Ack(false)
		}
		c.Logger.Debug("Delivery channel closed", "queue", c.config.QueueName)
	}()

	return nil
}

// Close stops consumption and waits for the in-flight handler to finish.
func (c *EventConsumer) Close() error {
	if c.cancel != nil {
		c.cancel()
	}
	err := c.channel.Close()
	c.wg.Wait()
	return err
}
