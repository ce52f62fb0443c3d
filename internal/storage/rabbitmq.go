package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"talent-import-go/internal/config"
	"talent-import-go/internal/logger"
)

// MessageQueue is the publishing surface the import flow needs.
type MessageQueue interface {
	PublishMessage(ctx context.Context, exchangeName, routingKey string, message []byte, persistent bool) error
	PublishJSON(ctx context.Context, exchangeName, routingKey string, data interface{}, persistent bool) error
	EnsureExchange(exchangeName, exchangeType string, durable bool) error
	Close() error
}

var _ MessageQueue = (*RabbitMQ)(nil)

// RabbitMQ publishes import lifecycle events.
type RabbitMQ struct {
	conn          *amqp.Connection
	channelPool   sync.Pool
	exchangeMu    sync.Mutex
	exchangeMap   map[string]bool
	cfg           *config.RabbitMQConfig
	maxRetries    int
	retryInterval time.Duration
}

// NewRabbitMQ connects and declares the import events exchange.
func NewRabbitMQ(cfg *config.RabbitMQConfig) (*RabbitMQ, error) {
	if cfg == nil {
		return nil, fmt.Errorf("rabbitmq config must not be nil")
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("rabbitmq URL must not be empty")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ (%s): %w", cfg.URL, err)
	}

	mq := &RabbitMQ{
		conn:          conn,
		exchangeMap:   make(map[string]bool),
		cfg:           cfg,
		maxRetries:    cfg.MaxRetries,
		retryInterval: config.GetDuration(cfg.RetryInterval, 5*time.Second),
	}
	mq.channelPool = sync.Pool{
		New: func() interface{} {
			ch, chErr := conn.Channel()
			if chErr != nil {
				logger.Error().Err(chErr).Msg("failed to open RabbitMQ channel")
				return nil
			}
			return ch
		},
	}

	if cfg.ImportEventsExchange != "" {
		if err := mq.EnsureExchange(cfg.ImportEventsExchange, "topic", true); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return mq, nil
}

func (r *RabbitMQ) getChannel() *amqp.Channel {
	for i := 0; i < 3; i++ {
		v := r.channelPool.Get()
		if v == nil {
			continue
		}
		ch, ok := v.(*amqp.Channel)
		if ok && !ch.IsClosed() {
			return ch
		}
	}
	return nil
}

func (r *RabbitMQ) putChannel(ch *amqp.Channel) {
	if ch != nil && !ch.IsClosed() {
		r.channelPool.Put(ch)
	}
}

// Close closes the connection; pooled channels die with it.
func (r *RabbitMQ) Close() error {
	return r.conn.Close()
}

// EnsureExchange declares the exchange once per process.
func (r *RabbitMQ) EnsureExchange(exchangeName, exchangeType string, durable bool) error {
	r.exchangeMu.Lock()
	defer r.exchangeMu.Unlock()
	if r.exchangeMap[exchangeName] {
		return nil
	}

	ch := r.getChannel()
	if ch == nil {
		return fmt.Errorf("no RabbitMQ channel available")
	}
	defer r.putChannel(ch)

	if err := ch.ExchangeDeclare(exchangeName, exchangeType, durable, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchangeName, err)
	}
	r.exchangeMap[exchangeName] = true
	return nil
}

// PublishMessage publishes raw bytes to an exchange, retrying transient
// failures per the configured retry budget.
func (r *RabbitMQ) PublishMessage(ctx context.Context, exchangeName, routingKey string, message []byte, persistent bool) error {
	return publishRetry(ctx, r.maxRetries, r.retryInterval, func() error {
		return r.publishOnce(ctx, exchangeName, routingKey, message, persistent)
	})
}

// publishRetry runs fn up to maxRetries+1 times, waiting interval between
// attempts. Context cancellation cuts the wait short.
func publishRetry(ctx context.Context, maxRetries int, interval time.Duration, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt >= maxRetries {
			return err
		}
		logger.Warn().Err(err).Int("attempt", attempt+1).Msg("publish failed, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (r *RabbitMQ) publishOnce(ctx context.Context, exchangeName, routingKey string, message []byte, persistent bool) error {
	ch := r.getChannel()
	if ch == nil {
		return fmt.Errorf("no RabbitMQ channel available")
	}
	defer r.putChannel(ch)

	deliveryMode := amqp.Transient
	if persistent {
		deliveryMode = amqp.Persistent
	}

	err := ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         message,
		DeliveryMode: deliveryMode,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s/%s: %w", exchangeName, routingKey, err)
	}
	return nil
}

// PublishJSON marshals data and publishes it.
func (r *RabbitMQ) PublishJSON(ctx context.Context, exchangeName, routingKey string, data interface{}, persistent bool) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return r.PublishMessage(ctx, exchangeName, routingKey, body, persistent)
}
