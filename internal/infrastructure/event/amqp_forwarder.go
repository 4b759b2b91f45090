package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pizzeria/backend/internal/domain/order"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/infrastructure/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AppID is set on every published message
const AppID = "pizza-order-service"

// Channel is the subset of *amqp.Channel the forwarder uses
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPForwarder publishes order events to a topic exchange. The routing key is
// the event type and the body is the JSON encoded event.
type AMQPForwarder struct {
	ch       Channel
	conn     *amqp.Connection
	exchange string
	logger   *zap.Logger
}

// NewAMQPForwarder declares the durable topic exchange on ch and returns a
// forwarder publishing to it
func NewAMQPForwarder(ch Channel, exchange string, logger *zap.Logger) (*AMQPForwarder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &AMQPForwarder{ch: ch, exchange: exchange, logger: logger}, nil
}

// DialAMQPForwarder connects to the broker in cfg and opens a forwarder on a new channel
func DialAMQPForwarder(cfg config.BrokerConfig, logger *zap.Logger) (*AMQPForwarder, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open broker channel: %w", err)
	}

	f, err := NewAMQPForwarder(ch, cfg.Exchange, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	f.conn = conn
	return f, nil
}

// EventTypes returns the order event types
func (f *AMQPForwarder) EventTypes() []string {
	return []string{
		order.EventTypeOrderCreated,
		order.EventTypeOrderStatusChanged,
		order.EventTypeOrderDeleted,
	}
}

// Handle publishes one event as a persistent message
func (f *AMQPForwarder) Handle(ctx context.Context, event shared.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", event.EventType(), err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID().String(),
		Type:         event.EventType(),
		Timestamp:    event.OccurredAt(),
		AppId:        AppID,
		Headers: amqp.Table{
			"aggregate_type": event.AggregateType(),
			"aggregate_id":   event.AggregateID(),
		},
		Body: body,
	}
	if err := f.ch.PublishWithContext(ctx, f.exchange, event.EventType(), false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.EventType(), err)
	}

	f.logger.Debug("event forwarded to broker",
		zap.String("exchange", f.exchange),
		zap.String("routing_key", event.EventType()),
		zap.String("event_id", msg.MessageId),
	)
	return nil
}

// Close closes the channel and, when dialed by the forwarder, the connection
func (f *AMQPForwarder) Close() error {
	err := f.ch.Close()
	if f.conn != nil {
		if cerr := f.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

var _ shared.EventHandler = (*AMQPForwarder)(nil)
