// Package messaging publishes activity events to RabbitMQ.
package messaging

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"literaryhub/internal/core/domain"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ActivityEvent is the message body sent for each activity entry
type ActivityEvent struct {
	User      string    `json:"user"`
	UserID    string    `json:"userId,omitempty"`
	Action    string    `json:"action"`
	Category  string    `json:"category"`
	Detail    string    `json:"detail"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityPublisher sends activity events to a topic exchange
type ActivityPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	mu       sync.Mutex
}

// NewActivityPublisher dials the broker and declares a durable topic exchange
func NewActivityPublisher(url, exchange string) (*ActivityPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	log.Printf("✅ Activity publisher connected [exchange: %s]", exchange)
	return &ActivityPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish sends one activity as a persistent JSON message
func (p *ActivityPublisher) Publish(ctx context.Context, activity domain.Activity) error {
	msg, err := NewMessage(activity, time.Now())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(activity), false, false, msg)
}

// Close closes the channel and the connection
func (p *ActivityPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// RoutingKey is activity.<category>.<action>, lower-cased
func RoutingKey(activity domain.Activity) string {
	category := strings.ToLower(activity.Category)
	if category == "" {
		category = "system"
	}
	return "activity." + category + "." + strings.ToLower(activity.Action)
}

// NewMessage encodes activity into an AMQP publishing
func NewMessage(activity domain.Activity, at time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(ActivityEvent{
		User:      activity.User,
		UserID:    activity.UserID,
		Action:    activity.Action,
		Category:  activity.Category,
		Detail:    activity.Detail,
		Status:    activity.Status,
		Timestamp: at.UTC(),
	})
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    at,
		Type:         activity.Action,
		Body:         body,
	}, nil
}
