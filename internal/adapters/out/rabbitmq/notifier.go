// Package rabbitmq publishes participant notifications to a topic exchange. The
// routing key is the notification kind, e.g. "courier.offer".
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bakery/internal/core/ports"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "bakery.notifications"
	exchangeType = "topic"

	maxRetries     = 3
	initialBackoff = 100 * time.Millisecond
	maxBackoff     = 5 * time.Second
	confirmTimeout = 5 * time.Second
)

// message is the JSON body of a published notification.
type message struct {
	NotificationID string            `json:"notification_id"`
	Kind           string            `json:"kind"`
	RecipientID    string            `json:"recipient_id"`
	Subject        string            `json:"subject"`
	Message        string            `json:"message"`
	Attributes     map[string]string `json:"attributes,omitempty"`
	Timestamp      string            `json:"timestamp"`
}

// Notifier publishes with publisher confirms and retries with exponential backoff.
// The channel is shared, so publishes are serialized.
type Notifier struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(url string, logger *slog.Logger) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err = channel.ExchangeDeclare(
		ExchangeName,
		exchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	if err = channel.Confirm(false); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	logger = logger.With("component", "rabbitmq_notifier")
	logger.Info("Connected to RabbitMQ", "exchange", ExchangeName)

	return &Notifier{conn: conn, channel: channel, logger: logger}, nil
}

func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) error {
	body, err := json.Marshal(message{
		NotificationID: uuid.NewString(),
		Kind:           string(notification.Kind),
		RecipientID:    notification.RecipientID.String(),
		Subject:        notification.Subject,
		Message:        notification.Message,
		Attributes:     notification.Attributes,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	return n.publishWithRetry(ctx, string(notification.Kind), body)
}

func (n *Notifier) publishWithRetry(ctx context.Context, routingKey string, body []byte) error {
	backoff := initialBackoff
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				backoff = min(backoff*2, maxBackoff)
			}
		}

		confirmation, err := n.channel.PublishWithDeferredConfirmWithContext(
			ctx,
			ExchangeName,
			routingKey,
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Timestamp:    time.Now(),
				Body:         body,
				Headers:      amqp.Table{"kind": routingKey},
			},
		)
		if err != nil {
			lastErr = err
			n.logger.WarnContext(ctx, "Failed to publish notification, retrying",
				"attempt", attempt+1, "routingKey", routingKey, "error", err)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, confirmTimeout)
		acked, err := confirmation.WaitContext(waitCtx)
		cancel()
		switch {
		case err != nil:
			lastErr = fmt.Errorf("confirmation not received: %w", err)
		case acked:
			n.logger.DebugContext(ctx, "Notification published", "routingKey", routingKey)
			return nil
		default:
			lastErr = fmt.Errorf("notification not acknowledged")
		}

		n.logger.WarnContext(ctx, "Notification publish not confirmed, retrying",
			"attempt", attempt+1, "routingKey", routingKey, "error", lastErr)
	}

	return fmt.Errorf("failed to publish notification after %d attempts: %w", maxRetries, lastErr)
}

func (n *Notifier) IsHealthy() bool {
	return n.conn != nil && !n.conn.IsClosed()
}

func (n *Notifier) Close() error {
	if n.channel != nil {
		if err := n.channel.Close(); err != nil {
			n.logger.Error("Failed to close channel", "error", err)
		}
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
