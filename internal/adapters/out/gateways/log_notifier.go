package gateways

import (
	"context"
	"log/slog"

	"bakery/internal/core/ports"
)

// LogNotifier writes notifications to the log. Used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

var _ ports.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	attrs := make([]any, 0, 8+2*len(notification.Attributes))
	attrs = append(attrs,
		"kind", string(notification.Kind),
		"recipientId", notification.RecipientID.String(),
		"subject", notification.Subject,
		"message", notification.Message,
	)
	for k, v := range notification.Attributes {
		attrs = append(attrs, k, v)
	}
	n.logger.InfoContext(ctx, "Notification", attrs...)
	return nil
}
