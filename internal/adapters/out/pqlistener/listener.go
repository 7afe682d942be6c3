// Package pqlistener turns Postgres NOTIFY signals on the event store channel into
// wake-ups for the outbox relay.
package pqlistener

import (
	"context"
	"log/slog"
	"time"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Listener waits on one channel and calls wake for every notification. A reconnect
// also wakes, since notifications sent while disconnected are lost.
type Listener struct {
	listener *pq.Listener
	channel  string
	logger   *slog.Logger
}

func New(dsn string, channel string, logger *slog.Logger) (*Listener, error) {
	logger = logger.With("component", "pq_listener", "channel", channel)

	report := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("Listener connection event", "event", int(ev), "error", err)
		}
	}

	l := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, report)
	if err := l.Listen(channel); err != nil {
		_ = l.Close()
		return nil, err
	}

	return &Listener{listener: l, channel: channel, logger: logger}, nil
}

// Run blocks until ctx is cancelled.
func (l *Listener) Run(ctx context.Context, wake func()) {
	l.logger.InfoContext(ctx, "Listening for appended events")
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-l.listener.Notify:
			// nil after a reconnect
			if n != nil {
				l.logger.DebugContext(ctx, "Notification received", "payload", n.Extra)
			}
			wake()
		case <-ticker.C:
			if err := l.listener.Ping(); err != nil {
				l.logger.WarnContext(ctx, "Listener ping failed", "error", err)
			}
		}
	}
}

func (l *Listener) Close() error {
	return l.listener.Close()
}
