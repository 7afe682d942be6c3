// Package policies holds the saga steps of the marketplace. Each policy subscribes
// to event types and reacts by issuing commands against other aggregates or by
// notifying participants. Policies keep no state; every guard against duplicate
// delivery lives in the command handlers they call.
package policies

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/metrics"
)

// Policy registers its handlers on a subscriber.
type Policy interface {
	Register(subscriber ports.EventSubscriber)
}

// RegisterAll subscribes every policy.
func RegisterAll(subscriber ports.EventSubscriber, policies ...Policy) {
	for _, p := range policies {
		p.Register(subscriber)
	}
}

type reactor struct {
	name    string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func newReactor(name string, logger *slog.Logger, m *metrics.Metrics) reactor {
	return reactor{
		name:    name,
		logger:  logger.With("component", name),
		metrics: m,
	}
}

// wrap acknowledges rejections that mean the reaction no longer applies, such as a
// cart that is already gone. Any other failure is returned so the event is
// delivered again.
func (r reactor) wrap(fn func(ctx context.Context, envelope ports.Envelope) error) ports.EventHandler {
	return ports.EventHandlerFunc(func(ctx context.Context, envelope ports.Envelope) error {
		start := time.Now()
		err := fn(ctx, envelope)

		outcome := metrics.OutcomeOK
		switch {
		case err == nil:
		case errs.IsPreconditionViolation(err) || errors.Is(err, errs.ErrObjectNotFound):
			outcome = metrics.OutcomeSkipped
			r.logger.WarnContext(ctx, "Event skipped",
				"eventType", envelope.EventType(),
				"eventId", envelope.EventID.String(),
				"reason", err.Error(),
			)
			err = nil
		default:
			outcome = metrics.OutcomeFailed
			r.logger.ErrorContext(ctx, "Event handling failed",
				"eventType", envelope.EventType(),
				"eventId", envelope.EventID.String(),
				"error", err,
			)
		}

		r.metrics.EventHandled(r.name, envelope.EventType(), outcome, time.Since(start).Seconds())
		return err
	})
}

// notify never fails the reaction.
func (r reactor) notify(ctx context.Context, notifier ports.Notifier, n ports.Notification) {
	if err := notifier.Notify(ctx, n); err != nil {
		r.metrics.Notification(string(n.Kind), metrics.OutcomeFailed)
		r.logger.WarnContext(ctx, "Notification failed",
			"kind", string(n.Kind),
			"recipientId", n.RecipientID.String(),
			"error", err,
		)
		return
	}
	r.metrics.Notification(string(n.Kind), metrics.OutcomeOK)
}

func eventOf[T kernel.DomainEvent](envelope ports.Envelope) (T, error) {
	e, ok := envelope.Event.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s at position %d: unexpected payload %T", envelope.EventType(), envelope.Position, envelope.Event)
	}
	return e, nil
}
