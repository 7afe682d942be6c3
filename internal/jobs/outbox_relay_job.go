package jobs

import (
	"context"
	"log/slog"
	"sync"

	"bakery/internal/core/ports"
	"bakery/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const DefaultRelayBatchSize = 100

// OutboxRelayJob hands stored events to the event transport in store order.
// It runs every second and whenever Wake is called. Runs never overlap.
type OutboxRelayJob struct {
	outbox    ports.Outbox
	publisher ports.EventPublisher
	batchSize int
	metrics   *metrics.Metrics

	cron   *cron.Cron
	runMu  sync.Mutex
	wake   chan struct{}
	stop   chan struct{}
	done   sync.WaitGroup
	logger *slog.Logger
}

func NewOutboxRelayJob(
	outbox ports.Outbox,
	publisher ports.EventPublisher,
	batchSize int,
	m *metrics.Metrics,
	logger *slog.Logger,
) *OutboxRelayJob {
	if batchSize <= 0 {
		batchSize = DefaultRelayBatchSize
	}
	logger = logger.With("component", "outbox_relay_job")
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		batchSize: batchSize,
		metrics:   m,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		logger: logger,
	}
}

// Start begins relaying every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.drain(context.Background())
	})
	if err != nil {
		return err
	}

	j.done.Add(1)
	go func() {
		defer j.done.Done()
		for {
			select {
			case <-j.stop:
				return
			case <-j.wake:
				j.drain(context.Background())
			}
		}
	}()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	close(j.stop)
	j.done.Wait()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// Wake schedules an extra run. Calls while a run is pending are merged.
func (j *OutboxRelayJob) Wake() {
	select {
	case j.wake <- struct{}{}:
	default:
	}
}

// drain relays full batches until the outbox is empty or a run fails.
func (j *OutboxRelayJob) drain(ctx context.Context) {
	for {
		n, err := j.RelayOnce(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay failed", "relayed", n, "error", err)
			return
		}
		if n < j.batchSize {
			return
		}
	}
}

// RelayOnce publishes one batch and returns how many events were handed over. It
// stops at the first event the transport rejects; that event and the ones after it
// are retried by the next run.
func (j *OutboxRelayJob) RelayOnce(ctx context.Context) (int, error) {
	j.runMu.Lock()
	defer j.runMu.Unlock()

	batch, err := j.outbox.FetchUnpublished(ctx, j.batchSize)
	if err != nil {
		return 0, err
	}
	j.metrics.RelayBatch(len(batch))
	if len(batch) == 0 {
		return 0, nil
	}

	positions := make([]int64, 0, len(batch))
	var publishErr error
	for _, envelope := range batch {
		if publishErr = j.publisher.Publish(ctx, envelope); publishErr != nil {
			break
		}
		positions = append(positions, envelope.Position)
		j.metrics.EventRelayed(envelope.EventType())
	}

	if err = j.outbox.MarkPublished(ctx, positions); err != nil {
		return 0, err
	}

	if publishErr != nil {
		return len(positions), publishErr
	}

	j.logger.DebugContext(ctx, "Events relayed", "count", len(positions))
	return len(positions), nil
}
