package notify

import (
	"context"
	"sync"

	"github.com/Manzp111/smartville/internal/application/notification"
	"go.uber.org/zap"
)

// ChannelDispatcher delivers jobs through an in-process buffered channel.
// It needs no external queue and is used for single-node deployments and
// tests. Jobs are dropped, with a log line, when the buffer is full.
type ChannelDispatcher struct {
	jobs   chan notification.Job
	mailer Mailer
	logger *zap.Logger
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewChannelDispatcher creates the dispatcher and starts its workers
func NewChannelDispatcher(mailer Mailer, workers, buffer int, logger *zap.Logger) *ChannelDispatcher {
	if workers < 1 {
		workers = 1
	}
	if buffer < 1 {
		buffer = 64
	}

	d := &ChannelDispatcher{
		jobs:   make(chan notification.Job, buffer),
		mailer: mailer,
		logger: logger.Named("notify"),
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
	return d
}

// Dispatch hands the job to a worker without blocking the caller.
// Jobs arriving during shutdown are dropped like buffer overflows;
// the send happens under the mutex so Close cannot close the channel
// between the check and the send.
func (d *ChannelDispatcher) Dispatch(ctx context.Context, job notification.Job) {
	if len(recipients(job)) == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.logger.Warn("dispatcher closed, dropping job",
			zap.String("kind", string(job.Kind)),
		)
		return
	}
	select {
	case d.jobs <- job:
	default:
		d.logger.Warn("notification buffer full, dropping job",
			zap.String("kind", string(job.Kind)),
		)
	}
}

// Close stops accepting jobs and waits for in-flight deliveries
func (d *ChannelDispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *ChannelDispatcher) run() {
	defer d.wg.Done()
	for job := range d.jobs {
		deliver(context.Background(), d.mailer, job, d.logger)
	}
}

// Ensure ChannelDispatcher implements the dispatch port
var _ notification.Dispatcher = (*ChannelDispatcher)(nil)
