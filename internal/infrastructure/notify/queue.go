package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Manzp111/smartville/internal/application/notification"
	"github.com/Manzp111/smartville/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient creates a go-redis client from configuration and
// verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// RedisDispatcher pushes jobs onto a redis list so they survive process
// restarts. A worker pool on the other end drains the list and delivers.
type RedisDispatcher struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewRedisDispatcher creates a new RedisDispatcher
func NewRedisDispatcher(client *redis.Client, queueKey string, logger *zap.Logger) *RedisDispatcher {
	return &RedisDispatcher{
		client: client,
		key:    queueKey,
		logger: logger.Named("notify"),
	}
}

// Dispatch enqueues the job. Jobs with nobody to deliver to are dropped
// silently; enqueue failures are logged and swallowed, never surfaced.
func (d *RedisDispatcher) Dispatch(ctx context.Context, job notification.Job) {
	if len(recipients(job)) == 0 {
		return
	}

	payload, err := json.Marshal(job)
	if err != nil {
		d.logger.Error("failed to encode notification job",
			zap.String("kind", string(job.Kind)),
			zap.Error(err),
		)
		return
	}

	if err := d.client.LPush(ctx, d.key, payload).Err(); err != nil {
		d.logger.Error("failed to enqueue notification job",
			zap.String("kind", string(job.Kind)),
			zap.Error(err),
		)
	}
}

// WorkerPool drains the redis queue and delivers jobs through a Mailer.
type WorkerPool struct {
	client *redis.Client
	mailer Mailer
	cfg    config.NotifyConfig
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(client *redis.Client, mailer Mailer, cfg config.NotifyConfig, logger *zap.Logger) *WorkerPool {
	return &WorkerPool{
		client: client,
		mailer: mailer,
		cfg:    cfg,
		logger: logger.Named("notify"),
	}
}

// Start launches the configured number of workers. They run until the
// context is cancelled; call Wait to block until they drain.
func (p *WorkerPool) Start(ctx context.Context) {
	workers := p.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
}

// Wait blocks until all workers have stopped
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

func (p *WorkerPool) run(ctx context.Context) {
	defer p.wg.Done()
	for {
		if ctx.Err() != nil {
			return
		}

		res, err := p.client.BRPop(ctx, p.cfg.PollTimeout, p.cfg.QueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			p.logger.Warn("notification queue poll failed", zap.Error(err))
			continue
		}
		// BRPop returns [key, value]
		if len(res) < 2 {
			continue
		}

		var job notification.Job
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			p.logger.Error("dropping undecodable notification job", zap.Error(err))
			continue
		}

		deliver(ctx, p.mailer, job, p.logger)
	}
}

// deliver renders the job once and attempts delivery to each recipient
// independently. Failures are logged; there is no retry.
func deliver(ctx context.Context, mailer Mailer, job notification.Job, logger *zap.Logger) {
	subject, body := render(job)
	for _, to := range recipients(job) {
		if err := mailer.Send(ctx, to, subject, body); err != nil {
			logger.Error("notification delivery failed",
				zap.String("kind", string(job.Kind)),
				zap.String("to", to),
				zap.Error(err),
			)
		}
	}
}

// Ensure RedisDispatcher implements the dispatch port
var _ notification.Dispatcher = (*RedisDispatcher)(nil)
