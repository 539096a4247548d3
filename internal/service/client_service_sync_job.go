package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/store"
	"github.com/MKhiriev/go-light-client/internal/workers"
)

// DefaultSyncInterval is used when the job is started without an interval.
const DefaultSyncInterval = 5 * time.Minute

// Transient store failures (busy database, serialization conflicts) are
// retried within one tick instead of waiting for the next interval.
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = time.Second
)

type clientSyncJob struct {
	syncService ClientSyncService
	interval    time.Duration
	metrics     *Metrics
	logger      *logger.Logger

	retryAttempts int
	retryDelay    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.SyncState
// on a ticker. The job is idle until Start or Run is called. Failed syncs are
// logged and counted in metrics.SyncFailures; they never stop the job.
// Failures wrapping store.ErrRetryable are retried within the same tick and
// only counted once the retries run out.
func NewClientSyncJob(syncService ClientSyncService, interval time.Duration, metrics *Metrics, logger *logger.Logger) ClientSyncJob {
	if metrics == nil {
		metrics = NopMetrics()
	}
	return &clientSyncJob{
		syncService: syncService,
		interval:    interval,
		metrics:     metrics,
		logger:      logger,

		retryAttempts: DefaultRetryAttempts,
		retryDelay:    DefaultRetryDelay,
	}
}

// Start implements ClientSyncJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	worker := workers.Periodic("state-sync", interval, j.sync, j.logger)
	go func() {
		defer j.wg.Done()
		_ = worker.Run(jobCtx)
	}()
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements workers.Worker.
func (j *clientSyncJob) Run(ctx context.Context) error {
	j.Start(ctx, j.interval)
	<-ctx.Done()
	j.Stop()
	return nil
}

func (j *clientSyncJob) sync(ctx context.Context) error {
	summary, err := j.syncService.SyncState(ctx)
	for attempt := 1; err != nil && errors.Is(err, store.ErrRetryable) && attempt <= j.retryAttempts; attempt++ {
		j.logger.Warn().
			Err(err).
			Str("func", "clientSyncJob.sync").
			Int("attempt", attempt).
			Msg("transient store failure, retrying sync")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(j.retryDelay):
		}
		summary, err = j.syncService.SyncState(ctx)
	}
	if err != nil {
		if ctx.Err() == nil {
			j.metrics.SyncFailures.Add(1)
		}
		return err
	}

	if !summary.IsEmpty() {
		j.logger.Debug().
			Str("func", "clientSyncJob.sync").
			Uint32("block_num", summary.BlockNum).
			Msg("sync job changed local state")
	}
	return nil
}
