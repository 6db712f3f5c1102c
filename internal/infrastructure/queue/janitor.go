package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/gestaoclientes/gestor/internal/api/metrics"
	"github.com/gestaoclientes/gestor/internal/core/domain"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
	maxAttempts    = 5
	baseBackoff    = 500 * time.Millisecond
)

// IdentityDeleter removes credential identities.
type IdentityDeleter interface {
	DeleteIdentity(ctx context.Context, id string) error
}

// Janitor retries the deletion of credential identities that were left behind
// by a failed user insert or a partially failed user delete. Ids are sharded
// across workers so retries for one identity never run concurrently.
type Janitor struct {
	workers []chan string
	store   IdentityDeleter
	log     zerolog.Logger
	backoff time.Duration
}

// NewJanitor creates a Janitor with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewJanitor(numWorkers int, store IdentityDeleter, log zerolog.Logger) *Janitor {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	j := &Janitor{
		workers: make([]chan string, numWorkers),
		store:   store,
		log:     log,
		backoff: baseBackoff,
	}
	for i := range j.workers {
		j.workers[i] = make(chan string, channelBuffer)
	}
	return j
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	for i, ch := range j.workers {
		go j.runWorker(ctx, i, ch)
	}
}

// Enqueue schedules id for removal. It never blocks; when the worker's buffer
// is full the id is dropped and logged for manual cleanup.
func (j *Janitor) Enqueue(id string) {
	idx := j.shardIndex(id)
	select {
	case j.workers[idx] <- id:
		metrics.CleanupQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.CleanupTotal.WithLabelValues("dropped").Inc()
		j.log.Error().Str("identity_id", id).Msg("cleanup queue full, identity needs manual removal")
	}
}

func (j *Janitor) shardIndex(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum32() % uint32(len(j.workers)))
}

func (j *Janitor) runWorker(ctx context.Context, id int, ch <-chan string) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case identityID, ok := <-ch:
			if !ok {
				return
			}
			metrics.CleanupQueueDepth.WithLabelValues(label).Dec()
			j.remove(ctx, id, identityID)
		}
	}
}

// remove retries with exponential backoff until the identity is gone.
func (j *Janitor) remove(ctx context.Context, worker int, identityID string) {
	delay := j.backoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := j.store.DeleteIdentity(ctx, identityID)
		if err == nil || errors.Is(err, domain.ErrIdentityNotFound) {
			metrics.CleanupTotal.WithLabelValues("removed").Inc()
			j.log.Info().Str("identity_id", identityID).Int("attempt", attempt).Msg("orphaned identity removed")
			return
		}
		j.log.Warn().Err(err).
			Str("identity_id", identityID).
			Int("attempt", attempt).
			Int("worker_id", worker).
			Msg("identity cleanup failed")

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay *= 2
	}
	metrics.CleanupTotal.WithLabelValues("abandoned").Inc()
	j.log.Error().Str("identity_id", identityID).Msg("giving up on identity cleanup")
}
