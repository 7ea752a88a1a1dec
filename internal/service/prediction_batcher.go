package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/occupancy-service/internal/inmemorycache"
	"ulascansenturk/occupancy-service/internal/predictor"
	apperrors "ulascansenturk/occupancy-service/pkg/errors"
)

const notReadyMessage = "Predictor not ready yet, model is still training"

// PredictionOutcome is delivered once to every request of a batch.
type PredictionOutcome struct {
	Result predictor.Result
	Err    error
}

// PredictionBatcher coalesces concurrent requests for the same date into a
// single upstream call.
type PredictionBatcher interface {
	AddRequest(ctx context.Context, date time.Time) (<-chan PredictionOutcome, error)
	// Flush processes the pending batch for date immediately.
	Flush(date time.Time)
	Shutdown()
}

type dateQueue struct {
	date     time.Time
	channels []chan PredictionOutcome
	timer    *time.Timer
	detached bool
	mu       sync.Mutex
}

type predictionBatcher struct {
	predictor    predictor.Predictor
	cache        inmemorycache.Cache
	cacheTTL     time.Duration
	queues       map[string]*dateQueue
	queueMutex   sync.RWMutex
	maxQueueSize int
	maxWaitTime  time.Duration
}

func NewPredictionBatcher(
	p predictor.Predictor,
	cache inmemorycache.Cache,
	cacheTTL time.Duration,
	maxQueueSize int,
	maxWaitTime time.Duration,
) PredictionBatcher {
	return &predictionBatcher{
		predictor:    p,
		cache:        cache,
		cacheTTL:     cacheTTL,
		queues:       make(map[string]*dateQueue),
		maxQueueSize: maxQueueSize,
		maxWaitTime:  maxWaitTime,
	}
}

func (b *predictionBatcher) AddRequest(_ context.Context, date time.Time) (<-chan PredictionOutcome, error) {
	responseChan := make(chan PredictionOutcome, 1)
	key := date.Format(predictor.DateLayout)

	for {
		queue := b.queueFor(key, date)

		queue.mu.Lock()
		if queue.detached {
			// drained between lookup and lock; join the next batch
			queue.mu.Unlock()
			continue
		}

		if len(queue.channels) == 0 {
			queue.timer = time.AfterFunc(b.maxWaitTime, func() {
				b.drain(key, queue)
			})
		}

		queue.channels = append(queue.channels, responseChan)

		if len(queue.channels) >= b.maxQueueSize {
			if queue.timer != nil {
				queue.timer.Stop()
				queue.timer = nil
			}
			go b.drain(key, queue)
		}
		queue.mu.Unlock()

		return responseChan, nil
	}
}

func (b *predictionBatcher) queueFor(key string, date time.Time) *dateQueue {
	b.queueMutex.RLock()
	queue, exists := b.queues[key]
	b.queueMutex.RUnlock()
	if exists {
		return queue
	}

	b.queueMutex.Lock()
	defer b.queueMutex.Unlock()
	queue, exists = b.queues[key]
	if !exists {
		queue = &dateQueue{date: date}
		b.queues[key] = queue
	}
	return queue
}

func (b *predictionBatcher) Flush(date time.Time) {
	key := date.Format(predictor.DateLayout)

	b.queueMutex.RLock()
	queue, exists := b.queues[key]
	b.queueMutex.RUnlock()

	if exists {
		b.drain(key, queue)
	}
}

// drain detaches queue from the map and answers every request it holds.
// Lock order is queueMutex before queue.mu.
func (b *predictionBatcher) drain(key string, queue *dateQueue) {
	b.queueMutex.Lock()
	queue.mu.Lock()
	if b.queues[key] == queue {
		delete(b.queues, key)
	}
	queue.detached = true
	channels := queue.channels
	date := queue.date
	queue.channels = nil
	if queue.timer != nil {
		queue.timer.Stop()
		queue.timer = nil
	}
	queue.mu.Unlock()
	b.queueMutex.Unlock()

	if len(channels) == 0 {
		return
	}

	outcome := b.fetch(date)
	log.Debug().Str("date", key).Int("waiters", len(channels)).Bool("ok", outcome.Result.OK).Msg("prediction batch processed")

	for _, ch := range channels {
		ch <- outcome
		close(ch)
	}
}

// fetch runs detached from any single request; the gateway bounds each call.
func (b *predictionBatcher) fetch(date time.Time) PredictionOutcome {
	ctx := context.Background()

	if !b.predictor.IsReady(ctx) {
		return PredictionOutcome{
			Result: predictor.Empty(date, notReadyMessage),
			Err:    apperrors.Wrap(apperrors.CodeNotReady, "predictor is not ready", nil),
		}
	}

	result := b.predictor.Predict(ctx, date)
	if result.OK && b.cache != nil {
		key := date.Format(predictor.DateLayout)
		if err := b.cache.Set(key, &result, b.cacheTTL); err != nil {
			log.Warn().Err(err).Str("date", key).Msg("failed to cache prediction")
		}
	}
	return PredictionOutcome{Result: result}
}

func (b *predictionBatcher) Shutdown() {
	b.queueMutex.Lock()
	defer b.queueMutex.Unlock()

	for _, queue := range b.queues {
		queue.mu.Lock()
		if queue.timer != nil {
			queue.timer.Stop()
		}
		for _, ch := range queue.channels {
			close(ch)
		}
		queue.channels = nil
		queue.detached = true
		queue.mu.Unlock()
	}

	b.queues = make(map[string]*dateQueue)
}
