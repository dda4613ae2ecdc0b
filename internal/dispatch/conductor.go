package dispatch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/RenaudDev/PaperPause/internal/ratelimiter"
	"github.com/RenaudDev/PaperPause/internal/store"
)

// MetricHooks lets the caller observe dispatch outcomes without the
// conductor importing a metrics library. Nil hooks are replaced with no-ops.
type MetricHooks struct {
	OnDispatched func()
	OnFailed     func()
	OnQueueDepth func(depth int)
}

// Conductor drains the persisted queue: it finds items whose scheduled time
// has arrived, hands each one to the dispatcher, and rewrites the queue with
// only the confirmed successes removed.
//
// Items are processed sequentially. Ordering carries no correctness meaning,
// but sequential calls behind the rate limiter keep the endpoint happy and
// keep the read-modify-write of the queue race-free within one run.
type Conductor struct {
	store        store.QueueStore
	dispatcher   Dispatcher
	limiter      *ratelimiter.Limiter
	logger       *zap.Logger
	onDispatched func()
	onFailed     func()
	onQueueDepth func(int)
}

func NewConductor(
	st store.QueueStore,
	d Dispatcher,
	limiter *ratelimiter.Limiter,
	logger *zap.Logger,
	hooks MetricHooks,
) *Conductor {
	if hooks.OnDispatched == nil {
		hooks.OnDispatched = func() {}
	}
	if hooks.OnFailed == nil {
		hooks.OnFailed = func() {}
	}
	if hooks.OnQueueDepth == nil {
		hooks.OnQueueDepth = func(int) {}
	}
	return &Conductor{
		store:        st,
		dispatcher:   d,
		limiter:      limiter,
		logger:       logger,
		onDispatched: hooks.OnDispatched,
		onFailed:     hooks.OnFailed,
		onQueueDepth: hooks.OnQueueDepth,
	}
}

// Run executes one dispatch run at the given instant.
//
// A missing queue file and an empty due set are benign: the run exits
// cleanly having done nothing. A per-item dispatch failure leaves that item
// in the queue for the next run and never aborts the rest; the error return
// is reserved for setup-level problems (unreadable store).
func (c *Conductor) Run(ctx context.Context, now time.Time) error {
	q, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("load queue: %w", err)
	}
	if q == nil {
		c.logger.Info("queue file not found, nothing to distribute yet")
		return nil
	}
	c.onQueueDepth(len(q.Queue))
	if len(q.Queue) == 0 {
		c.logger.Info("queue is empty, nothing to distribute")
		return nil
	}

	due := q.Due(now)
	if len(due) == 0 {
		if next := q.NextScheduled(now); next != nil {
			c.logger.Info("no items due", zap.Time("next_scheduled_at", *next))
		} else {
			c.logger.Info("no items due")
		}
		return nil
	}
	c.logger.Info("found due items", zap.Int("count", len(due)))

	var dispatched []int
	for _, idx := range due {
		if err := c.limiter.Wait(ctx); err != nil {
			// Cancelled mid-run; fall through so the successes so far
			// still shrink the persisted queue.
			c.logger.Warn("dispatch run interrupted", zap.Error(err))
			break
		}

		item := q.Queue[idx]
		log := c.logger.With(
			zap.String("collection", item.Collection),
			zap.String("board_name", item.BoardName),
		)

		if err := c.dispatcher.Dispatch(ctx, item); err != nil {
			// Failed items stay queued; the next run retries them.
			log.Error("webhook dispatch failed", zap.Error(err))
			c.onFailed()
			continue
		}
		log.Info("webhook dispatched")
		c.onDispatched()
		dispatched = append(dispatched, idx)
	}

	if len(dispatched) == 0 {
		c.logger.Warn("no items dispatched successfully, queue unchanged")
		return nil
	}

	q.Queue = q.Without(dispatched)
	c.onQueueDepth(len(q.Queue))
	if err := c.store.Save(q); err != nil {
		return fmt.Errorf("rewrite queue: %w", err)
	}
	c.logger.Info("queue updated",
		zap.Int("removed", len(dispatched)),
		zap.Int("remaining", len(q.Queue)))
	return nil
}
