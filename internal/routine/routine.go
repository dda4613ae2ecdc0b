// Package routine runs the planner and the conductor inside one process:
// the planner on a daily cron expression, the conductor on a short interval.
// Sharing one process and one mutex means the two can never write the queue
// file concurrently, which the separate batch binaries rely on an external
// scheduler to guarantee.
package routine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/RenaudDev/PaperPause/internal/dispatch"
	"github.com/RenaudDev/PaperPause/internal/planner"
)

type Routine struct {
	planner   *planner.Planner
	conductor *dispatch.Conductor
	planMode  planner.PlanMode
	cronSpec  string
	interval  time.Duration
	logger    *zap.Logger

	mu sync.Mutex // serializes planning and dispatch runs
}

func New(
	p *planner.Planner,
	c *dispatch.Conductor,
	planMode planner.PlanMode,
	cronSpec string,
	interval time.Duration,
	logger *zap.Logger,
) *Routine {
	return &Routine{
		planner:   p,
		conductor: c,
		planMode:  planMode,
		cronSpec:  cronSpec,
		interval:  interval,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled. Errors from individual runs are logged
// and the routine keeps going; only an invalid cron spec is returned.
func (r *Routine) Run(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(r.cronSpec, func() { r.plan() }); err != nil {
		return fmt.Errorf("parse planner cron %q: %w", r.cronSpec, err)
	}
	c.Start()
	defer func() { <-c.Stop().Done() }()

	r.logger.Info("routine started",
		zap.String("planner_cron", r.cronSpec),
		zap.Duration("conductor_interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("routine stopping")
			return nil
		case <-ticker.C:
			r.dispatchDue(ctx)
		}
	}
}

func (r *Routine) plan() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.planner.Run(r.planMode, time.Now().UTC()); err != nil {
		r.logger.Error("planning run failed", zap.Error(err))
	}
}

func (r *Routine) dispatchDue(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.conductor.Run(ctx, time.Now().UTC()); err != nil {
		r.logger.Error("dispatch run failed", zap.Error(err))
	}
}
