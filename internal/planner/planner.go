package planner

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/RenaudDev/PaperPause/internal/catalog"
	"github.com/RenaudDev/PaperPause/internal/domain"
	"github.com/RenaudDev/PaperPause/internal/manifest"
	"github.com/RenaudDev/PaperPause/internal/store"
)

// PlanMode selects how a planning run picks collections.
type PlanMode string

const (
	// PlanFullAudit evaluates every known collection against the growth
	// threshold and the maintenance rotation.
	PlanFullAudit PlanMode = "full-audit"
	// PlanFromManifests schedules only collections that produced new
	// content in the most recent generation cycle.
	PlanFromManifests PlanMode = "from-manifests"
)

func (m PlanMode) IsValid() bool {
	switch m {
	case PlanFullAudit, PlanFromManifests:
		return true
	}
	return false
}

// Config carries the planner's tunables. Rand is optional; when nil the
// planner seeds its own source, and tests inject a fixed seed instead.
type Config struct {
	Window          Window
	GrowthThreshold int
	SiteBaseURL     string
	Section         string
	Rand            *rand.Rand
}

// MetricHooks lets the caller observe planning outcomes without the planner
// importing a metrics library. Nil hooks are replaced with no-ops.
type MetricHooks struct {
	OnPlanned func(mode domain.Mode)
	OnDropped func(count int)
}

// Planner produces the day's distribution plan and persists it, replacing
// any prior plan in full. Leftover undispatched items from a previous day
// are overwritten, not merged; operators should run the conductor often
// enough to drain the queue before the next planning run.
type Planner struct {
	catalog   catalog.Catalog
	manifests manifest.Source
	store     store.QueueStore
	cfg       Config
	logger    *zap.Logger
	onPlanned func(domain.Mode)
	onDropped func(int)
}

func New(
	cat catalog.Catalog,
	src manifest.Source,
	st store.QueueStore,
	cfg Config,
	logger *zap.Logger,
	hooks MetricHooks,
) *Planner {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Window.SlotMinutes <= 0 {
		// A zero granularity would make slot math divide by zero.
		cfg.Window.SlotMinutes = defaultSlotMinutes
	}
	if hooks.OnPlanned == nil {
		hooks.OnPlanned = func(domain.Mode) {}
	}
	if hooks.OnDropped == nil {
		hooks.OnDropped = func(int) {}
	}
	return &Planner{
		catalog:   cat,
		manifests: src,
		store:     st,
		cfg:       cfg,
		logger:    logger,
		onPlanned: hooks.OnPlanned,
		onDropped: hooks.OnDropped,
	}
}

// Run executes one planning run for the given day and saves the resulting
// queue. It returns the queue it wrote.
func (p *Planner) Run(mode PlanMode, now time.Time) (*domain.DistributionQueue, error) {
	if !mode.IsValid() {
		return nil, domain.ErrUnknownPlanMode
	}
	now = now.UTC()

	selected, err := p.selectCollections(mode, now)
	if err != nil {
		return nil, err
	}
	p.logger.Info("collections selected for distribution",
		zap.String("mode", string(mode)), zap.Int("count", len(selected)))

	assigned, dropped := assignSlots(selected, now, p.cfg.Window, p.cfg.Rand)
	if len(dropped) > 0 {
		// Over capacity: these collections get no slot and no retry
		// until the next planning run.
		p.onDropped(len(dropped))
		for _, d := range dropped {
			p.logger.Error("no slots left, dropping collection from this run",
				zap.String("collection", d.Collection))
		}
	}

	q := &domain.DistributionQueue{
		GeneratedAt: now,
		Queue:       make([]domain.QueueItem, 0, len(assigned)),
	}
	for _, a := range assigned {
		at := a.At
		item := domain.QueueItem{
			Collection:  a.Collection,
			BoardName:   domain.BoardName(a.Collection),
			Mode:        a.Mode,
			Priority:    a.Mode.DispatchPriority(),
			FeedURL:     domain.FeedURL(p.cfg.SiteBaseURL, p.cfg.Section, a.Collection),
			ScheduledAt: &at,
		}
		q.Queue = append(q.Queue, item)
		p.onPlanned(a.Mode)
		p.logger.Info("scheduled collection",
			zap.String("collection", item.Collection),
			zap.String("mode", string(item.Mode)),
			zap.Time("scheduled_at", at))
	}

	if err := p.store.Save(q); err != nil {
		return nil, fmt.Errorf("persist plan: %w", err)
	}
	p.logger.Info("queue generated", zap.Int("items", len(q.Queue)))
	return q, nil
}

func (p *Planner) selectCollections(mode PlanMode, now time.Time) ([]Selection, error) {
	if mode == PlanFromManifests {
		manifests, err := p.manifests.Recent()
		if err != nil {
			return nil, fmt.Errorf("load manifests: %w", err)
		}
		for _, m := range manifests {
			if m.CreatedCount() == 0 {
				p.logger.Warn("skipping empty manifest", zap.String("collection", m.Collection))
			}
		}
		return FromManifests(manifests), nil
	}

	names, err := p.catalog.Collections()
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	stats := make([]domain.CollectionStat, 0, len(names))
	for _, name := range names {
		count, err := p.catalog.PublishedCount(name)
		if err != nil {
			return nil, fmt.Errorf("count published entries: %w", err)
		}
		stats = append(stats, domain.CollectionStat{Identifier: name, PublishedCount: count})
	}
	return Classify(stats, p.cfg.GrowthThreshold, int(now.Weekday())), nil
}
