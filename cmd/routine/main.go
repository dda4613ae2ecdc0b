package main

import (
	"context"
	"flag"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RenaudDev/PaperPause/internal/catalog"
	"github.com/RenaudDev/PaperPause/internal/config"
	"github.com/RenaudDev/PaperPause/internal/dispatch"
	"github.com/RenaudDev/PaperPause/internal/manifest"
	"github.com/RenaudDev/PaperPause/internal/metrics"
	"github.com/RenaudDev/PaperPause/internal/planner"
	"github.com/RenaudDev/PaperPause/internal/ratelimiter"
	"github.com/RenaudDev/PaperPause/internal/routine"
	"github.com/RenaudDev/PaperPause/internal/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck
	logger = logger.With(zap.String("run_id", uuid.New().String()))

	mode := flag.String("mode", string(planner.PlanFullAudit),
		"planning mode: full-audit or from-manifests")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.ValidateWebhook(); err != nil {
		logger.Fatal("webhook configuration missing", zap.Error(err))
	}
	planMode := planner.PlanMode(*mode)
	if !planMode.IsValid() {
		logger.Fatal("invalid planning mode", zap.String("mode", *mode))
	}

	m := metrics.New()
	st := store.NewFileStore(cfg.QueueFile)

	onPlanned, onDropped := m.PlannerHooks()
	p := planner.New(
		catalog.NewFSCatalog(filepath.Join(cfg.ContentRoot, cfg.Section)),
		manifest.NewDirSource(cfg.RunsDir, logger),
		st,
		planner.Config{
			Window: planner.Window{
				StartHour:   cfg.WindowStartHour,
				EndHour:     cfg.WindowEndHour,
				SlotMinutes: cfg.SlotMinutes,
			},
			GrowthThreshold: cfg.GrowthThreshold,
			SiteBaseURL:     cfg.SiteBaseURL,
			Section:         cfg.Section,
		},
		logger,
		planner.MetricHooks{OnPlanned: onPlanned, OnDropped: onDropped},
	)

	onDispatched, onFailed, onQueueDepth := m.ConductorHooks()
	c := dispatch.NewConductor(
		st,
		dispatch.NewWebhookDispatcher(cfg.WebhookURL, cfg.WebhookAPIKey, cfg.WebhookTimeout),
		ratelimiter.New(cfg.DispatchRate),
		logger,
		dispatch.MetricHooks{
			OnDispatched: onDispatched,
			OnFailed:     onFailed,
			OnQueueDepth: onQueueDepth,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := routine.New(p, c, planMode, cfg.PlannerCron, cfg.ConductorInterval, logger)
	if err := r.Run(ctx); err != nil {
		logger.Fatal("routine failed", zap.Error(err))
	}
	logger.Info("routine stopped cleanly")
}
