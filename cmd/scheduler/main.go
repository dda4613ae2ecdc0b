package main

import (
	"flag"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RenaudDev/PaperPause/internal/catalog"
	"github.com/RenaudDev/PaperPause/internal/config"
	"github.com/RenaudDev/PaperPause/internal/manifest"
	"github.com/RenaudDev/PaperPause/internal/metrics"
	"github.com/RenaudDev/PaperPause/internal/planner"
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
	m := metrics.New()

	cat := catalog.NewFSCatalog(filepath.Join(cfg.ContentRoot, cfg.Section))
	src := manifest.NewDirSource(cfg.RunsDir, logger)
	st := store.NewFileStore(cfg.QueueFile)

	onPlanned, onDropped := m.PlannerHooks()
	p := planner.New(cat, src, st, planner.Config{
		Window: planner.Window{
			StartHour:   cfg.WindowStartHour,
			EndHour:     cfg.WindowEndHour,
			SlotMinutes: cfg.SlotMinutes,
		},
		GrowthThreshold: cfg.GrowthThreshold,
		SiteBaseURL:     cfg.SiteBaseURL,
		Section:         cfg.Section,
	}, logger, planner.MetricHooks{OnPlanned: onPlanned, OnDropped: onDropped})

	if _, err := p.Run(planner.PlanMode(*mode), time.Now().UTC()); err != nil {
		logger.Fatal("planning run failed", zap.Error(err))
	}
	m.Push(cfg.PushgatewayURL, "distribution_scheduler", logger)
}
