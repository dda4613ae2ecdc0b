package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RenaudDev/PaperPause/internal/config"
	"github.com/RenaudDev/PaperPause/internal/dispatch"
	"github.com/RenaudDev/PaperPause/internal/domain"
	"github.com/RenaudDev/PaperPause/internal/metrics"
	"github.com/RenaudDev/PaperPause/internal/ratelimiter"
	"github.com/RenaudDev/PaperPause/internal/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck
	logger = logger.With(zap.String("run_id", uuid.New().String()))

	ping := flag.Bool("ping", false,
		"send a canned payload to verify the webhook configuration, then exit")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.ValidateWebhook(); err != nil {
		logger.Fatal("webhook configuration missing", zap.Error(err))
	}

	d := dispatch.NewWebhookDispatcher(cfg.WebhookURL, cfg.WebhookAPIKey, cfg.WebhookTimeout)
	ctx := context.Background()

	if *ping {
		item := domain.QueueItem{
			Collection: "cats",
			BoardName:  domain.BoardName("cats"),
			Mode:       domain.ModeGrowth,
			Priority:   domain.ModeGrowth.DispatchPriority(),
			FeedURL:    domain.FeedURL(cfg.SiteBaseURL, cfg.Section, "cats"),
		}
		if err := d.Dispatch(ctx, item); err != nil {
			logger.Fatal("webhook ping failed", zap.Error(err))
		}
		logger.Info("webhook ping succeeded")
		return
	}

	m := metrics.New()
	onDispatched, onFailed, onQueueDepth := m.ConductorHooks()
	c := dispatch.NewConductor(
		store.NewFileStore(cfg.QueueFile),
		d,
		ratelimiter.New(cfg.DispatchRate),
		logger,
		dispatch.MetricHooks{
			OnDispatched: onDispatched,
			OnFailed:     onFailed,
			OnQueueDepth: onQueueDepth,
		},
	)

	if err := c.Run(ctx, time.Now().UTC()); err != nil {
		logger.Fatal("dispatch run failed", zap.Error(err))
	}
	m.Push(cfg.PushgatewayURL, "distribution_conductor", logger)
}
