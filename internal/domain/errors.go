package domain

import "errors"

// Sentinel errors used throughout the application. All of these are
// setup-level: each one aborts the run before any dispatch is attempted.
var (
	ErrQueueCorrupt    = errors.New("queue file exists but cannot be parsed")
	ErrMissingWebhook  = errors.New("WEBHOOK_URL is not configured")
	ErrMissingAPIKey   = errors.New("WEBHOOK_API_KEY is not configured")
	ErrUnknownPlanMode = errors.New("unknown planning mode: must be full-audit or from-manifests")
)
