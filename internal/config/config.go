package config

import (
	"os"
	"strconv"
	"time"

	"github.com/RenaudDev/PaperPause/internal/domain"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; the webhook endpoint settings are the
// only hard requirement, and only for processes that dispatch
// (see ValidateWebhook).
type Config struct {
	// Shared state
	QueueFile string

	// Catalog and generation manifests
	ContentRoot string
	RunsDir     string
	SiteBaseURL string
	Section     string

	// Distribution endpoint
	WebhookURL     string
	WebhookAPIKey  string
	WebhookTimeout time.Duration

	// Publishing window, hours in UTC
	WindowStartHour int
	WindowEndHour   int
	SlotMinutes     int

	// Classification
	GrowthThreshold int

	// Maximum webhook calls per second
	DispatchRate int

	// Optional Pushgateway for batch-run metrics; empty disables pushing
	PushgatewayURL string

	// Combined routine mode
	PlannerCron       string
	ConductorInterval time.Duration
}

func Load() *Config {
	return &Config{
		QueueFile: getEnv("QUEUE_FILE", "config/distribution-queue.json"),

		ContentRoot: getEnv("CONTENT_ROOT", "content"),
		RunsDir:     getEnv("RUNS_DIR", ".runs"),
		SiteBaseURL: getEnv("SITE_BASE_URL", "https://paperpause.app"),
		Section:     getEnv("SITE_SECTION", "animals"),

		WebhookURL:     os.Getenv("WEBHOOK_URL"),
		WebhookAPIKey:  os.Getenv("WEBHOOK_API_KEY"),
		WebhookTimeout: getDuration("WEBHOOK_TIMEOUT", 30*time.Second),

		WindowStartHour: getInt("WINDOW_START_HOUR", 6),
		WindowEndHour:   getInt("WINDOW_END_HOUR", 21),
		SlotMinutes:     getPositiveInt("SLOT_MINUTES", 15),

		GrowthThreshold: getInt("GROWTH_THRESHOLD", 75),

		DispatchRate: getInt("DISPATCH_RATE", 1),

		PushgatewayURL: os.Getenv("PUSHGATEWAY_URL"),

		PlannerCron:       getEnv("PLANNER_CRON", "0 0 * * *"),
		ConductorInterval: getDuration("CONDUCTOR_INTERVAL", 5*time.Minute),
	}
}

// ValidateWebhook checks the settings required before any dispatch attempt.
// A missing URL or credential is a fatal setup error, never a per-item one.
func (c *Config) ValidateWebhook() error {
	if c.WebhookURL == "" {
		return domain.ErrMissingWebhook
	}
	if c.WebhookAPIKey == "" {
		return domain.ErrMissingAPIKey
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

// getPositiveInt is getInt for values that must stay above zero; anything
// else falls back to the default.
func getPositiveInt(key string, defaultVal int) int {
	if n := getInt(key, defaultVal); n > 0 {
		return n
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
