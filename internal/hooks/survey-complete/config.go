// internal/hooks/survey-complete/config.go
package surveycomplete

import (
	"time"

	"survey-webhooks/internal/common/config"
)

// Config holds the completion hook settings derived from the application
// configuration.
type Config struct {
	// Timeout bounds the whole hook run, webhook POST included.
	Timeout time.Duration
	// FailurePolicy decides whether a delivery failure aborts the hook
	// ("fatal") or is logged and reported in the output ("logged").
	FailurePolicy string
}

func NewConfig(cfg config.WebhookConfig) *Config {
	return &Config{
		Timeout:       time.Duration(cfg.Timeout) * time.Millisecond,
		FailurePolicy: cfg.FailurePolicy,
	}
}
