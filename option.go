package usdc

import (
	"errors"
	"log/slog"

	"github.com/stablekit/usdc/internal/observability"
)

type config struct {
	log *slog.Logger
}

// Option represents a means of altering the default configuration of a
// Registry.
type Option func(*config) error

func newConfig(opts ...Option) (*config, error) {
	var errs error

	cfg := &config{
		log: observability.NewNoopLogger(),
	}

	for _, opt := range opts {
		errs = errors.Join(errs, opt(cfg))
	}

	if errs != nil {
		return nil, errs
	}

	return cfg, nil
}

// WithLogger is an Option that allows the user to provide an slog.Logger
// that can be used to observe the Registry's lookups.
//
// If not provided, a No-Op logger is used.  Under normal operation, this
// library writes one DEBUG-level log record for each address that's
// resolved.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) error {
		c.log = log

		return nil
	}
}
