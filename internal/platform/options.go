package platform

import (
	"log/slog"
	"time"

	"github.com/inktally/inktally/pkg/core"
)

// options holds the internal configuration for assembling a session.
type options struct {
	autoInit  bool
	mustExist bool
	params    core.Params
	store     core.Store
	logger    *slog.Logger
	clock     func() time.Time
}

// Option defines a functional option for configuring inktally.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		autoInit: false,
		params:   core.DefaultParams(),
		logger:   slog.Default(),
		clock:    time.Now,
	}
}

// WithAutoInit controls whether a missing data file is created on open.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist makes opening fail when the data file is missing.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithParams overrides the analysis parameters.
func WithParams(p core.Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock overrides the wall clock (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithStore injects a custom storage adapter (e.g. a mock). If
// provided, the default flat-file adapter is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}
