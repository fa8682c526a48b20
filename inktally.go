// Package inktally is the composition root for the inktally application.
//
// inktally records daily article counts per diary (a named content
// source, such as a publication or feed) in a flat text file, and flags
// anomalous counts with basic descriptive statistics: weekday averages
// over a trailing window, coefficient of variation, interquartile
// range, and mode match.
//
// The core domain lives in pkg/core, the statistics in pkg/stats, and
// the flat-file persistence adapter in pkg/adapters/fs; this package
// wires them together behind a small facade.
package inktally

import (
	"log/slog"
	"time"

	"github.com/inktally/inktally/internal/platform"
	"github.com/inktally/inktally/pkg/core"
)

// Version exposes the version of the application.
const Version = "0.2.0"

// --- Types ---

// Date is a public alias for the domain's calendar day.
type Date = core.Date

// Report is a public alias for the structured classification outcome.
type Report = core.Report

// Params is a public alias for the analysis tunables.
type Params = core.Params

// --- Configuration ---

// Option defines a functional option for configuring inktally.
type Option = platform.Option

// WithAutoInit controls whether a missing data file is created on open.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist makes opening fail when the data file is missing.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithParams overrides the analysis parameters.
func WithParams(p Params) Option {
	return platform.WithParams(p)
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the wall clock, anchoring the trailing window.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithStore injects a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// --- Factory ---

// New opens the data file at path and returns a ready Service.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init prepares and loads the storage adapter without a service around
// it, for callers that only need raw store access.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}
