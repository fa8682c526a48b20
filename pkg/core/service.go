package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/inktally/inktally/pkg/stats"
)

// Params holds the tunables of the anomaly analysis.
type Params struct {
	// WindowDays is the length of the trailing window, in calendar days,
	// used for weekday averages and the dispersion sample.
	WindowDays int

	// CVThreshold splits the second phase: samples with a coefficient
	// of variation above it are judged by interquartile range, the rest
	// by mode match.
	CVThreshold float64

	// UnderRatio is the fraction of the weekday average below which a
	// count classifies as under.
	UnderRatio float64
}

// DefaultParams returns the standard analysis parameters: a 180-day
// window, a 0.2 variation threshold, and the 80% under-average line.
func DefaultParams() Params {
	return Params{
		WindowDays:  180,
		CVThreshold: 0.2,
		UnderRatio:  0.8,
	}
}

// Service handles the business logic for article counts: validation,
// upserts, weekday analysis, and anomaly classification.
type Service struct {
	store  Store
	params Params
	logger *slog.Logger
	now    func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithParams overrides the default analysis parameters.
func WithParams(p Params) ServiceOption {
	return func(s *Service) { s.params = p }
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the wall clock, anchoring the trailing window.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new Service around a store.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		params: DefaultParams(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Params returns the analysis parameters in effect.
func (s *Service) Params() Params {
	return s.params
}

// Today returns the current calendar day on the service clock.
func (s *Service) Today() Date {
	return DateOf(s.now())
}

// windowStart is the earliest date still inside the trailing window.
func (s *Service) windowStart() Date {
	return s.Today().AddDays(-s.params.WindowDays)
}

// AddCount validates and upserts a count, classifies it against the
// diary's history, and flushes the store. The returned report reflects
// the store state after the upsert, so the new count takes part in its
// own analysis. A save failure aborts the operation (the in-memory
// upsert survives) and is returned to the caller.
func (s *Service) AddCount(ctx context.Context, date Date, diary string, count int) (*Report, error) {
	if diary == "" {
		return nil, ErrEmptyDiary
	}

	s.store.Add(date, diary, count)
	s.logger.Debug("count recorded", "date", date.String(), "diary", diary, "count", count)

	report := s.report(date, diary, count)

	if err := s.store.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save store: %w", err)
	}

	return report, nil
}

// report assembles the classification for an already-recorded count.
func (s *Service) report(date Date, diary string, count int) *Report {
	averages := s.weekdayAverages(diary, s.Today())
	average := averages[date.Weekday()]

	r := &Report{
		Date:           date,
		Diary:          diary,
		Count:          count,
		WeekdayAverage: average,
		Level:          ClassifyLevel(count, average, s.params.UnderRatio),
		Dispersion:     DispersionNone,
		Week:           s.weekSummary(date, diary),
	}

	sample := s.sample(diary)
	r.SampleSize = len(sample)
	if len(sample) == 0 {
		return r
	}

	r.CV = stats.CoefficientOfVariation(sample)
	if r.CV > s.params.CVThreshold {
		r.Dispersion = DispersionIQR
		r.Q1, r.Q3, r.IQR = stats.Quartiles(sample)
		r.BelowQ1 = float64(count) < r.Q1
	} else {
		r.Dispersion = DispersionMode
		r.ModeMatches, r.ModeValue = stats.ModeMatch(sample, count)
	}

	return r
}

// sample collects every trailing-window count for the diary, ordered by
// date ascending so that mode tie-breaking is deterministic.
func (s *Service) sample(diary string) []int {
	records := s.store.CountsSince(diary, s.windowStart())
	counts := make([]int, len(records))
	for i, rec := range records {
		counts[i] = rec.Count
	}
	return counts
}

// WeekdayAverages computes the mean count per weekday (Monday = 0) for
// the diary over the trailing window ending at asOf. Weekdays with no
// qualifying records report 0, indistinguishable from a true zero
// average; future-dated records are not excluded.
func (s *Service) WeekdayAverages(diary string, asOf Date) ([7]float64, error) {
	if diary == "" {
		return [7]float64{}, ErrEmptyDiary
	}
	return s.weekdayAverages(diary, asOf), nil
}

func (s *Service) weekdayAverages(diary string, asOf Date) [7]float64 {
	var sums [7]int
	var counts [7]int

	cutoff := asOf.AddDays(-s.params.WindowDays)
	for _, rec := range s.store.CountsSince(diary, cutoff) {
		wd := rec.Date.Weekday()
		sums[wd] += rec.Count
		counts[wd]++
	}

	var averages [7]float64
	for wd := range averages {
		if counts[wd] > 0 {
			averages[wd] = float64(sums[wd]) / float64(counts[wd])
		}
	}
	return averages
}

// WeekSummary returns the diary's counts for end and the six preceding
// days, newest first, with 0 for days that have no record.
func (s *Service) WeekSummary(end Date, diary string) ([]DatedCount, error) {
	if diary == "" {
		return nil, ErrEmptyDiary
	}
	return s.weekSummary(end, diary), nil
}

func (s *Service) weekSummary(end Date, diary string) []DatedCount {
	week := make([]DatedCount, 0, 7)
	for i := 0; i < 7; i++ {
		day := end.AddDays(-i)
		count, _ := s.store.Count(day, diary)
		week = append(week, DatedCount{Date: day, Count: count})
	}
	return week
}

// Diaries lists the distinct diary names known to the store.
func (s *Service) Diaries() []string {
	return s.store.Diaries()
}
