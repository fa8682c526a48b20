package core_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inktally/inktally/pkg/core"
)

// MockStore implements core.Store in memory, without a backing file.
type MockStore struct {
	records map[core.Date]map[string]int
	saves   int
	saveErr error
}

func NewMockStore() *MockStore {
	return &MockStore{records: make(map[core.Date]map[string]int)}
}

func (m *MockStore) Load(ctx context.Context) error { return nil }

func (m *MockStore) Save(ctx context.Context) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	return nil
}

func (m *MockStore) Add(date core.Date, diary string, count int) {
	if m.records[date] == nil {
		m.records[date] = make(map[string]int)
	}
	m.records[date][diary] = count
}

func (m *MockStore) Count(date core.Date, diary string) (int, bool) {
	count, ok := m.records[date][diary]
	return count, ok
}

func (m *MockStore) CountsSince(diary string, cutoff core.Date) []core.DatedCount {
	var out []core.DatedCount
	for date, diaries := range m.records {
		if date.Before(cutoff) {
			continue
		}
		if count, ok := diaries[diary]; ok {
			out = append(out, core.DatedCount{Date: date, Count: count})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (m *MockStore) Diaries() []string {
	seen := make(map[string]bool)
	for _, diaries := range m.records {
		for diary := range diaries {
			seen[diary] = true
		}
	}
	var names []string
	for diary := range seen {
		names = append(names, diary)
	}
	sort.Strings(names)
	return names
}

func (m *MockStore) Len() int {
	n := 0
	for _, diaries := range m.records {
		n += len(diaries)
	}
	return n
}

// 2024-06-17 is a Monday; every test anchors "now" there.
var testToday = core.NewDate(2024, time.June, 17)

func newTestService(store core.Store) *core.Service {
	return core.NewService(store, core.WithClock(func() time.Time {
		return time.Date(2024, time.June, 17, 12, 0, 0, 0, time.UTC)
	}))
}

func TestWeekdayAverages(t *testing.T) {
	store := NewMockStore()
	service := newTestService(store)

	// Two recent Mondays and one Wednesday.
	store.Add(testToday.AddDays(-7), "gazette", 10)
	store.Add(testToday.AddDays(-14), "gazette", 20)
	store.Add(testToday.AddDays(-5), "gazette", 7) // Wednesday

	// A record just outside the 180-day window and one from another diary.
	store.Add(testToday.AddDays(-181), "gazette", 999)
	store.Add(testToday.AddDays(-7), "tribune", 500)

	averages, err := service.WeekdayAverages("gazette", testToday)
	require.NoError(t, err)

	assert.InDelta(t, 15.0, averages[0], 1e-9, "Monday")
	assert.InDelta(t, 7.0, averages[2], 1e-9, "Wednesday")
	for _, wd := range []int{1, 3, 4, 5, 6} {
		assert.Zero(t, averages[wd], "weekday %d has no samples", wd)
	}
}

func TestWeekdayAverages_WindowEdges(t *testing.T) {
	store := NewMockStore()
	service := newTestService(store)

	// Exactly 180 days back still qualifies; future dates are not excluded.
	oldest := testToday.AddDays(-180)
	future := testToday.AddDays(7) // Monday next week
	store.Add(oldest, "gazette", 6)
	store.Add(future, "gazette", 12)

	averages, err := service.WeekdayAverages("gazette", testToday)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, averages[oldest.Weekday()], 1e-9)
	assert.InDelta(t, 12.0, averages[0], 1e-9, "future Monday counted")
}

func TestWeekdayAverages_EmptyDiary(t *testing.T) {
	service := newTestService(NewMockStore())
	_, err := service.WeekdayAverages("", testToday)
	assert.ErrorIs(t, err, core.ErrEmptyDiary)
}

func TestWeekSummary(t *testing.T) {
	store := NewMockStore()
	service := newTestService(store)

	store.Add(testToday, "gazette", 4)
	store.Add(testToday.AddDays(-3), "gazette", 9)
	store.Add(testToday.AddDays(-7), "gazette", 99) // outside the 7-day span

	week, err := service.WeekSummary(testToday, "gazette")
	require.NoError(t, err)
	require.Len(t, week, 7)

	// Newest first, zero-filled gaps.
	assert.Equal(t, testToday, week[0].Date)
	assert.Equal(t, 4, week[0].Count)
	assert.Equal(t, testToday.AddDays(-6), week[6].Date)

	var counts []int
	for _, day := range week {
		counts = append(counts, day.Count)
	}
	assert.Equal(t, []int{4, 0, 0, 9, 0, 0, 0}, counts)
}

func TestAddCount_Validation(t *testing.T) {
	service := newTestService(NewMockStore())

	_, err := service.AddCount(context.Background(), testToday, "", 5)
	assert.ErrorIs(t, err, core.ErrEmptyDiary)
}

func TestAddCount_SaveFailure(t *testing.T) {
	store := NewMockStore()
	store.saveErr = assert.AnError
	service := newTestService(store)

	report, err := service.AddCount(context.Background(), testToday, "gazette", 5)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, assert.AnError)

	// The upsert itself survives the failed flush.
	count, ok := store.Count(testToday, "gazette")
	assert.True(t, ok)
	assert.Equal(t, 5, count)
}

func TestAddCount_LowVarianceUsesMode(t *testing.T) {
	store := NewMockStore()
	service := newTestService(store)

	// Twelve Mondays of history averaging exactly 10 with low variance.
	history := []int{10, 9, 10, 11, 10, 10, 9, 10, 11, 10, 10, 10}
	for i, count := range history {
		store.Add(testToday.AddDays(-7*(i+1)), "gazette", count)
	}

	report, err := service.AddCount(context.Background(), testToday, "gazette", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, store.saves)

	assert.InDelta(t, 10.0, report.WeekdayAverage, 1e-9)
	assert.Equal(t, core.LevelWithin, report.Level)

	// The new record takes part in its own analysis.
	assert.Equal(t, len(history)+1, report.SampleSize)
	assert.Less(t, report.CV, 0.2)
	assert.Equal(t, core.DispersionMode, report.Dispersion)
	assert.Equal(t, 10, report.ModeValue)
	assert.True(t, report.ModeMatches)

	require.Len(t, report.Week, 7)
	assert.Equal(t, 10, report.Week[0].Count)
}

func TestAddCount_HighVarianceUsesIQR(t *testing.T) {
	store := NewMockStore()
	service := newTestService(store)

	for i, count := range []int{10, 50, 100, 150, 200} {
		store.Add(testToday.AddDays(-(i + 1)), "gazette", count)
	}

	report, err := service.AddCount(context.Background(), testToday, "gazette", 1)
	require.NoError(t, err)

	assert.Greater(t, report.CV, 0.2)
	assert.Equal(t, core.DispersionIQR, report.Dispersion)
	// Sample sorted: [1,10,50,100,150,200] -> Q1 = 10 + 0.25*(50-10)
	assert.InDelta(t, 20.0, report.Q1, 1e-9)
	assert.True(t, report.BelowQ1)
}

func TestAddCount_FirstRecordEver(t *testing.T) {
	store := NewMockStore()
	service := newTestService(store)

	report, err := service.AddCount(context.Background(), testToday, "gazette", 7)
	require.NoError(t, err)

	// The freshly added count is the whole sample.
	assert.Equal(t, 1, report.SampleSize)
	assert.Equal(t, core.DispersionMode, report.Dispersion)
	assert.Equal(t, 7, report.ModeValue)
	assert.True(t, report.ModeMatches)

	// Its own weekday average is itself.
	assert.InDelta(t, 7.0, report.WeekdayAverage, 1e-9)
	assert.Equal(t, core.LevelWithin, report.Level)
}

func TestAddCount_OutsideWindow(t *testing.T) {
	store := NewMockStore()
	service := newTestService(store)

	// A record far in the past contributes nothing to the analysis.
	ancient := testToday.AddDays(-400)
	report, err := service.AddCount(context.Background(), ancient, "gazette", 3)
	require.NoError(t, err)

	assert.Equal(t, 0, report.SampleSize)
	assert.Equal(t, core.DispersionNone, report.Dispersion)
	assert.Zero(t, report.WeekdayAverage)
	assert.Equal(t, core.LevelAbove, report.Level) // any positive count beats a 0 average
}
