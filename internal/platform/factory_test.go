package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inktally/inktally/internal/platform"
	"github.com/inktally/inktally/pkg/core"
)

func TestNew_CreatesDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article_data.txt")

	service, err := platform.New(path, platform.WithAutoInit(true))
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "data file should exist after open")
	assert.Empty(t, service.Diaries())
}

func TestNew_MustExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := platform.New(path, platform.WithMustExist(true), platform.WithAutoInit(false))
	assert.ErrorIs(t, err, core.ErrDataFileMissing)
}

func TestNew_MalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article_data.txt")
	require.NoError(t, os.WriteFile(path, []byte("garbage line\n"), 0644))

	service, err := platform.New(path)
	require.NoError(t, err, "a corrupt data file is non-fatal")
	assert.Empty(t, service.Diaries())
}

func TestNew_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article_data.txt")

	now := time.Date(2024, time.June, 17, 9, 0, 0, 0, time.UTC) // a Monday
	clock := func() time.Time { return now }

	service, err := platform.New(path, platform.WithClock(clock))
	require.NoError(t, err)

	ctx := context.Background()
	monday := core.DateOf(now)

	// Build six months of low-variance Monday history centered on 10.
	for i := 1; i <= 24; i++ {
		count := 10
		switch i % 6 {
		case 0:
			count = 9
		case 3:
			count = 11
		}
		_, err := service.AddCount(ctx, monday.AddDays(-7*i), "gazette", count)
		require.NoError(t, err)
	}

	report, err := service.AddCount(ctx, monday, "gazette", 10)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, report.WeekdayAverage, 0.2)
	assert.Equal(t, core.LevelWithin, report.Level)
	assert.Equal(t, core.DispersionMode, report.Dispersion)
	assert.True(t, report.ModeMatches)

	// A fresh session sees the same data back from disk.
	reopened, err := platform.New(path, platform.WithClock(clock))
	require.NoError(t, err)

	averages, err := reopened.WeekdayAverages("gazette", monday)
	require.NoError(t, err)
	assert.InDelta(t, report.WeekdayAverage, averages[0], 1e-9)
}
