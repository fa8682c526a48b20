package inktally_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/inktally/inktally"
	"github.com/inktally/inktally/pkg/core"
)

// Example_basic demonstrates opening a data file, recording a count,
// and reading back the classification.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "inktally-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Pin the clock so the trailing window is stable.
	now := time.Date(2024, time.June, 17, 9, 0, 0, 0, time.UTC) // a Monday
	service, err := inktally.New(filepath.Join(tmpDir, "article_data.txt"),
		inktally.WithClock(func() time.Time { return now }))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	monday := core.DateOf(now)

	// Record a few Mondays of history, then today's count.
	for i, count := range []int{9, 10, 10, 11, 10} {
		if _, err := service.AddCount(ctx, monday.AddDays(-7*(i+1)), "gazette", count); err != nil {
			log.Fatal(err)
		}
	}

	report, err := service.AddCount(ctx, monday, "gazette", 10)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Average for this weekday: %.2f\n", report.WeekdayAverage)
	fmt.Printf("Count is %s.\n", report.Level)
	// Output:
	// Average for this weekday: 10.00
	// Count is within 80% of the average.
}
