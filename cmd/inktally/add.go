package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inktally/inktally/pkg/core"
)

var (
	addDate  string
	addDiary string
	addCount string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a day's article count for a diary",
	Long: `Record (or overwrite) the article count for a diary on a date,
classify it against the diary's history, and rewrite the data file.`,
	Run: func(cmd *cobra.Command, args []string) {
		service, _, _, err := openSession()
		if err != nil {
			fatal("Failed to open data file", err)
		}

		date := service.Today()
		if addDate != "" {
			date, err = core.ParseDate(addDate)
			if err != nil {
				fatal("Invalid --date", err)
			}
		}

		count, err := strconv.Atoi(strings.TrimSpace(addCount))
		if err != nil {
			fatal("Invalid --count", fmt.Errorf("%w: %q", core.ErrInvalidCount, addCount))
		}

		report, err := service.AddCount(context.Background(), date, addDiary, count)
		if err != nil {
			fatal("Failed to record count", err)
		}

		renderReport(os.Stdout, report)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addDate, "date", "", "Date of the record, YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addDiary, "diary", "", "Diary name")
	addCmd.Flags().StringVar(&addCount, "count", "", "Number of articles")
	addCmd.MarkFlagRequired("diary")
	addCmd.MarkFlagRequired("count")
}

// renderReport prints the classification outcome the way the original
// form presented it: confirmation, weekday position, dispersion
// verdict, then the trailing week.
func renderReport(w io.Writer, r *core.Report) {
	fmt.Fprintf(w, "Articles for %s from %s updated with %d articles.\n", r.Date, r.Diary, r.Count)
	fmt.Fprintf(w, "Average for this weekday: %.2f\n", r.WeekdayAverage)
	fmt.Fprintf(w, "Count is %s.\n", r.Level)

	switch r.Dispersion {
	case core.DispersionIQR:
		fmt.Fprintf(w, "Coefficient of variation: %.2f\n", r.CV)
		if r.BelowQ1 {
			fmt.Fprintf(w, "Count is below the first quartile (Q1=%.2f).\n", r.Q1)
		} else {
			fmt.Fprintf(w, "Count is within the interquartile range (Q1=%.2f, Q3=%.2f).\n", r.Q1, r.Q3)
		}
	case core.DispersionMode:
		fmt.Fprintf(w, "Coefficient of variation: %.2f\n", r.CV)
		if r.ModeMatches {
			fmt.Fprintf(w, "Count matches the most frequent value (%d articles).\n", r.ModeValue)
		} else {
			fmt.Fprintf(w, "Count does not match the most frequent value (%d articles).\n", r.ModeValue)
		}
	}

	fmt.Fprintf(w, "Last week for %s:\n", r.Diary)
	for _, day := range r.Week {
		fmt.Fprintf(w, "  %s  %d\n", day.Date, day.Count)
	}
}
