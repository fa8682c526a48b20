package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inktally/inktally/pkg/core"
)

var (
	summaryDate  string
	summaryDiary string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a diary's counts for a date and the six days before it",
	Run: func(cmd *cobra.Command, args []string) {
		service, _, _, err := openSession()
		if err != nil {
			fatal("Failed to open data file", err)
		}

		end := service.Today()
		if summaryDate != "" {
			end, err = core.ParseDate(summaryDate)
			if err != nil {
				fatal("Invalid --date", err)
			}
		}

		week, err := service.WeekSummary(end, summaryDiary)
		if err != nil {
			fatal("Failed to build summary", err)
		}

		fmt.Printf("Last week for %s (ending %s):\n", summaryDiary, end)
		for _, day := range week {
			fmt.Printf("  %s  %d\n", day.Date, day.Count)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "End date, YYYY-MM-DD (default today)")
	summaryCmd.Flags().StringVar(&summaryDiary, "diary", "", "Diary name")
	summaryCmd.MarkFlagRequired("diary")
}
