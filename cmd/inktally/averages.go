package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inktally/inktally/pkg/core"
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var (
	avgDiary   string
	avgPattern string
	avgAsOf    string
)

var averagesCmd = &cobra.Command{
	Use:   "averages",
	Short: "Show per-weekday averages for a diary",
	Long: `Show the mean article count per day of the week over the trailing
window, for one diary (--diary) or every diary matching a glob
(--pattern).`,
	Run: func(cmd *cobra.Command, args []string) {
		if avgDiary == "" && avgPattern == "" {
			fmt.Fprintln(os.Stderr, "Error: either --diary or --pattern is required")
			cmd.Usage()
			os.Exit(1)
		}

		service, _, _, err := openSession()
		if err != nil {
			fatal("Failed to open data file", err)
		}

		asOf := service.Today()
		if avgAsOf != "" {
			asOf, err = core.ParseDate(avgAsOf)
			if err != nil {
				fatal("Invalid --as-of", err)
			}
		}

		diaries := []string{avgDiary}
		if avgPattern != "" {
			diaries, err = matchDiaries(service.Diaries(), avgPattern)
			if err != nil {
				fatal("Invalid --pattern", err)
			}
			if len(diaries) == 0 {
				fmt.Printf("No diaries match %q.\n", avgPattern)
				return
			}
		}

		for _, diary := range diaries {
			averages, err := service.WeekdayAverages(diary, asOf)
			if err != nil {
				fatal("Failed to compute averages", err)
			}

			fmt.Printf("Averages for %s for each day of the week (trailing %d days):\n",
				diary, service.Params().WindowDays)
			for wd, name := range weekdayNames {
				fmt.Printf("  %-9s %.2f articles\n", name+":", averages[wd])
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(averagesCmd)
	averagesCmd.Flags().StringVar(&avgDiary, "diary", "", "Diary name")
	averagesCmd.Flags().StringVar(&avgPattern, "pattern", "", "Glob matching diary names")
	averagesCmd.Flags().StringVar(&avgAsOf, "as-of", "", "Window end date, YYYY-MM-DD (default today)")
}
