package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/inktally/inktally/pkg/core"
)

var watchDiary string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the data file and reprint averages on every change",
	Long: `Watch the data file for external rewrites; whenever it changes,
reload the store and print the weekday averages for a diary again.
This observes only: concurrent writers stay unsupported and the last
writer still wins.`,
	Run: func(cmd *cobra.Command, args []string) {
		service, store, cfg, err := openSession()
		if err != nil {
			fatal("Failed to open data file", err)
		}

		watchable, ok := store.(core.Watchable)
		if !ok {
			fatal("Store does not support watching", fmt.Errorf("adapter %T", store))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := watchable.Watch(ctx)
		if err != nil {
			fatal("Failed to watch data file", err)
		}

		fmt.Printf("Watching %s (Ctrl-C to stop)\n", cfg.DataFile)
		printAverages(service, watchDiary)

		for event := range events {
			if event.Err != nil {
				fmt.Fprintf(os.Stderr, "reload failed: %v\n", event.Err)
				continue
			}
			fmt.Printf("\nData file changed (%d records).\n", event.Records)
			printAverages(service, watchDiary)
		}
	},
}

func printAverages(service *core.Service, diary string) {
	averages, err := service.WeekdayAverages(diary, service.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "averages failed: %v\n", err)
		return
	}
	fmt.Printf("Averages for %s:\n", diary)
	for wd, name := range weekdayNames {
		fmt.Printf("  %-9s %.2f articles\n", name+":", averages[wd])
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchDiary, "diary", "", "Diary name")
	watchCmd.MarkFlagRequired("diary")
}
