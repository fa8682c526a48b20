package main

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var diariesPattern string

var diariesCmd = &cobra.Command{
	Use:   "diaries",
	Short: "List the diary names present in the data file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, _, _, err := openSession()
		if err != nil {
			fatal("Failed to open data file", err)
		}

		names := service.Diaries()
		if diariesPattern != "" {
			names, err = matchDiaries(names, diariesPattern)
			if err != nil {
				fatal("Invalid --pattern", err)
			}
		}

		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(diariesCmd)
	diariesCmd.Flags().StringVar(&diariesPattern, "pattern", "", "Glob matching diary names")
}

// matchDiaries filters diary names with a doublestar glob.
func matchDiaries(names []string, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("bad pattern %q", pattern)
	}

	var matched []string
	for _, name := range names {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}
