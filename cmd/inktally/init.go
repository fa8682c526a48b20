package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inktally/inktally"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty data file",
	Long:  `Create the data file (and its parent directories) if it does not exist yet.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal("Failed to load config", err)
		}

		if _, err := inktally.Init(cfg.DataFile, inktally.WithAutoInit(true)); err != nil {
			fatal("Failed to initialize data file", err)
		}

		fmt.Println("Initialized inktally data file at", cfg.DataFile)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
