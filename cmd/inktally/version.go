package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inktally/inktally"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of inktally",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inktally version %s\n", inktally.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
