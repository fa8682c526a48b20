package main

import (
	"encoding/json"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

// stateCmd dumps component state, useful when debugging a data file
// that does not load the way the user expects.
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print internal component state as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, store, _, err := openSession()
		if err != nil {
			fatal("Failed to open data file", err)
		}

		state := map[string]any{
			"service": service.State(),
		}
		if in, ok := store.(introspection.Introspectable); ok {
			state["store"] = in.State()
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(state); err != nil {
			fatal("Failed to encode state", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
