package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inktally/inktally"
	"github.com/inktally/inktally/internal/config"
	"github.com/inktally/inktally/pkg/core"
)

const defaultConfigPath = "inktally.yaml"

var (
	verbose    bool
	configPath string
	dataFile   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "inktally",
	Short: "Track daily article counts per diary and flag anomalies",
	Long: `inktally records how many articles each diary (a named content
source) published per day, in a plain comma-separated text file, and
judges new counts against weekday averages, coefficient of variation,
interquartile range, and mode over a trailing window.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Path to the data file (overrides config)")
}

// loadConfig resolves the effective configuration from file, environment
// and flags, in ascending precedence.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == defaultConfigPath {
		if env := os.Getenv(config.EnvConfigFile); env != "" {
			path = env
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	return cfg, nil
}

// openSession assembles the store and service for a command.
func openSession(opts ...inktally.Option) (*core.Service, core.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append([]inktally.Option{inktally.WithLogger(slog.Default())}, opts...)

	store, err := inktally.Init(cfg.DataFile, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	service := core.NewService(store,
		core.WithLogger(slog.Default()),
		core.WithParams(core.Params{
			WindowDays:  cfg.WindowDays,
			CVThreshold: cfg.CVThreshold,
			UnderRatio:  cfg.UnderRatio,
		}),
	)

	return service, store, cfg, nil
}
