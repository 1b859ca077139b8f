package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/feedr/internal/application"
	"github.com/inovacc/feedr/internal/model"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	dataDir   string
	logLevel  string
	logFormat string

	// cfg is the effective configuration, set before any command runs
	cfg = model.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "An automatic fish feeder controller",
	Long: `Feedr runs the control logic of an automatic fish feeder.

It keeps a daily schedule of up to nine feeds, turns the feeder at the
scheduled times while in Auto mode, and exposes the two-button menu of the
device panel in the terminal. The schedule, the operating mode and the clock
survive restarts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default <app dir>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the state and feed history")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}

	return application.ConfigPath()
}

// initConfig loads the config file, applies flag overrides and installs the
// default logger.
func initConfig(cmd *cobra.Command) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	loaded, err := model.LoadConfig(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		loaded.DataDir = dataDir
	}

	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}

	if flags.Changed("log-format") {
		loaded.LogFormat = logFormat
	}

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	logger, err := newLogger(os.Stderr, loaded.LogLevel, loaded.LogFormat)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)
	cfg = loaded

	return nil
}
