// Package cmd provides the CLI commands for the marbles tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/marble-mania/internal"
	"github.com/rocketscienceinc/marble-mania/internal/config"
)

const defaultConfigPath = "./config.yml"

var (
	configPath string

	conf   *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "marbles",
	Short: "Marble circle game solver",
	Long: `marbles plays the marble circle game: players take turns placing
numbered marbles into a circle, and every 23rd marble scores instead.

It reports the winning score for the puzzle input and for the same game
with the last marble multiplied.`,
	SilenceUsage:      true,
	PersistentPreRunE: persistentPreRun,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to config file")
}

// persistentPreRun loads config and logger before every command.
func persistentPreRun(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	conf = loaded
	logger = initLogger(conf, cmd.ErrOrStderr())

	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

// initLogger writes JSON logs to w; answers own stdout.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func streamsOf(cmd *cobra.Command) application.Streams {
	return application.Streams{
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
}
