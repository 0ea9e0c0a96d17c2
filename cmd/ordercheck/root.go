package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/ordercheck/internal/cli"
	"github.com/aretw0/ordercheck/internal/config"
	"github.com/aretw0/ordercheck/internal/logging"
	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ordercheck [path]",
	Short: "Classify words by the order of their characters",
	Long: `ordercheck reads one word per line from a file (or from standard input with --pipe)
and prints each word followed by IN ORDER, REVERSE ORDER or NOT IN ORDER.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		pipe, _ := cmd.Flags().GetBool("pipe")
		summary, _ := cmd.Flags().GetBool("summary")

		// Only the very first command-line argument names a file; a path
		// given after a flag (e.g. "-p words.txt") is not one.
		path := ""
		if len(args) > 0 && args[0] == firstRawArg {
			path = args[0]
		}

		// SIGINT keeps its default action so a run blocked on stdin still terminates.
		return cli.RunClassify(cmd.Context(), cli.ClassifyOptions{
			Path:    path,
			Pipe:    pipe,
			Format:  cfg.Format,
			Color:   cfg.Color,
			Summary: summary,
			Stdin:   cmd.InOrStdin(),
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
			Logger:  logger,
		})
	},
}

// firstRawArg is the first command-line argument before flag parsing.
var firstRawArg string

// Execute runs the root command with the process arguments and returns the
// process exit code.
func Execute() int {
	return run(os.Args[1:])
}

func run(args []string) int {
	firstRawArg = ""
	if len(args) > 0 {
		firstRawArg = args[0]
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		// The no-input message has already been printed by the command.
		if !errors.Is(err, domain.ErrNoInput) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}

// loadSettings reads the config file and applies explicitly set flags on top.
func loadSettings(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("color") {
		cfg.Color, _ = cmd.Flags().GetString("color")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("addr") {
		cfg.Serve.Addr, _ = cmd.Flags().GetString("addr")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	rootCmd.Flags().BoolP("pipe", "p", false, "Read words from standard input when no readable path is given")
	rootCmd.Flags().String("format", config.FormatText, "Output format: text or json")
	rootCmd.Flags().String("color", config.ColorNever, "Color labels: auto, always or never")
	rootCmd.Flags().Bool("summary", false, "Log per-state counts to stderr when done")
}
