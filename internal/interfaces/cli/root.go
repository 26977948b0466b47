// Package cli implements the spotlight command line interface: the serve
// command running the HTTP server and the recognize command highlighting
// entities directly in the terminal.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turtacn/ner-spotlight/internal/config"
	"github.com/turtacn/ner-spotlight/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	NoColor    bool
}

// NewRootCommand creates the root cobra command with global flags and
// subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "spotlight",
		Short: "Named entity recognition demo service",
		Long: `spotlight runs named entity recognition against a hosted inference
endpoint, merges sub-word token predictions into entity spans, and renders
highlighted output in the terminal or over HTTP.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.NoColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config file (yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level override: debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewRecognizeCmd(opts))
	cmd.AddCommand(NewServeCmd(opts))

	return cmd
}

// loadConfig resolves the configuration for a command run: an explicit file
// when --config is set, environment variables otherwise, with the log level
// flag taking precedence over both.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	return cfg, nil
}

// newLogger builds the logger configured by cfg.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	return logging.NewLogger(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
