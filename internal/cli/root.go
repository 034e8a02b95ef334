// Package cli implements the wigglyboard command-line interface.
//
// Without a subcommand it opens the drawing window. The replay subcommand
// draws a scripted gesture headlessly and writes the animation as PNG
// frames. All commands accept --config (-c) for a TOML settings file and
// --verbose (-v) for debug logging.
package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/engine"
	"WigglyBoard/internal/ui"
)

// Execute runs the wigglyboard CLI until the command finishes or ctx is
// cancelled.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func NewRootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "wigglyboard",
		Short:        "WigglyBoard is a drawing board whose strokes keep moving",
		Long:         `WigglyBoard is a drawing board with hand-drawn jitter, recorded brush animations and echo trails.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if configPath != "" {
				logger.Debug("config loaded", "path", configPath)
			}
			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			e := engine.New(configFromContext(ctx), engine.WithLogger(logger))
			ui.RunApp(e, logger)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML settings file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newReplayCmd())
	return root
}

// loadConfig reads path, or returns the defaults when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
