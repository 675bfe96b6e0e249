package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-bridge/internal/platform/config"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/logging"
)

const profileEnv = "APP_PROFILE"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "todod",
		Short:         "Todo command bridge service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.profile, "profile", "p", os.Getenv(profileEnv),
		"Configuration profile (local, dev, prod); defaults to $"+profileEnv)
	rootCmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs",
		"Directory holding base.yaml and the profile files")

	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newMigrateCommand(opts))
	rootCmd.AddCommand(newListCommand(opts))

	return rootCmd
}

// bootstrap loads configuration for the selected profile and builds the
// process logger. Logs always go to the command's stderr so that stdout
// stays clean for command output.
func (o *rootOptions) bootstrap(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	if o.profile == "" {
		return nil, nil, errors.New("a profile is required: pass --profile or set " + profileEnv + " (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(o.profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	return cfg, logger, nil
}
