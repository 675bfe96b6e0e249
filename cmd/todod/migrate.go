package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-bridge/internal/adapters/storage/sqlite"
)

const (
	migrateUp     = "up"
	migrateStatus = "status"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|status]",
		Short:     "Apply pending schema migrations or report their state",
		Long:      "Apply pending schema migrations (the default) or print which migrations are applied.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{migrateUp, migrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := migrateUp
			if len(args) == 1 {
				action = args[0]
			}
			return runMigrate(cmd, opts, action)
		},
	}
}

func runMigrate(cmd *cobra.Command, opts *rootOptions, action string) error {
	cfg, logger, err := opts.bootstrap(cmd)
	if err != nil {
		return err
	}

	// Migrations here are explicit; never let Open apply them first.
	storage := cfg.Storage
	storage.AutoMigrate = false

	ctx := cmd.Context()
	db, err := sqlite.Open(ctx, storage, logger)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("storage close error", slog.Any("error", closeErr))
		}
	}()

	if action == migrateUp {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
	}

	states, err := db.MigrationStatus(ctx)
	if err != nil {
		return err
	}
	renderMigrations(cmd.OutOrStdout(), states)
	return nil
}

func renderMigrations(w io.Writer, states []sqlite.MigrationState) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Version", "Source", "Applied", "Applied At"})

	for _, s := range states {
		appliedAt := "-"
		if s.Applied && !s.AppliedAt.IsZero() {
			appliedAt = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		tw.AppendRow(table.Row{s.Version, s.Source, strconv.FormatBool(s.Applied), appliedAt})
	}

	tw.Render()
}
