package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-bridge/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/todo-bridge/internal/app/dispatch"
	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-bridge/internal/ports"
)

const (
	formatAuto  = "auto"
	formatTable = "table"
	formatCSV   = "csv"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every todo in the local store",
		Long: "Print every todo in the local store. The store is locked by a running server, " +
			"so stop the server first or query its HTTP API instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case formatAuto, formatTable, formatCSV:
			default:
				return fmt.Errorf("--format must be one of auto, table, csv; got %q", format)
			}
			return runList(cmd, opts, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", formatAuto,
		"Output format: auto (table on a terminal, CSV otherwise), table, or csv")

	return cmd
}

func runList(cmd *cobra.Command, opts *rootOptions, format string) error {
	cfg, logger, err := opts.bootstrap(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// Local reads are not traced.
	telemetryOff := cfg.Telemetry
	telemetryOff.Enabled = false
	providers, err := telemetry.Setup(ctx, telemetryOff)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := newInjector(cfg, logger, providers)

	db, err := do.Invoke[*sqlite.DB](injector)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("storage close error", slog.Any("error", closeErr))
		}
	}()

	svc, err := do.Invoke[ports.TodoService](injector)
	if err != nil {
		return fmt.Errorf("resolving service: %w", err)
	}
	bridge := do.MustInvoke[*dispatch.Bridge](injector)
	bridge.Start(context.WithoutCancel(ctx))
	defer func() {
		if shutdownErr := bridge.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("dispatch shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	todos, err := svc.ListTodos(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == formatCSV || (format == formatAuto && !isTerminal(out)) {
		renderTodosCSV(out, todos)
		return nil
	}
	renderTodosTable(out, todos)
	return nil
}

func renderTodosTable(w io.Writer, todos []todo.Todo) {
	tw := newTodoWriter(w, todos)
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.AppendFooter(table.Row{
		"",
		fmt.Sprintf("%d items", len(todos)),
		fmt.Sprintf("%d done", todo.CountCompleted(todos)),
	})
	tw.Render()
}

func renderTodosCSV(w io.Writer, todos []todo.Todo) {
	newTodoWriter(w, todos).RenderCSV()
}

func newTodoWriter(w io.Writer, todos []todo.Todo) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Title", "Completed"})
	for _, t := range todos {
		tw.AppendRow(table.Row{t.ID, t.Title, strconv.FormatBool(t.Completed)})
	}
	return tw
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
