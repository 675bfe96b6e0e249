package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-bridge/internal/domain"
	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/logging"
)

// Result labels for dispatch.command.total.
const (
	resultSuccess  = "success"
	resultRejected = "rejected"
	resultFailure  = "failure"
	resultSkipped  = "skipped"
)

// dispatch runs one envelope on the loop goroutine and always replies.
func (b *Bridge) dispatch(env *envelope) {
	ctx := env.ctx
	logger := logging.FromContextOr(ctx, b.logger).With(
		slog.String("command", env.cmd.Kind.String()),
		slog.String("command_id", env.cmd.ID.String()),
	)
	wait := time.Since(env.enqueued)
	b.addDepth(ctx, -1)

	if err := ctx.Err(); err != nil {
		logger.WarnContext(ctx, "skipping command abandoned by caller",
			slog.Duration("queue_wait", wait),
			slog.Any("error", err),
		)
		env.reply <- Response{CommandID: env.cmd.ID, Err: fmt.Errorf("dispatch %s skipped: %w", env.cmd.Kind, err)}
		b.recordCommand(context.WithoutCancel(ctx), env.cmd.Kind, resultSkipped, wait, 0)
		return
	}

	b.state.Store(int32(StateDispatching))
	defer b.state.Store(int32(StateIdle))

	ctx, span := b.tracer.Start(ctx, "dispatch "+env.cmd.Kind.String(),
		trace.WithAttributes(
			attribute.String("dispatch.command", env.cmd.Kind.String()),
			attribute.String("dispatch.command_id", env.cmd.ID.String()),
		),
	)
	defer span.End()

	logger.DebugContext(ctx, "dispatching command", slog.Duration("queue_wait", wait))

	start := time.Now()
	todos, err := b.execute(ctx, env.cmd)
	took := time.Since(start)

	env.reply <- Response{CommandID: env.cmd.ID, Todos: todos, Err: err}

	result := resultSuccess
	switch {
	case err == nil:
		span.SetAttributes(attribute.Int("dispatch.todos", len(todos)))
	case domain.IsCallerError(err):
		result = resultRejected
		span.SetStatus(codes.Error, err.Error())
		logger.InfoContext(ctx, "command rejected", slog.Any("error", err))
	default:
		result = resultFailure
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.ErrorContext(ctx, "command failed",
			slog.String("operation", env.cmd.Kind.String()),
			slog.Any("error", err),
		)
	}

	b.recordCommand(context.WithoutCancel(ctx), env.cmd.Kind, result, wait, took)
}

// execute maps a command onto repository calls. Single-row commands read
// the list in the same loop turn, so no other command can interleave.
func (b *Bridge) execute(ctx context.Context, cmd Command) (todos []todo.Todo, err error) {
	defer func() {
		if p := recover(); p != nil {
			todos = nil
			err = fmt.Errorf("dispatch %s: %w: panic: %v", cmd.Kind, domain.ErrEngineFailure, p)
		}
	}()

	switch cmd.Kind {
	case KindGetTodos:
		todos, err = b.repo.ListTodos(ctx)
	case KindAddTodo:
		todos, err = b.thenList(ctx, func() error {
			_, err := b.repo.CreateTodo(ctx, cmd.Title)
			return err
		})
	case KindDeleteTodo:
		todos, err = b.thenList(ctx, func() error {
			_, err := b.repo.DeleteTodo(ctx, cmd.TodoID)
			return err
		})
	case KindChangeTitle:
		todos, err = b.thenList(ctx, func() error {
			_, err := b.repo.ChangeTitle(ctx, cmd.TodoID, cmd.Title)
			return err
		})
	case KindChangeCompleted:
		todos, err = b.thenList(ctx, func() error {
			_, err := b.repo.ChangeCompleted(ctx, cmd.TodoID, cmd.Completed)
			return err
		})
	case KindChangeAllCompleted:
		todos, err = b.repo.ChangeAllCompleted(ctx, cmd.Completed)
	case KindDeleteCompleted:
		todos, err = b.repo.DeleteCompleted(ctx)
	default:
		return nil, fmt.Errorf("dispatch %s: %w", cmd.Kind, ErrUnknownCommand)
	}

	if err != nil {
		return nil, fmt.Errorf("dispatch %s: %w", cmd.Kind, err)
	}
	return todos, nil
}

func (b *Bridge) thenList(ctx context.Context, mutate func() error) ([]todo.Todo, error) {
	if err := mutate(); err != nil {
		return nil, err
	}
	return b.repo.ListTodos(ctx)
}
