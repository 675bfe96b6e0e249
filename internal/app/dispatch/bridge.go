package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todo-bridge/internal/domain"
	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/logging"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-bridge/internal/ports"
)

const (
	tracerName             = "github.com/jsamuelsen11/todo-bridge/internal/app/dispatch"
	defaultResponseTimeout = 5 * time.Second
)

// Compile-time interface checks.
var (
	_ ports.Dispatcher    = (*Bridge)(nil)
	_ ports.HealthChecker = (*Bridge)(nil)
)

var (
	// ErrStopped is returned for commands submitted after shutdown, and for
	// queued commands abandoned when the run loop's context is cancelled.
	ErrStopped = fmt.Errorf("%w: dispatch bridge stopped", domain.ErrUnavailable)

	// ErrUnknownCommand is returned for a command whose Kind is not defined.
	ErrUnknownCommand = fmt.Errorf("%w: unknown command kind", domain.ErrValidation)

	// ErrCorrelation means a reply carried another command's id.
	ErrCorrelation = errors.New("dispatch: response does not match command id")

	// ErrAlreadyRunning is returned by Run when the loop is already running.
	ErrAlreadyRunning = errors.New("dispatch: run loop already running")
)

// State is the run loop's lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateDispatching
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatching:
		return "dispatching"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Bridge owns the command queue and the single run loop that executes
// commands against the repository.
type Bridge struct {
	repo            ports.TodoRepository
	queue           *queue
	logger          *slog.Logger
	metrics         *telemetry.Metrics
	tracer          trace.Tracer
	limiter         *rate.Limiter
	responseTimeout time.Duration

	state   atomic.Int32
	running atomic.Bool
	done    chan struct{}
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the fallback logger used when a command's context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// WithMetrics enables dispatch metrics. Nil disables them.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(b *Bridge) {
		b.metrics = m
	}
}

// WithTracerProvider sets the provider for per-command spans. Defaults to
// the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(b *Bridge) {
		b.tracer = tp.Tracer(tracerName)
	}
}

// WithResponseTimeout bounds how long Submit waits for a reply. Zero or
// negative disables the bound, leaving only the caller's context.
func WithResponseTimeout(d time.Duration) Option {
	return func(b *Bridge) {
		b.responseTimeout = d
	}
}

// WithRateLimit admits at most rps commands per second with the given burst.
// rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(b *Bridge) {
		if rps <= 0 {
			b.limiter = nil
			return
		}
		b.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New creates a Bridge for repo. The run loop is not started; call Start or Run.
func New(repo ports.TodoRepository, opts ...Option) *Bridge {
	b := &Bridge{
		repo:            repo,
		queue:           newQueue(),
		logger:          logging.Discard(),
		tracer:          otel.Tracer(tracerName),
		responseTimeout: defaultResponseTimeout,
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns the run loop's current state.
func (b *Bridge) State() State {
	return State(b.state.Load())
}

// Pending returns the number of queued commands not yet picked up.
func (b *Bridge) Pending() int {
	return b.queue.len()
}

// Done is closed when the run loop has exited.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

// Submit enqueues cmd and waits for its reply. It returns domain.ErrTimeout
// when the response timeout expires and the caller's context error when the
// caller cancels. A command whose caller gave up before the loop reached it
// is never executed.
func (b *Bridge) Submit(ctx context.Context, cmd Command) ([]todo.Todo, error) {
	if cmd.ID == uuid.Nil {
		cmd.ID = uuid.New()
	}

	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("dispatch %s: admission: %w: %w", cmd.Kind, domain.ErrUnavailable, err)
		}
	}

	waitCtx, cancel := ctx, context.CancelFunc(func() {})
	if b.responseTimeout > 0 {
		waitCtx, cancel = context.WithTimeout(ctx, b.responseTimeout)
	}
	defer cancel()

	env := &envelope{
		ctx:      waitCtx,
		cmd:      cmd,
		enqueued: time.Now(),
		reply:    make(chan Response, 1),
	}
	if err := b.queue.push(env); err != nil {
		return nil, fmt.Errorf("dispatch %s: %w", cmd.Kind, err)
	}
	b.addDepth(ctx, 1)

	select {
	case resp := <-env.reply:
		return b.accept(cmd, resp)
	case <-waitCtx.Done():
		// A reply that raced the deadline still wins.
		select {
		case resp := <-env.reply:
			return b.accept(cmd, resp)
		default:
		}
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("dispatch %s: %w", cmd.Kind, ctx.Err())
		}
		return nil, fmt.Errorf("dispatch %s (command %s): %w", cmd.Kind, cmd.ID, domain.ErrTimeout)
	}
}

func (b *Bridge) accept(cmd Command, resp Response) ([]todo.Todo, error) {
	if resp.CommandID != cmd.ID {
		return nil, fmt.Errorf("dispatch %s: got reply for %s, want %s: %w",
			cmd.Kind, resp.CommandID, cmd.ID, ErrCorrelation)
	}
	return resp.Todos, resp.Err
}

// GetTodos implements ports.Dispatcher.
func (b *Bridge) GetTodos(ctx context.Context) ([]todo.Todo, error) {
	return b.Submit(ctx, GetTodos())
}

// AddTodo implements ports.Dispatcher.
func (b *Bridge) AddTodo(ctx context.Context, title string) ([]todo.Todo, error) {
	return b.Submit(ctx, AddTodo(title))
}

// DeleteTodo implements ports.Dispatcher.
func (b *Bridge) DeleteTodo(ctx context.Context, id uint64) ([]todo.Todo, error) {
	return b.Submit(ctx, DeleteTodo(id))
}

// ChangeTitle implements ports.Dispatcher.
func (b *Bridge) ChangeTitle(ctx context.Context, id uint64, title string) ([]todo.Todo, error) {
	return b.Submit(ctx, ChangeTitle(id, title))
}

// ChangeCompleted implements ports.Dispatcher.
func (b *Bridge) ChangeCompleted(ctx context.Context, id uint64, completed bool) ([]todo.Todo, error) {
	return b.Submit(ctx, ChangeCompleted(id, completed))
}

// ChangeAllCompleted implements ports.Dispatcher.
func (b *Bridge) ChangeAllCompleted(ctx context.Context, completed bool) ([]todo.Todo, error) {
	return b.Submit(ctx, ChangeAllCompleted(completed))
}

// DeleteCompleted implements ports.Dispatcher.
func (b *Bridge) DeleteCompleted(ctx context.Context) ([]todo.Todo, error) {
	return b.Submit(ctx, DeleteCompleted())
}

// Start runs the loop in a new goroutine. The bridge counts as running as
// soon as Start returns.
func (b *Bridge) Start(ctx context.Context) {
	if !b.running.CompareAndSwap(false, true) {
		b.logger.WarnContext(ctx, "dispatch run loop already running")
		return
	}
	go func() {
		if err := b.loop(ctx); err != nil && !errors.Is(err, context.Canceled) {
			b.logger.ErrorContext(ctx, "dispatch run loop exited", slog.Any("error", err))
		}
	}()
}

// Run executes queued commands one at a time until the queue is shut down
// and drained (returns nil) or ctx is cancelled (returns ctx.Err()). On
// cancellation every command still queued is answered with ErrStopped.
func (b *Bridge) Run(ctx context.Context) error {
	if !b.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	return b.loop(ctx)
}

func (b *Bridge) loop(ctx context.Context) error {
	defer close(b.done)
	defer b.state.Store(int32(StateStopped))

	b.logger.InfoContext(ctx, "dispatch run loop started")

	for ctx.Err() == nil {
		env, ok := b.queue.pop(ctx)
		if !ok {
			break
		}
		b.dispatch(env)
	}

	if err := ctx.Err(); err != nil {
		b.queue.close()
		abandoned := b.queue.drain()
		for _, env := range abandoned {
			b.addDepth(ctx, -1)
			env.reply <- Response{CommandID: env.cmd.ID, Err: fmt.Errorf("dispatch %s: %w", env.cmd.Kind, ErrStopped)}
		}
		b.logger.WarnContext(ctx, "dispatch run loop cancelled",
			slog.Int("abandoned", len(abandoned)),
			slog.Any("error", err),
		)
		return err
	}

	b.logger.InfoContext(ctx, "dispatch run loop stopped")
	return nil
}

// Shutdown stops accepting commands and waits until every queued command has
// been answered, or until ctx is done.
func (b *Bridge) Shutdown(ctx context.Context) error {
	b.queue.close()

	if !b.running.Load() {
		for _, env := range b.queue.drain() {
			env.reply <- Response{CommandID: env.cmd.ID, Err: fmt.Errorf("dispatch %s: %w", env.cmd.Kind, ErrStopped)}
		}
		b.state.Store(int32(StateStopped))
		return nil
	}

	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for dispatch run loop: %w", ctx.Err())
	}
}

// Name returns the health check identifier.
func (b *Bridge) Name() string {
	return "dispatch"
}

// HealthCheck fails once the run loop has stopped or before it has started.
func (b *Bridge) HealthCheck(_ context.Context) error {
	if b.State() == StateStopped {
		return fmt.Errorf("dispatch: %w: run loop stopped", domain.ErrUnavailable)
	}
	if !b.running.Load() {
		return fmt.Errorf("dispatch: %w: run loop not started", domain.ErrUnavailable)
	}
	return nil
}

func (b *Bridge) addDepth(ctx context.Context, n int64) {
	if b.metrics == nil {
		return
	}
	b.metrics.DispatchQueueDepth.Add(ctx, n)
}

func (b *Bridge) recordCommand(ctx context.Context, kind Kind, result string, wait, took time.Duration) {
	if b.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrCommand.String(kind.String()),
		telemetry.AttrResult.String(result),
	)
	b.metrics.DispatchQueueWait.Record(ctx, wait.Seconds(), attrs)
	b.metrics.DispatchCommandDuration.Record(ctx, took.Seconds(), attrs)
	b.metrics.DispatchCommandTotal.Add(ctx, 1, attrs)
}
