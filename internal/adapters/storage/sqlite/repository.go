package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/todo-bridge/internal/domain"
	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/config"
	"github.com/jsamuelsen11/todo-bridge/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

// Repository implements ports.TodoRepository on top of DB. It caches nothing.
type Repository struct {
	db      *DB
	breaker *gobreaker.CircuitBreaker[any]
	logger  *slog.Logger

	// rowHook, when set, runs before each row mutation of a bulk operation.
	// A non-nil return aborts the operation.
	rowHook func(index int, t todo.Todo) error
}

// NewRepository wraps db with a circuit breaker configured by cfg.
func NewRepository(db *DB, cfg config.CircuitBreakerConfig, logger *slog.Logger) *Repository {
	return &Repository{
		db:      db,
		breaker: newBreaker(cfg, logger),
		logger:  logger,
	}
}

// CreateTodo implements ports.TodoRepository.
func (r *Repository) CreateTodo(ctx context.Context, title string) (todo.Todo, error) {
	title = todo.NormalizeTitle(title)
	if err := todo.ValidateTitle(title); err != nil {
		return todo.Todo{}, err
	}

	return guard(r.breaker, func() (todo.Todo, error) {
		return r.db.Space().Insert(ctx, title, false)
	})
}

// DeleteTodo implements ports.TodoRepository.
func (r *Repository) DeleteTodo(ctx context.Context, id uint64) (todo.Todo, error) {
	return guard(r.breaker, func() (todo.Todo, error) {
		t, found, err := r.db.Space().Delete(ctx, id)
		if err != nil {
			return todo.Todo{}, err
		}
		if !found {
			return todo.Todo{}, notFound(id)
		}
		return t, nil
	})
}

// ListTodos implements ports.TodoRepository.
func (r *Repository) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	return guard(r.breaker, func() ([]todo.Todo, error) {
		return r.db.Space().Select(ctx, Filter{})
	})
}

// ChangeTitle implements ports.TodoRepository.
func (r *Repository) ChangeTitle(ctx context.Context, id uint64, title string) (todo.Todo, error) {
	title = todo.NormalizeTitle(title)
	if err := todo.ValidateTitle(title); err != nil {
		return todo.Todo{}, err
	}

	return r.update(ctx, id, SetTitle(title))
}

// ChangeCompleted implements ports.TodoRepository.
func (r *Repository) ChangeCompleted(ctx context.Context, id uint64, completed bool) (todo.Todo, error) {
	return r.update(ctx, id, SetCompleted(completed))
}

func (r *Repository) update(ctx context.Context, id uint64, ops ...FieldOp) (todo.Todo, error) {
	return guard(r.breaker, func() (todo.Todo, error) {
		t, found, err := r.db.Space().Update(ctx, id, ops...)
		if err != nil {
			return todo.Todo{}, err
		}
		if !found {
			return todo.Todo{}, notFound(id)
		}
		return t, nil
	})
}

// ChangeAllCompleted implements ports.TodoRepository. The scan and every row
// update share one transaction.
func (r *Repository) ChangeAllCompleted(ctx context.Context, completed bool) ([]todo.Todo, error) {
	return guard(r.breaker, func() ([]todo.Todo, error) {
		var updated []todo.Todo
		err := r.db.Transaction(ctx, func(ctx context.Context, space *Space) error {
			current, err := space.Select(ctx, Filter{})
			if err != nil {
				return err
			}

			updated = make([]todo.Todo, 0, len(current))
			for i, t := range current {
				if err := r.beforeRow(i, t); err != nil {
					return err
				}
				row, found, err := space.Update(ctx, t.ID, SetCompleted(completed))
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("todo %d vanished mid-transaction: %w", t.ID, domain.ErrEngineFailure)
				}
				updated = append(updated, row)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		r.logger.DebugContext(ctx, "changed completed on all todos",
			slog.Bool("completed", completed),
			slog.Int("rows", len(updated)),
		)
		return updated, nil
	})
}

// DeleteCompleted implements ports.TodoRepository. The scan and every delete
// share one transaction.
func (r *Repository) DeleteCompleted(ctx context.Context) ([]todo.Todo, error) {
	return guard(r.breaker, func() ([]todo.Todo, error) {
		var remaining []todo.Todo
		deleted := 0
		err := r.db.Transaction(ctx, func(ctx context.Context, space *Space) error {
			current, err := space.Select(ctx, Filter{})
			if err != nil {
				return err
			}

			remaining = make([]todo.Todo, 0, len(current))
			deleted = 0
			for i, t := range current {
				if !t.Completed {
					remaining = append(remaining, t)
					continue
				}
				if err := r.beforeRow(i, t); err != nil {
					return err
				}
				if _, found, err := space.Delete(ctx, t.ID); err != nil {
					return err
				} else if !found {
					return fmt.Errorf("todo %d vanished mid-transaction: %w", t.ID, domain.ErrEngineFailure)
				}
				deleted++
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		r.logger.DebugContext(ctx, "deleted completed todos",
			slog.Int("deleted", deleted),
			slog.Int("remaining", len(remaining)),
		)
		return remaining, nil
	})
}

func (r *Repository) beforeRow(i int, t todo.Todo) error {
	if r.rowHook == nil {
		return nil
	}
	return r.rowHook(i, t)
}

// Name returns the health check identifier.
func (r *Repository) Name() string {
	return "storage"
}

// HealthCheck reports engine availability from the circuit breaker state.
// It never touches the engine, so it is safe to call outside the run loop.
func (r *Repository) HealthCheck(_ context.Context) error {
	state := r.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return errors.New("storage: degraded (circuit breaker half-open)")
	case gobreaker.StateOpen:
		return fmt.Errorf("storage: %w (circuit breaker open)", domain.ErrUnavailable)
	default:
		return fmt.Errorf("storage: unknown circuit breaker state %v", state)
	}
}

func notFound(id uint64) error {
	return fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
}
