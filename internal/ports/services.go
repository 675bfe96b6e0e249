package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
)

// Dispatcher submits typed commands to the single storage worker and waits
// for the post-command todo list. Implemented by the dispatch bridge; safe
// for concurrent use by any number of callers.
type Dispatcher interface {
	GetTodos(ctx context.Context) ([]todo.Todo, error)
	AddTodo(ctx context.Context, title string) ([]todo.Todo, error)
	DeleteTodo(ctx context.Context, id uint64) ([]todo.Todo, error)
	ChangeTitle(ctx context.Context, id uint64, title string) ([]todo.Todo, error)
	ChangeCompleted(ctx context.Context, id uint64, completed bool) ([]todo.Todo, error)
	ChangeAllCompleted(ctx context.Context, completed bool) ([]todo.Todo, error)
	DeleteCompleted(ctx context.Context) ([]todo.Todo, error)
}

// TodoService defines the service port for todo list operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every operation returns the full todo list after its effect.
type TodoService interface {
	// ListTodos returns the current todo list.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// AddTodo creates a todo.
	// Returns domain.ErrValidation (cause domain.ErrEmptyTitle) for a blank title.
	AddTodo(ctx context.Context, title string) ([]todo.Todo, error)

	// DeleteTodo removes a todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id uint64) ([]todo.Todo, error)

	// ChangeTitle renames a todo.
	// Returns domain.ErrValidation or domain.ErrNotFound.
	ChangeTitle(ctx context.Context, id uint64, title string) ([]todo.Todo, error)

	// ChangeCompleted toggles a single todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	ChangeCompleted(ctx context.Context, id uint64, completed bool) ([]todo.Todo, error)

	// ChangeAllCompleted sets every todo's completed flag atomically.
	ChangeAllCompleted(ctx context.Context, completed bool) ([]todo.Todo, error)

	// DeleteCompleted removes every completed todo atomically.
	DeleteCompleted(ctx context.Context) ([]todo.Todo, error)

	// ImportTodos adds many todos concurrently. Uses partial success
	// semantics: each title is added or rejected independently. Returns a
	// hard error only for an empty title list or when the final list cannot be
	// read. Per-title failures are collected in ImportResult.Errors.
	ImportTodos(ctx context.Context, titles []string) (*ImportResult, error)
}

// ImportError records a single rejected title within an import.
type ImportError struct {
	Index int
	Title string
	Err   error
}

// ImportResult holds the outcome of an import. Todos is the list after every
// accepted title has been added.
type ImportResult struct {
	Todos    []todo.Todo
	Imported int
	Errors   []ImportError
}
