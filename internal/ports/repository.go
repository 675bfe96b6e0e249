package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
)

// TodoRepository is the storage port for todo persistence. It is implemented
// by the storage adapter. Implementations are not safe for concurrent use:
// every call is made from the dispatch bridge's run loop, one at a time.
type TodoRepository interface {
	// CreateTodo inserts a new, not completed todo with an engine-assigned ID.
	// Returns domain.ErrEmptyTitle before touching the engine if the title is
	// blank.
	CreateTodo(ctx context.Context, title string) (todo.Todo, error)

	// DeleteTodo removes the todo and returns the removed row.
	// Returns domain.ErrNotFound if no todo has that ID.
	DeleteTodo(ctx context.Context, id uint64) (todo.Todo, error)

	// ListTodos returns every todo in ascending ID order. Never nil.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// ChangeTitle replaces the title of a todo.
	// Returns domain.ErrEmptyTitle or domain.ErrNotFound.
	ChangeTitle(ctx context.Context, id uint64, title string) (todo.Todo, error)

	// ChangeCompleted sets the completed flag of a todo.
	// Returns domain.ErrNotFound if no todo has that ID.
	ChangeCompleted(ctx context.Context, id uint64, completed bool) (todo.Todo, error)

	// ChangeAllCompleted sets the completed flag on every todo inside one
	// transaction and returns the updated set. Either every row changes or
	// none does.
	ChangeAllCompleted(ctx context.Context, completed bool) ([]todo.Todo, error)

	// DeleteCompleted removes every completed todo inside one transaction and
	// returns the remaining rows.
	DeleteCompleted(ctx context.Context) ([]todo.Todo, error)
}
