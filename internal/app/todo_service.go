// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/todo-bridge/internal/app/fanout"
	"github.com/jsamuelsen11/todo-bridge/internal/domain"
	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/logging"
	"github.com/jsamuelsen11/todo-bridge/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

const defaultImportWorkers = 4

// TodoService implements ports.TodoService by submitting commands through the
// Dispatcher port. It handles structured logging and multi-command
// coordination but contains no business logic.
type TodoService struct {
	dispatcher    ports.Dispatcher
	importWorkers int
	logger        *slog.Logger
}

// NewTodoService creates a TodoService. importWorkers bounds how many AddTodo
// commands an import keeps in flight; values below 1 use a default. A nil
// logger discards output.
func NewTodoService(dispatcher ports.Dispatcher, importWorkers int, logger *slog.Logger) *TodoService {
	if importWorkers < 1 {
		importWorkers = defaultImportWorkers
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &TodoService{
		dispatcher:    dispatcher,
		importWorkers: importWorkers,
		logger:        logger,
	}
}

// ListTodos returns the current todo list.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	s.logger.DebugContext(ctx, "listing todos")

	todos, err := s.dispatcher.GetTodos(ctx)
	if err != nil {
		s.logFailure(ctx, "ListTodos", err)
		return nil, err
	}
	return todos, nil
}

// AddTodo creates a todo and returns the resulting list.
func (s *TodoService) AddTodo(ctx context.Context, title string) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "adding todo")

	todos, err := s.dispatcher.AddTodo(ctx, title)
	if err != nil {
		s.logFailure(ctx, "AddTodo", err)
		return nil, err
	}
	return todos, nil
}

// DeleteTodo removes a todo and returns the resulting list.
func (s *TodoService) DeleteTodo(ctx context.Context, id uint64) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "deleting todo", slog.Uint64("todo_id", id))

	todos, err := s.dispatcher.DeleteTodo(ctx, id)
	if err != nil {
		s.logFailure(ctx, "DeleteTodo", err, slog.Uint64("todo_id", id))
		return nil, err
	}
	return todos, nil
}

// ChangeTitle renames a todo and returns the resulting list.
func (s *TodoService) ChangeTitle(ctx context.Context, id uint64, title string) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "changing todo title", slog.Uint64("todo_id", id))

	todos, err := s.dispatcher.ChangeTitle(ctx, id, title)
	if err != nil {
		s.logFailure(ctx, "ChangeTitle", err, slog.Uint64("todo_id", id))
		return nil, err
	}
	return todos, nil
}

// ChangeCompleted sets one todo's completed flag and returns the resulting list.
func (s *TodoService) ChangeCompleted(ctx context.Context, id uint64, completed bool) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "changing todo completed",
		slog.Uint64("todo_id", id),
		slog.Bool("completed", completed),
	)

	todos, err := s.dispatcher.ChangeCompleted(ctx, id, completed)
	if err != nil {
		s.logFailure(ctx, "ChangeCompleted", err, slog.Uint64("todo_id", id))
		return nil, err
	}
	return todos, nil
}

// ChangeAllCompleted sets every todo's completed flag atomically.
func (s *TodoService) ChangeAllCompleted(ctx context.Context, completed bool) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "changing completed on all todos", slog.Bool("completed", completed))

	todos, err := s.dispatcher.ChangeAllCompleted(ctx, completed)
	if err != nil {
		s.logFailure(ctx, "ChangeAllCompleted", err)
		return nil, err
	}
	return todos, nil
}

// DeleteCompleted removes every completed todo atomically.
func (s *TodoService) DeleteCompleted(ctx context.Context) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "deleting completed todos")

	todos, err := s.dispatcher.DeleteCompleted(ctx)
	if err != nil {
		s.logFailure(ctx, "DeleteCompleted", err)
		return nil, err
	}
	return todos, nil
}

// ImportTodos submits one AddTodo command per title with bounded concurrency.
// Commands are independent, so their relative order in the store is not
// guaranteed. The returned list is read after every command has resolved.
func (s *TodoService) ImportTodos(ctx context.Context, titles []string) (*ports.ImportResult, error) {
	s.logger.InfoContext(ctx, "importing todos", slog.Int("count", len(titles)))

	if len(titles) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"titles": domain.MsgRequired}}
	}

	results := fanout.Run(ctx, s.importWorkers, titles, func(ctx context.Context, title string) (struct{}, error) {
		_, err := s.dispatcher.AddTodo(ctx, title)
		return struct{}{}, err
	})

	failed, imported := fanout.Failures(results)
	res := &ports.ImportResult{Imported: imported}
	for _, f := range failed {
		res.Errors = append(res.Errors, ports.ImportError{Index: f.Index, Title: titles[f.Index], Err: f.Err})
	}

	todos, err := s.dispatcher.GetTodos(ctx)
	if err != nil {
		s.logFailure(ctx, "ImportTodos", err)
		return nil, err
	}
	res.Todos = todos

	if len(res.Errors) > 0 {
		s.logger.WarnContext(ctx, "import finished with rejected titles",
			slog.Int("imported", res.Imported),
			slog.Int("rejected", len(res.Errors)),
		)
	}
	return res, nil
}

// logFailure logs caller mistakes at warn and everything else at error.
func (s *TodoService) logFailure(ctx context.Context, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	msg := "todo operation failed"
	if domain.IsCallerError(err) {
		level = slog.LevelWarn
		msg = "todo operation rejected"
	}

	all := make([]slog.Attr, 0, len(attrs)+2)
	all = append(all, slog.String("operation", operation))
	all = append(all, attrs...)
	all = append(all, slog.Any("error", err))
	s.logger.LogAttrs(ctx, level, msg, all...)
}
