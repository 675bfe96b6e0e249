package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jsamuelsen11/todo-bridge/internal/domain"
	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
)

const todoColumns = "id, title, completed"

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Space is the record space over the todos table, bound either to the
// connection or to an open transaction. Get, Update and Delete report a
// missing key as found == false rather than an error.
type Space struct {
	q querier
}

// FieldOp is a single column assignment applied by Space.Update.
type FieldOp struct {
	column string
	value  any
}

// SetTitle assigns the title column.
func SetTitle(title string) FieldOp {
	return FieldOp{column: "title", value: title}
}

// SetCompleted assigns the completed column.
func SetCompleted(completed bool) FieldOp {
	return FieldOp{column: "completed", value: boolToInt(completed)}
}

// Filter restricts Select. The zero value scans every row.
type Filter struct {
	Completed *bool
}

// Insert adds a row and returns it with its engine-assigned id.
func (s *Space) Insert(ctx context.Context, title string, completed bool) (todo.Todo, error) {
	row := s.q.QueryRowContext(ctx,
		"INSERT INTO todos (title, completed) VALUES (?, ?) RETURNING "+todoColumns,
		title, boolToInt(completed),
	)
	t, err := decodeRow(row)
	if err != nil {
		return todo.Todo{}, classify("insert todo", err)
	}
	return t, nil
}

// Get returns the row with the given id.
func (s *Space) Get(ctx context.Context, id uint64) (todo.Todo, bool, error) {
	key, ok := toKey(id)
	if !ok {
		return todo.Todo{}, false, nil
	}
	row := s.q.QueryRowContext(ctx, "SELECT "+todoColumns+" FROM todos WHERE id = ?", key)
	return singleRow("get todo", row)
}

// Update applies ops to the row with the given id and returns the new row.
// With no ops it behaves like Get.
func (s *Space) Update(ctx context.Context, id uint64, ops ...FieldOp) (todo.Todo, bool, error) {
	if len(ops) == 0 {
		return s.Get(ctx, id)
	}
	key, ok := toKey(id)
	if !ok {
		return todo.Todo{}, false, nil
	}

	sets := make([]string, 0, len(ops))
	args := make([]any, 0, len(ops)+1)
	for _, op := range ops {
		sets = append(sets, op.column+" = ?")
		args = append(args, op.value)
	}
	args = append(args, key)

	query := "UPDATE todos SET " + strings.Join(sets, ", ") + " WHERE id = ? RETURNING " + todoColumns
	return singleRow("update todo", s.q.QueryRowContext(ctx, query, args...))
}

// Delete removes the row with the given id and returns the removed row.
func (s *Space) Delete(ctx context.Context, id uint64) (todo.Todo, bool, error) {
	key, ok := toKey(id)
	if !ok {
		return todo.Todo{}, false, nil
	}
	row := s.q.QueryRowContext(ctx, "DELETE FROM todos WHERE id = ? RETURNING "+todoColumns, key)
	return singleRow("delete todo", row)
}

// Select scans the rows matching f in ascending id order. The result is
// never nil.
func (s *Space) Select(ctx context.Context, f Filter) ([]todo.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos"
	var args []any
	if f.Completed != nil {
		query += " WHERE completed = ?"
		args = append(args, boolToInt(*f.Completed))
	}
	query += " ORDER BY id"

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify("select todos", err)
	}
	defer func() { _ = rows.Close() }()

	todos := []todo.Todo{}
	for rows.Next() {
		t, err := decodeRow(rows)
		if err != nil {
			return nil, classify("select todos", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("select todos", err)
	}
	return todos, nil
}

// Count returns the number of rows.
func (s *Space) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM todos").Scan(&n); err != nil {
		return 0, classify("count todos", err)
	}
	return n, nil
}

func singleRow(op string, row *sql.Row) (todo.Todo, bool, error) {
	t, err := decodeRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return todo.Todo{}, false, nil
	}
	if err != nil {
		return todo.Todo{}, false, classify(op, err)
	}
	return t, true, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// decodeError marks a row that was read but holds invalid field values.
type decodeError struct {
	reason string
}

func (e *decodeError) Error() string { return e.reason }

// decodeRow reads one todo tuple. Scan failures other than sql.ErrNoRows are
// returned as is; invalid field values are reported as *decodeError.
func decodeRow(sc scanner) (todo.Todo, error) {
	var (
		id        int64
		title     sql.NullString
		completed int64
	)
	if err := sc.Scan(&id, &title, &completed); err != nil {
		return todo.Todo{}, err
	}

	if id <= 0 {
		return todo.Todo{}, &decodeError{reason: fmt.Sprintf("id %d is not positive", id)}
	}
	if !title.Valid || strings.TrimSpace(title.String) == "" {
		return todo.Todo{}, &decodeError{reason: fmt.Sprintf("todo %d has an empty title", id)}
	}
	if completed != 0 && completed != 1 {
		return todo.Todo{}, &decodeError{reason: fmt.Sprintf("todo %d has completed flag %d", id, completed)}
	}

	return todo.Todo{ID: uint64(id), Title: title.String, Completed: completed == 1}, nil
}

// classify maps an engine error onto the domain taxonomy.
func classify(op string, err error) error {
	var derr *decodeError
	if errors.As(err, &derr) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrFieldDecode, err)
	}
	if isScanError(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrFieldDecode, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrEngineFailure, err)
}

// isScanError reports whether err came from converting a column value, which
// database/sql reports as `sql: Scan error on column ...`.
func isScanError(err error) bool {
	return strings.HasPrefix(err.Error(), "sql: Scan error")
}

func toKey(id uint64) (int64, bool) {
	if id == 0 || id > math.MaxInt64 {
		return 0, false
	}
	return int64(id), true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
