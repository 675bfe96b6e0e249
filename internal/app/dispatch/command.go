package dispatch

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
)

// Kind identifies a command variant. The zero value is not a valid kind.
type Kind uint8

// Command kinds, one per repository operation.
const (
	KindGetTodos Kind = iota + 1
	KindAddTodo
	KindDeleteTodo
	KindChangeTitle
	KindChangeCompleted
	KindChangeAllCompleted
	KindDeleteCompleted
)

var kindNames = map[Kind]string{
	KindGetTodos:           "GetTodos",
	KindAddTodo:            "AddTodo",
	KindDeleteTodo:         "DeleteTodo",
	KindChangeTitle:        "ChangeTitle",
	KindChangeCompleted:    "ChangeCompleted",
	KindChangeAllCompleted: "ChangeAllCompleted",
	KindDeleteCompleted:    "DeleteCompleted",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Command is a single request for the run loop. Only the fields its Kind
// needs are set. ID correlates the command with its Response; Submit assigns
// one when it is uuid.Nil.
type Command struct {
	ID        uuid.UUID
	Kind      Kind
	TodoID    uint64
	Title     string
	Completed bool
}

// GetTodos builds a command that reads the full list.
func GetTodos() Command {
	return Command{Kind: KindGetTodos}
}

// AddTodo builds a command that creates a todo.
func AddTodo(title string) Command {
	return Command{Kind: KindAddTodo, Title: title}
}

// DeleteTodo builds a command that removes a todo.
func DeleteTodo(id uint64) Command {
	return Command{Kind: KindDeleteTodo, TodoID: id}
}

// ChangeTitle builds a command that renames a todo.
func ChangeTitle(id uint64, title string) Command {
	return Command{Kind: KindChangeTitle, TodoID: id, Title: title}
}

// ChangeCompleted builds a command that sets one todo's completed flag.
func ChangeCompleted(id uint64, completed bool) Command {
	return Command{Kind: KindChangeCompleted, TodoID: id, Completed: completed}
}

// ChangeAllCompleted builds a command that sets every todo's completed flag.
func ChangeAllCompleted(completed bool) Command {
	return Command{Kind: KindChangeAllCompleted, Completed: completed}
}

// DeleteCompleted builds a command that removes every completed todo.
func DeleteCompleted() Command {
	return Command{Kind: KindDeleteCompleted}
}

// Response is the tagged result of one command: Err is nil and Todos holds
// the list after the command, or Err explains the failure.
type Response struct {
	CommandID uuid.UUID
	Todos     []todo.Todo
	Err       error
}
