// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
	"github.com/jsamuelsen11/todo-bridge/internal/ports"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoListResponse is the reply of every command endpoint: the whole list
// after the command's effect.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
	}
}

// ToTodoListResponse converts a list of todos. The result always encodes
// "todos" as an array, never null.
func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{
		Todos: items,
		Count: len(items),
	}
}

// ImportResponse is the reply of a bulk import.
type ImportResponse struct {
	TodoListResponse
	Imported int               `json:"imported"`
	Failed   int               `json:"failed"`
	Errors   []ImportErrorItem `json:"errors"`
}

// ImportErrorItem describes one rejected title.
type ImportErrorItem struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ToImportResponse converts a ports.ImportResult to an HTTP response DTO.
func ToImportResponse(result *ports.ImportResult) ImportResponse {
	errs := make([]ImportErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = ImportErrorItem{
			Index:   e.Index,
			Title:   e.Title,
			Message: e.Err.Error(),
		}
	}

	return ImportResponse{
		TodoListResponse: ToTodoListResponse(result.Todos),
		Imported:         result.Imported,
		Failed:           len(result.Errors),
		Errors:           errs,
	}
}
