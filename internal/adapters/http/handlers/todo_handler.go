// Package handlers maps the todo command surface and health probes onto
// HTTP. Handlers decode, delegate to a port, and encode; they hold no state.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-bridge/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
	"github.com/jsamuelsen11/todo-bridge/internal/ports"
)

// TodoHandler exposes one endpoint per todo command. Every successful reply
// is the full list after the command's effect.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// ListTodos handles GET /api/v1/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.ListTodos(r.Context())
	h.reply(w, r, http.StatusOK, todos, err)
}

// AddTodo handles POST /api/v1/todos.
func (h *TodoHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.TitleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	todos, err := h.service.AddTodo(r.Context(), req.Title)
	h.reply(w, r, http.StatusCreated, todos, err)
}

// DeleteTodo handles DELETE /api/v1/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.service.DeleteTodo(r.Context(), id)
	h.reply(w, r, http.StatusOK, todos, err)
}

// ChangeTitle handles PATCH /api/v1/todos/{id}/title.
func (h *TodoHandler) ChangeTitle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TitleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	todos, err := h.service.ChangeTitle(r.Context(), id, req.Title)
	h.reply(w, r, http.StatusOK, todos, err)
}

// ChangeCompleted handles PATCH /api/v1/todos/{id}/completed.
func (h *TodoHandler) ChangeCompleted(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CompletedRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	todos, err := h.service.ChangeCompleted(r.Context(), id, req.Value())
	h.reply(w, r, http.StatusOK, todos, err)
}

// ChangeAllCompleted handles PUT /api/v1/todos/completed.
func (h *TodoHandler) ChangeAllCompleted(w http.ResponseWriter, r *http.Request) {
	var req dto.CompletedRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	todos, err := h.service.ChangeAllCompleted(r.Context(), req.Value())
	h.reply(w, r, http.StatusOK, todos, err)
}

// DeleteCompleted handles DELETE /api/v1/todos/completed.
func (h *TodoHandler) DeleteCompleted(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.DeleteCompleted(r.Context())
	h.reply(w, r, http.StatusOK, todos, err)
}

// ImportTodos handles POST /api/v1/todos/import.
func (h *TodoHandler) ImportTodos(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.ImportTodos(r.Context(), req.Titles)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToImportResponse(result))
}

func (h *TodoHandler) reply(w http.ResponseWriter, r *http.Request, status int, todos []todo.Todo, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, status, dto.ToTodoListResponse(todos))
}
