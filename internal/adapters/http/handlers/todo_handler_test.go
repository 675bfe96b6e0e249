package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-bridge/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-bridge/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-bridge/internal/domain"
	"github.com/jsamuelsen11/todo-bridge/internal/domain/todo"
	"github.com/jsamuelsen11/todo-bridge/internal/ports"
	"github.com/jsamuelsen11/todo-bridge/mocks"
)

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(svc), svc
}

// --- ListTodos ---

func TestListTodos_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).Return(sampleTodos(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoListResponse](t, rec)
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", rec.Header().Get("Content-Type"))
	}
}

func TestListTodos_Timeout(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).Return(nil, domain.ErrTimeout)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing on 503")
	}
}

// --- AddTodo ---

func TestAddTodo_Created(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().AddTodo(mock.Anything, "Buy groceries").Return(sampleTodos()[:1], nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", jsonBody(t, map[string]string{"title": "Buy groceries"}))
	h.AddTodo(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TodoListResponse](t, rec)
	if resp.Count != 1 || resp.Todos[0].Title != "Buy groceries" {
		t.Errorf("resp = %+v, want one Buy groceries", resp)
	}
}

func TestAddTodo_MissingTitle(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", jsonBody(t, map[string]string{}))
	h.AddTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.title" {
		t.Errorf("Errors = %+v, want body.title", resp.Errors)
	}
}

func TestAddTodo_BlankTitleRejectedByDomain(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().AddTodo(mock.Anything, "   ").Return(nil, todo.ValidateTitle("   "))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", jsonBody(t, map[string]string{"title": "   "}))
	h.AddTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestAddTodo_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", bytes.NewBufferString("{not json"))
	h.AddTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DeleteTodo ---

func TestDeleteTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteTodo(mock.Anything, uint64(1)).Return(sampleTodos()[1:], nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/1", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoListResponse](t, rec)
	if resp.Count != 1 || resp.Todos[0].ID != 2 {
		t.Errorf("resp = %+v, want only id 2", resp)
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteTodo(mock.Anything, uint64(99)).Return(nil, fmt.Errorf("todo 99: %w", domain.ErrNotFound))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/99", nil)
	req = withChiParams(req, map[string]string{"id": "99"})
	h.DeleteTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteTodo_InvalidID(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"abc", "0", "-1", "18446744073709551616"} {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			h, _ := newTodoHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/x", nil)
			req = withChiParams(req, map[string]string{"id": raw})
			h.DeleteTodo(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

// --- ChangeTitle ---

func TestChangeTitle_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ChangeTitle(mock.Anything, uint64(1), "Renamed").
		Return([]todo.Todo{{ID: 1, Title: "Renamed"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/todos/1/title", jsonBody(t, map[string]string{"title": "Renamed"}))
	req = withChiParams(req, map[string]string{"id": "1"})
	h.ChangeTitle(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoListResponse](t, rec)
	if resp.Todos[0].Title != "Renamed" {
		t.Errorf("Title = %q, want %q", resp.Todos[0].Title, "Renamed")
	}
}

func TestChangeTitle_InvalidIDSkipsBody(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/todos/abc/title", jsonBody(t, map[string]string{"title": "x"}))
	req = withChiParams(req, map[string]string{"id": "abc"})
	h.ChangeTitle(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- ChangeCompleted ---

func TestChangeCompleted_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ChangeCompleted(mock.Anything, uint64(2), false).
		Return([]todo.Todo{{ID: 2, Title: "Walk the dog"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/todos/2/completed", jsonBody(t, map[string]bool{"completed": false}))
	req = withChiParams(req, map[string]string{"id": "2"})
	h.ChangeCompleted(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestChangeCompleted_MissingFlag(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/todos/2/completed", jsonBody(t, map[string]string{}))
	req = withChiParams(req, map[string]string{"id": "2"})
	h.ChangeCompleted(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- bulk ---

func TestChangeAllCompleted_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	all := []todo.Todo{{ID: 1, Title: "a", Completed: true}, {ID: 2, Title: "b", Completed: true}}
	svc.EXPECT().ChangeAllCompleted(mock.Anything, true).Return(all, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/todos/completed", jsonBody(t, map[string]bool{"completed": true}))
	h.ChangeAllCompleted(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoListResponse](t, rec)
	for _, item := range resp.Todos {
		if !item.Completed {
			t.Errorf("todo %d Completed = false, want true", item.ID)
		}
	}
}

func TestChangeAllCompleted_EngineFailureIsGeneric(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ChangeAllCompleted(mock.Anything, true).
		Return(nil, fmt.Errorf("update: database disk image is malformed: %w", domain.ErrEngineFailure))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/todos/completed", jsonBody(t, map[string]bool{"completed": true}))
	h.ChangeAllCompleted(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
	if bytes.Contains(rec.Body.Bytes(), []byte("malformed")) {
		t.Errorf("body leaks engine detail: %s", rec.Body.String())
	}
}

func TestDeleteCompleted_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteCompleted(mock.Anything).Return(sampleTodos()[:1], nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/completed", nil)
	h.DeleteCompleted(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

// --- ImportTodos ---

func TestImportTodos_PartialSuccess(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ImportTodos(mock.Anything, []string{"a", ""}).Return(&ports.ImportResult{
		Todos:    []todo.Todo{{ID: 1, Title: "a"}},
		Imported: 1,
		Errors:   []ports.ImportError{{Index: 1, Title: "", Err: todo.ValidateTitle("")}},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos/import", jsonBody(t, map[string][]string{"titles": {"a", ""}}))
	h.ImportTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ImportResponse](t, rec)
	if resp.Imported != 1 || resp.Failed != 1 {
		t.Errorf("Imported/Failed = %d/%d, want 1/1", resp.Imported, resp.Failed)
	}
	if resp.Errors[0].Index != 1 {
		t.Errorf("Errors[0].Index = %d, want 1", resp.Errors[0].Index)
	}
}

func TestImportTodos_EmptyTitles(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos/import", jsonBody(t, map[string][]string{"titles": {}}))
	h.ImportTodos(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestImportTodos_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ImportTodos(mock.Anything, []string{"a"}).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos/import", jsonBody(t, map[string][]string{"titles": {"a"}}))
	h.ImportTodos(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}
