package dispatch

import (
	"testing"

	"github.com/google/uuid"
)

func TestCommandConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  Command
		want Command
	}{
		{name: "GetTodos", got: GetTodos(), want: Command{Kind: KindGetTodos}},
		{name: "AddTodo", got: AddTodo("milk"), want: Command{Kind: KindAddTodo, Title: "milk"}},
		{name: "DeleteTodo", got: DeleteTodo(4), want: Command{Kind: KindDeleteTodo, TodoID: 4}},
		{name: "ChangeTitle", got: ChangeTitle(4, "eggs"), want: Command{Kind: KindChangeTitle, TodoID: 4, Title: "eggs"}},
		{
			name: "ChangeCompleted",
			got:  ChangeCompleted(4, true),
			want: Command{Kind: KindChangeCompleted, TodoID: 4, Completed: true},
		},
		{
			name: "ChangeAllCompleted",
			got:  ChangeAllCompleted(true),
			want: Command{Kind: KindChangeAllCompleted, Completed: true},
		},
		{name: "DeleteCompleted", got: DeleteCompleted(), want: Command{Kind: KindDeleteCompleted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.got != tt.want {
				t.Errorf("constructor = %+v, want %+v", tt.got, tt.want)
			}
			if tt.got.ID != uuid.Nil {
				t.Errorf("constructor assigned ID %s, want uuid.Nil until Submit", tt.got.ID)
			}
			if tt.got.Kind.String() != tt.name {
				t.Errorf("Kind.String() = %q, want %q", tt.got.Kind.String(), tt.name)
			}
		})
	}
}

func TestKind_StringUnknown(t *testing.T) {
	t.Parallel()

	if got := Kind(0).String(); got != "Kind(0)" {
		t.Errorf("Kind(0).String() = %q, want %q", got, "Kind(0)")
	}
}
