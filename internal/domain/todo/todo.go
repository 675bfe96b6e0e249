package todo

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jsamuelsen11/todo-bridge/internal/domain"
)

// Todo is a single item of the list. IDs are assigned by the storage engine,
// never reused, and strictly increase across creations.
type Todo struct {
	ID        uint64
	Title     string
	Completed bool
}

// NormalizeTitle converts title to Unicode NFC and trims surrounding
// whitespace. Stored titles are always normalised.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(norm.NFC.String(title))
}

// ValidateTitle returns a *domain.ValidationError wrapping domain.ErrEmptyTitle
// when title is empty after normalisation, or nil otherwise.
func ValidateTitle(title string) error {
	if NormalizeTitle(title) == "" {
		return &domain.ValidationError{
			Fields: map[string]string{"title": domain.MsgMustNotEmpty},
			Cause:  domain.ErrEmptyTitle,
		}
	}
	return nil
}

// Validate checks business rules for the Todo entity.
func (t *Todo) Validate() error {
	return ValidateTitle(t.Title)
}

// CountCompleted returns the number of completed todos in the slice.
func CountCompleted(todos []Todo) int {
	n := 0
	for i := range todos {
		if todos[i].Completed {
			n++
		}
	}
	return n
}
