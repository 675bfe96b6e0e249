package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/todo-bridge/internal/domain"
)

// MaxImportTitles caps a single import request.
const MaxImportTitles = 1000

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// TitleRequest is the body of AddTodo and ChangeTitle. Blank titles pass
// here and are rejected by the domain after normalisation.
type TitleRequest struct {
	Title string `json:"title" validate:"required"`
}

// Validate checks the request against its struct tags.
func (r *TitleRequest) Validate() error { return validateStruct(r) }

// CompletedRequest is the body of ChangeCompleted and ChangeAllCompleted.
// Completed is a pointer so an omitted field is distinguishable from false.
type CompletedRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// Validate checks the request against its struct tags.
func (r *CompletedRequest) Validate() error { return validateStruct(r) }

// Value returns the requested flag. Only valid after Validate succeeds.
func (r *CompletedRequest) Value() bool { return *r.Completed }

// ImportRequest is the body of a bulk import.
type ImportRequest struct {
	Titles []string `json:"titles" validate:"required,min=1,max=1000"`
}

// Validate checks the request against its struct tags.
func (r *ImportRequest) Validate() error { return validateStruct(r) }

// validateStruct runs the shared validator and converts its failures into a
// *domain.ValidationError keyed by JSON field name.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "min":
		return "must contain at least " + fe.Param() + " items"
	case "max":
		return "must contain at most " + fe.Param() + " items"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
