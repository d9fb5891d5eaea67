package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-consentbuilder/pkg/model"
)

// ErrMissingRequiredField is the only hard validation failure: exporting a
// form without a project title.
var ErrMissingRequiredField = errors.New("validation: missing required field")

// MissingTitleMessage is the notification shown to the user when an export
// is attempted without a project title.
const MissingTitleMessage = "Please enter a project title before exporting"

// Error describes a missing required field. errors.Is(err,
// ErrMissingRequiredField) holds for every *Error.
type Error struct {
	Field   model.Field
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ErrMissingRequiredField.Error()
	}
	return fmt.Sprintf("%s %q: %s", ErrMissingRequiredField, e.Field, e.Message)
}

// Is matches ErrMissingRequiredField.
func (e *Error) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// RequireProjectTitle fails when title is empty or whitespace only.
func RequireProjectTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &Error{Field: model.FieldProjectTitle, Message: MissingTitleMessage}
	}
	return nil
}

// CheckExport runs the export preconditions against a form.
func CheckExport(form model.FormData) error {
	return RequireProjectTitle(form.ProjectTitle)
}
