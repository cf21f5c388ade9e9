package wizard

import (
	"errors"
	"fmt"
	"strings"

	"intake/internal/core/domain/model/intake"
)

// ErrSessionClosed is returned by every session operation after Close.
var ErrSessionClosed = errors.New("wizard session is closed")

// ValidationError blocks a forward transition because one or more fields of
// the current step are invalid. Recoverable: the user fixes the named fields
// and retries. The form keeps every entered value.
type ValidationError struct {
	Fields intake.ValidationErrorSet
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(e.Fields.Fields(), ", "))
}

// DuplicateError blocks a forward transition because the entered values
// collide with an existing customer record. Recoverable, but it requires a
// user decision: change the colliding value or adopt the matched record via
// the existing-customer path.
type DuplicateError struct {
	Fields intake.DuplicateErrorSet
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("values already belong to an existing customer: %s", strings.Join(e.Fields.Fields(), ", "))
}

// PersistenceError wraps a failed store operation during a transition. The
// step pointer did not move and the form is intact, so the operation can be
// retried as is.
type PersistenceError struct {
	cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed, retry the operation: %s", e.cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.cause
}

// FinalizationError wraps a failed submission. The session stays on the
// review step and the draft is untouched, so the user can retry without
// re-entering anything.
type FinalizationError struct {
	cause error
}

func (e *FinalizationError) Error() string {
	return fmt.Sprintf("finalization failed, draft kept for retry: %s", e.cause)
}

func (e *FinalizationError) Unwrap() error {
	return e.cause
}
