// Package validation carries field-level validation failures from the input
// boundary back to the caller. Mutating operations must not run while an
// Error has entries; this is how forms keep half-filled records out of the
// session store.
package validation

// Error captures field level validation issues that callers can surface to
// users.
type Error struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (e *Error) HasErrors() bool {
	return e != nil && len(e.FieldErrors) > 0
}

// Add records a field level validation error, keeping the first message
// recorded for a field.
func (e *Error) Add(field, message string) {
	if e.FieldErrors == nil {
		e.FieldErrors = make(map[string]string)
	}
	if _, exists := e.FieldErrors[field]; !exists {
		e.FieldErrors[field] = message
	}
}

// Merge copies entries from another validation error into the receiver.
func (e *Error) Merge(other *Error) {
	if other == nil || len(other.FieldErrors) == 0 {
		return
	}
	for field, msg := range other.FieldErrors {
		e.Add(field, msg)
	}
}

// ErrOrNil returns the error when it has entries, and nil otherwise, so
// validators can be written as straight-line code.
func (e *Error) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
