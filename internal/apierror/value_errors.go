package apierror

import "fmt"

// FormatError is returned when a string does not match the grammar of a value type.
type FormatError struct {

	// Kind is the human-readable name of the value type, e.g. "hour range".
	Kind string

	// Value is the rejected input.
	Value string

	// Example is a well-formed value of the same kind.
	Example string
}

func NewFormatError(kind, value, example string) *FormatError {
	return &FormatError{Kind: kind, Value: value, Example: example}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s '%s' is not valid, expected something like '%s'", e.Kind, e.Value, e.Example)
}

// StateError is returned when an operation is invoked on a value
// in the wrong normalization state or with incompatible operands.
type StateError struct {
	Msg string
}

func NewStateError(format string, args ...any) *StateError {
	return &StateError{Msg: fmt.Sprintf(format, args...)}
}

func (e *StateError) Error() string {
	return e.Msg
}

// DuplicateError is returned when a week defines the same day more than once.
type DuplicateError struct {
	Day string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("day '%s' is defined more than once", e.Day)
}
