package apierror

import "fmt"

// ParseError is a failure while reading a row of a schedule file.
type ParseError struct {
	RowNumber int
	UserMsg   string
	BaseErr   error
}

func (e *ParseError) Error() string {
	if e.BaseErr != nil {
		return fmt.Sprintf("failed to parse row %d: %s: %s", e.RowNumber, e.UserMsg, e.BaseErr)
	}

	return fmt.Sprintf("failed to parse row %d: %s", e.RowNumber, e.UserMsg)
}

func (e *ParseError) Unwrap() error {
	return e.BaseErr
}
