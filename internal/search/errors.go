package search

import (
	"errors"
	"fmt"
)

// InvalidInputError reports raw input rejected before any fetch was made.
type InvalidInputError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Field)
}

// AsInvalidInput attempts to unwrap an error into an InvalidInputError.
func AsInvalidInput(err error) (*InvalidInputError, bool) {
	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return invalid, true
	}
	return nil, false
}
