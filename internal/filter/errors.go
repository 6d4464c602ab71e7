package filter

import (
	"errors"
	"fmt"
)

var ErrInvalidFilter = errors.New("invalid filter")

// InvalidFilterError names the option that failed and why.
type InvalidFilterError struct {
	Option string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidFilter, e.Option, e.Reason)
}

func (e *InvalidFilterError) Is(target error) bool {
	return target == ErrInvalidFilter
}

func invalid(option, format string, args ...any) error {
	return &InvalidFilterError{Option: option, Reason: fmt.Sprintf(format, args...)}
}
