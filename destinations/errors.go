package destinations

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	InvalidPort            ErrorKind = "InvalidPort"
	InvalidWeight          ErrorKind = "InvalidWeight"
	WeightedConflict       ErrorKind = "WeightedConflict"
	WeightedDeleteRejected ErrorKind = "WeightedDeleteRejected"
	NotFound               ErrorKind = "NotFound"
)

// ValidationError is returned for every rejected update. Nothing was changed
// when it is returned.
type ValidationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a ValidationError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == kind
}

func validationError(kind ErrorKind, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func notFoundError(err error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: NotFound, Message: fmt.Sprintf(format, args...), Err: err}
}
