package error

import (
	"errors"

	goerrors "github.com/go-errors/errors"
)

type ErrorType int

const (
	InvalidArgument ErrorType = iota
	MalformedCount
	MalformedRequirement
)

var (
	ErrInvalidArgument      = &Error{Type: InvalidArgument}
	ErrMalformedCount       = &Error{Type: MalformedCount}
	ErrMalformedRequirement = &Error{Type: MalformedRequirement}
)

type Error struct {
	Message string
	Type    ErrorType
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on the error kind only, so the exported sentinels match any
// error of the same kind regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	if !ok {
		return false
	}

	return e.Type == t.Type
}

func New(errorType ErrorType, reason string) *Error {
	err := &Error{}

	switch errorType {
	case InvalidArgument:
		err.Message = "hatsim: Invalid argument: " + reason
	case MalformedCount:
		err.Message = "hatsim: Malformed count: " + reason
	case MalformedRequirement:
		err.Message = "hatsim: Malformed requirement: " + reason
	default:
		err.Message = "hatsim: Unknown error: " + reason
	}

	err.Type = errorType

	return err
}

// TypeOf reports the kind of the first *Error found in err's chain, looking
// through go-errors stack wrappers as well as standard wrapping.
func TypeOf(err error) (ErrorType, bool) {
	for err != nil {
		switch t := err.(type) {
		case *Error:
			return t.Type, true
		case *goerrors.Error:
			err = t.Err
		default:
			err = errors.Unwrap(err)
		}
	}

	return 0, false
}

// IsType reports whether err carries an *Error of the given kind.
func IsType(err error, errorType ErrorType) bool {
	t, ok := TypeOf(err)

	return ok && t == errorType
}
