package errkind

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch on the cause instead of the
// message. A Kind is itself an error, which lets it be used as the target of
// errors.Is.
type Kind int

const (
	Unknown Kind = iota
	MalformedRequest
	InvalidScreenNumber
	IoError
	CaptureFailure
	BindFailure
)

func (k Kind) Error() string {
	switch k {
	case MalformedRequest:
		return "malformed request"
	case InvalidScreenNumber:
		return "invalid screen number"
	case IoError:
		return "i/o error"
	case CaptureFailure:
		return "capture failure"
	case BindFailure:
		return "bind failure"
	default:
		return fmt.Sprintf("unknown error kind: %d", int(k))
	}
}

// Error carries a Kind, the operation that failed and the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf is New with a formatted cause.
func Newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the same Kind as e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return Unknown
}
