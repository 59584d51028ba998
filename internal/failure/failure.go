// Package failure is the error taxonomy shared by every pipeline stage.
package failure

import (
	"errors"
	"fmt"
)

// Kind identifies the pipeline stage an error came from.
type Kind int

const (
	Enumeration Kind = iota + 1 // display subsystem could not be queried
	Capture                     // one display could not be read
	Encoding                    // malformed pixel buffer
	Storage                     // local archive write failed
	Transport                   // network-level delivery failure
	Remote                      // remote rejected the batch
)

func (k Kind) String() string {
	switch k {
	case Enumeration:
		return "enumeration"
	case Capture:
		return "capture"
	case Encoding:
		return "encoding"
	case Storage:
		return "storage"
	case Transport:
		return "transport"
	case Remote:
		return "remote"
	default:
		return "unknown"
	}
}

// Error is a stage failure. StatusCode is only set for Remote errors.
type Error struct {
	Kind       Kind
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := e.Kind.String() + " error"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err as a failure of the given kind.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf is New with a formatted cause.
func Newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// NewRemote records a non-success status returned by the collector.
func NewRemote(op string, statusCode int, err error) *Error {
	return &Error{Kind: Remote, Op: op, StatusCode: statusCode, Err: err}
}

// Is reports whether err's chain contains a failure of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// KindOf returns the kind of the first failure in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// StatusCode returns the remote status carried by err, or 0.
func StatusCode(err error) int {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.StatusCode
	}
	return 0
}
