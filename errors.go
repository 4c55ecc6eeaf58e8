package expenses

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a missing store file.
	ErrNotFound = errors.New("expense store not found")
	// ErrParse reports a store file whose content is not a valid expense list.
	ErrParse = errors.New("malformed expense store")
	// ErrIO reports a read or write failure on the store or a backup.
	ErrIO = errors.New("i/o failure")
	// ErrInvalidAmount reports an amount that is not a number.
	ErrInvalidAmount = errors.New("invalid amount")
)

// OpError records a failed store or backup operation.
//
// errors.Is matches both its Kind (ErrNotFound, ErrParse or ErrIO) and the
// underlying error.
type OpError struct {
	Op   string // "load", "save", "init", "snapshot"
	Path string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Kind)
	}
	if errors.Is(e.Err, e.Kind) {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %q: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Operation returns the name of the operation that failed in err's chain,
// or "" if err does not carry an OpError.
func Operation(err error) string {
	var op *OpError
	if errors.As(err, &op) {
		return op.Op
	}
	return ""
}
