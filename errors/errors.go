// Package errors defines the error kinds shared by the things packages and a
// small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrMissingValue is returned when a candidate value is nil, false, or empty,
	// or when it fails a caller-supplied predicate.
	ErrMissingValue = errors.New("missing value")

	// ErrArgumentNotSpecified is returned when an auxiliary argument (predicate,
	// map factory, key or value mapper) was not supplied.
	ErrArgumentNotSpecified = errors.New("argument not specified")

	// ErrNoMatch is returned by the either helpers when no candidate qualifies.
	ErrNoMatch = errors.New("no match found")

	// ErrWrongType is returned (alongside codec.ErrDecode) when a decoded value
	// does not fit the requested Go type.
	ErrWrongType = errors.New("wrong type")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// The zero value is ready to use.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is one, and errors.Join otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
