package verify

import (
	"fmt"

	"github.com/amp-labs/things/errors"
)

// Verify returns value unchanged if it passes the presence cascade, otherwise
// the zero value and an error.
//
//nolint:ireturn
func Verify[T any](value T, opts ...Option) (T, error) {
	o := newOptions(opts)

	if err := o.checkArguments(false, false); err != nil {
		var zero T

		return zero, err
	}

	if !IsPresent(value) {
		var zero T

		return zero, o.failure()
	}

	return value, nil
}

// VerifyFunc is Verify with an extra predicate that runs after the presence
// cascade. A nil predicate always passes unless strict arguments are enabled.
//
//nolint:ireturn
func VerifyFunc[T any](value T, predicate func(T) bool, opts ...Option) (T, error) {
	o := newOptions(opts)

	if err := o.checkArguments(true, predicate != nil); err != nil {
		var zero T

		return zero, err
	}

	if !IsPresent(value) || (predicate != nil && !predicate(value)) {
		var zero T

		return zero, o.failure()
	}

	return value, nil
}

// NotNil only checks that value is not nil. Zero values, false and empty
// containers pass.
//
//nolint:ireturn
func NotNil[T any](value T, opts ...Option) (T, error) {
	o := newOptions(opts)

	if err := o.checkArguments(false, false); err != nil {
		var zero T

		return zero, err
	}

	if IsNil(value) {
		var zero T

		return zero, o.failure()
	}

	return value, nil
}

// Must is like Verify but panics on failure.
//
//nolint:ireturn
func Must[T any](value T, opts ...Option) T {
	out, err := Verify(value, opts...)
	if err != nil {
		panic(err)
	}

	return out
}

// MustFunc is like VerifyFunc but panics on failure.
//
//nolint:ireturn
func MustFunc[T any](value T, predicate func(T) bool, opts ...Option) T {
	out, err := VerifyFunc(value, predicate, opts...)
	if err != nil {
		panic(err)
	}

	return out
}

// Argument returns errors.ErrArgumentNotSpecified, naming the argument, if
// value is nil. It is used for arguments that are required in every mode,
// such as key and value mappers.
func Argument(value any, name string) error {
	if IsNil(value) {
		return fmt.Errorf("%w: %s", errors.ErrArgumentNotSpecified, name)
	}

	return nil
}
