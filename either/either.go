// Package either picks the first qualifying value out of a list of candidates.
//
//	host, err := either.Of(flagHost, envHost, defaultHost)  // first non-nil
//	port, err := either.Positive(flagPort, envPort, 8080)  // first > 0
package either

import (
	"fmt"

	"github.com/amp-labs/things/errors"
	"github.com/amp-labs/things/verify"
)

// Number is the set of types accepted by Positive.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Of returns the first item that is not nil. Values of non-nillable types
// (ints, strings, structs) always qualify, zero or not.
//
//nolint:ireturn
func Of[T any](items ...T) (T, error) {
	return first(items, notNil[T])
}

// Func returns the first item for which predicate returns true.
//
// A nil predicate fails with errors.ErrArgumentNotSpecified under strict
// arguments; otherwise it behaves like Of.
//
//nolint:ireturn
func Func[T any](items []T, predicate func(T) bool, opts ...verify.Option) (T, error) {
	if predicate == nil {
		if verify.ResolveConfig(opts...).StrictArguments {
			var zero T

			return zero, fmt.Errorf("%w: predicate", errors.ErrArgumentNotSpecified)
		}

		predicate = notNil[T]
	}

	return first(items, predicate)
}

// Positive returns the first number strictly greater than zero.
//
//nolint:ireturn
func Positive[N Number](items ...N) (N, error) {
	return first(items, func(n N) bool { return n > 0 })
}

func notNil[T any](item T) bool {
	return !verify.IsNil(item)
}

//nolint:ireturn
func first[T any](items []T, predicate func(T) bool) (T, error) {
	for _, item := range items {
		if predicate(item) {
			return item, nil
		}
	}

	var zero T

	if len(items) == 0 {
		return zero, fmt.Errorf("%w: no candidates given", errors.ErrNoMatch)
	}

	return zero, fmt.Errorf("%w: none of %d candidates qualified", errors.ErrNoMatch, len(items))
}
