package maps

import "github.com/amp-labs/things/verify"

// Enum is implemented by enumeration types that can list their constants,
// in declaration order:
//
//	type Color int
//
//	const (
//	    Red Color = iota
//	    Green
//	)
//
//	func (Color) Values() []Color { return []Color{Red, Green} }
type Enum[E comparable] interface {
	comparable
	Values() []E
}

// FromEnum builds an ordered map with one entry per constant of E, valued by
// fn, in declaration order.
//
//nolint:ireturn
func FromEnum[E Enum[E], V any](fn func(E) V) (Map[E, V], error) {
	var zero E

	return FromValues(zero.Values(), fn)
}

// FromValues builds an ordered map with one entry per value, valued by fn.
// Repeated values keep their first position. A nil or empty values slice
// fails with errors.ErrMissingValue.
//
//nolint:ireturn
func FromValues[E comparable, V any](values []E, fn func(E) V) (Map[E, V], error) {
	if _, err := verify.Verify(values, verify.WithMessage("values")); err != nil {
		return nil, err
	}

	if err := verify.Argument(fn, "value mapper"); err != nil {
		return nil, err
	}

	out := NewOrderedMap[E, V]()
	for _, value := range values {
		putIfAbsent(out, value, fn(value))
	}

	return out, nil
}
