// Package slices has small generic helpers for projecting and checking slices.
package slices

import "github.com/amp-labs/things/verify"

// Pluck applies fn to every item and returns the results in the same order.
// The output always has the same length as items. A nil or empty items slice
// fails with errors.ErrMissingValue.
func Pluck[T, R any](items []T, fn func(T) R) ([]R, error) {
	if _, err := verify.Verify(items, verify.WithMessage("items")); err != nil {
		return nil, err
	}

	if err := verify.Argument(fn, "mapper"); err != nil {
		return nil, err
	}

	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}

	return out, nil
}

// IsEmpty reports whether items has no elements. A nil slice is empty.
func IsEmpty[T any](items []T) bool {
	return len(items) == 0
}

// IsNotEmpty reports whether items has at least one element.
func IsNotEmpty[T any](items []T) bool {
	return len(items) > 0
}

// IsEmptyFunc reports whether items is empty or any element satisfies
// predicate. Typical use is "empty or contains a blank entry".
func IsEmptyFunc[T any](items []T, predicate func(T) bool) bool {
	if len(items) == 0 {
		return true
	}

	if predicate == nil {
		return false
	}

	for _, item := range items {
		if predicate(item) {
			return true
		}
	}

	return false
}

// IsNotEmptyFunc reports whether items is non-empty and every element
// satisfies predicate. A nil predicate reduces it to IsNotEmpty.
func IsNotEmptyFunc[T any](items []T, predicate func(T) bool) bool {
	if len(items) == 0 {
		return false
	}

	if predicate == nil {
		return true
	}

	for _, item := range items {
		if !predicate(item) {
			return false
		}
	}

	return true
}

// First returns the first element, or false if there is none.
//
//nolint:ireturn
func First[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T

		return zero, false
	}

	return items[0], true
}
