package maps

import (
	"fmt"

	"github.com/amp-labs/things/errors"
	"github.com/amp-labs/things/verify"
)

// KeyValuePair is a single map entry, used to build maps from literals.
type KeyValuePair[K comparable, V any] struct {
	Key   K
	Value V
}

// Pair is shorthand for KeyValuePair{Key: key, Value: value}.
func Pair[K comparable, V any](key K, value V) KeyValuePair[K, V] {
	return KeyValuePair[K, V]{Key: key, Value: value}
}

// FromPairs builds a map from pairs. When a key repeats, the first pair wins.
// At least one pair is required. Strictness comes from the process default;
// use FromPairsWith to choose it per call.
//
//	m, err := maps.FromPairs(maps.NewOrderedMap[string, int],
//	    maps.Pair("a", 1),
//	    maps.Pair("b", 2))
//
//nolint:ireturn
func FromPairs[K comparable, V any](factory Factory[K, V], pairs ...KeyValuePair[K, V]) (Map[K, V], error) {
	return FromPairsWith(factory, pairs)
}

// FromPairsWith is FromPairs taking the pairs as a slice, followed by options.
//
//nolint:ireturn
func FromPairsWith[K comparable, V any](
	factory Factory[K, V],
	pairs []KeyValuePair[K, V],
	opts ...verify.Option,
) (Map[K, V], error) {
	newMap, err := resolveFactory(factory, verify.ResolveConfig(opts...))
	if err != nil {
		return nil, err
	}

	if _, err := verify.Verify(pairs, verify.WithMessage("pairs")); err != nil {
		return nil, err
	}

	out, err := create(newMap)
	if err != nil {
		return nil, err
	}

	for _, pair := range pairs {
		putIfAbsent(out, pair.Key, pair.Value)
	}

	return out, nil
}

// FromItems builds a map with one entry per item, keyed by keyFn and valued
// by valueFn. When two items produce the same key, the first one wins.
//
// A nil or empty items slice fails with errors.ErrMissingValue. Both mappers
// are required. A nil factory falls back to NewGoMap unless strict arguments
// are enabled.
//
//nolint:ireturn
func FromItems[T any, K comparable, V any](
	factory Factory[K, V],
	items []T,
	keyFn func(T) K,
	valueFn func(T) V,
	opts ...verify.Option,
) (Map[K, V], error) {
	newMap, err := resolveFactory(factory, verify.ResolveConfig(opts...))
	if err != nil {
		return nil, err
	}

	if err := checkItems(items, keyFn, valueFn); err != nil {
		return nil, err
	}

	out, err := create(newMap)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		putIfAbsent(out, keyFn(item), valueFn(item))
	}

	return out, nil
}

// Collect is FromItems returning a builtin map.
func Collect[T any, K comparable, V any](items []T, keyFn func(T) K, valueFn func(T) V) (map[K]V, error) {
	if err := checkItems(items, keyFn, valueFn); err != nil {
		return nil, err
	}

	out := make(map[K]V, len(items))

	for _, item := range items {
		key := keyFn(item)
		if _, ok := out[key]; ok {
			continue
		}

		out[key] = valueFn(item)
	}

	return out, nil
}

func checkItems[T, K, V any](items []T, keyFn func(T) K, valueFn func(T) V) error {
	if _, err := verify.Verify(items, verify.WithMessage("items")); err != nil {
		return err
	}

	if err := verify.Argument(keyFn, "key mapper"); err != nil {
		return err
	}

	return verify.Argument(valueFn, "value mapper")
}

func resolveFactory[K comparable, V any](factory Factory[K, V], cfg verify.Config) (Factory[K, V], error) {
	if factory != nil {
		return factory, nil
	}

	if cfg.StrictArguments {
		return nil, fmt.Errorf("%w: map factory", errors.ErrArgumentNotSpecified)
	}

	return NewGoMap[K, V], nil
}

// create calls the factory, rejecting a nil result.
//
//nolint:ireturn
func create[K comparable, V any](newMap Factory[K, V]) (Map[K, V], error) {
	return verify.NotNil(newMap(), verify.WithMessage("map factory result"))
}

func putIfAbsent[K comparable, V any](m Map[K, V], key K, value V) {
	if !m.Contains(key) {
		m.Add(key, value)
	}
}
