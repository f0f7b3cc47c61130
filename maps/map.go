// Package maps provides a small Map abstraction with an unordered and an
// insertion-ordered implementation, plus builders that populate one from
// pairs, items, enumerations and text documents.
package maps

import "iter"

// Map is a generic key-value container.
//
// Implementations are not thread-safe. Concurrent access must be synchronized
// by the caller.
type Map[K comparable, V any] interface {
	// Add inserts or replaces the value for key. Replacing does not move the
	// key in an ordered map.
	Add(key K, value V)

	// Get returns the value for key and whether it was present.
	Get(key K) (V, bool)

	Contains(key K) bool

	// Remove deletes key. Removing a missing key is a no-op.
	Remove(key K)

	Clear()
	Size() int

	// Keys returns a fresh slice of the keys, in iteration order.
	Keys() []K

	// Seq ranges over the entries:
	//
	//	for key, value := range m.Seq() { ... }
	Seq() iter.Seq2[K, V]
}

// Factory creates an empty Map. NewGoMap and NewOrderedMap are factories.
type Factory[K comparable, V any] func() Map[K, V]

// NewGoMap returns a Map backed by a builtin map. Iteration order is
// unspecified.
//
//nolint:ireturn
func NewGoMap[K comparable, V any]() Map[K, V] {
	return goMap[K, V]{}
}

type goMap[K comparable, V any] map[K]V

func (m goMap[K, V]) Add(key K, value V) { m[key] = value }

func (m goMap[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]

	return v, ok
}

func (m goMap[K, V]) Contains(key K) bool {
	_, ok := m[key]

	return ok
}

func (m goMap[K, V]) Remove(key K) { delete(m, key) }

func (m goMap[K, V]) Clear() { clear(m) }

func (m goMap[K, V]) Size() int { return len(m) }

func (m goMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}

func (m goMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}

// NewOrderedMap returns a Map that iterates in insertion order.
//
//nolint:ireturn
func NewOrderedMap[K comparable, V any]() Map[K, V] {
	return &orderedMap[K, V]{data: make(map[K]V)}
}

// orderedMap keeps a builtin map for lookups and a key slice for order.
// Remove is O(n).
type orderedMap[K comparable, V any] struct {
	orderedKeys []K
	data        map[K]V
}

func (o *orderedMap[K, V]) Add(key K, value V) {
	if _, ok := o.data[key]; !ok {
		o.orderedKeys = append(o.orderedKeys, key)
	}

	o.data[key] = value
}

func (o *orderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := o.data[key]

	return v, ok
}

func (o *orderedMap[K, V]) Contains(key K) bool {
	_, ok := o.data[key]

	return ok
}

func (o *orderedMap[K, V]) Remove(key K) {
	if _, ok := o.data[key]; !ok {
		return
	}

	delete(o.data, key)

	for i, k := range o.orderedKeys {
		if k == key {
			o.orderedKeys = append(o.orderedKeys[:i], o.orderedKeys[i+1:]...)

			break
		}
	}
}

func (o *orderedMap[K, V]) Clear() {
	o.orderedKeys = nil
	o.data = make(map[K]V)
}

func (o *orderedMap[K, V]) Size() int { return len(o.data) }

func (o *orderedMap[K, V]) Keys() []K {
	keys := make([]K, len(o.orderedKeys))
	copy(keys, o.orderedKeys)

	return keys
}

func (o *orderedMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range o.orderedKeys {
			if !yield(key, o.data[key]) {
				return
			}
		}
	}
}

// ToGoMap copies m into a builtin map. A nil m yields nil.
func ToGoMap[K comparable, V any](m Map[K, V]) map[K]V {
	if m == nil {
		return nil
	}

	out := make(map[K]V, m.Size())
	for k, v := range m.Seq() {
		out[k] = v
	}

	return out
}

// FromGoMap copies a builtin map into a new unordered Map. A nil m yields nil.
//
//nolint:ireturn
func FromGoMap[K comparable, V any](m map[K]V) Map[K, V] {
	if m == nil {
		return nil
	}

	out := make(goMap[K, V], len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
