package maps

import (
	"errors"

	"github.com/amp-labs/things/codec"
	"github.com/amp-labs/things/verify"
)

// FromText decodes the top-level object of a document into a map, keeping
// document order when the factory produces an ordered map. When a key
// repeats, the first occurrence wins.
//
// Empty text fails with errors.ErrMissingValue, as does a factory returning a
// nil Map. Text that cannot be decoded, or whose values do not fit V, yields a
// fresh empty map and a nil error; the failure is logged and counted by
// package codec.
//
//nolint:ireturn
func FromText[V any](
	factory Factory[string, V],
	c codec.Codec,
	text string,
	opts ...verify.Option,
) (Map[string, V], error) {
	newMap, err := resolveFactory(factory, verify.ResolveConfig(opts...))
	if err != nil {
		return nil, err
	}

	out, err := create(newMap)
	if err != nil {
		return nil, err
	}

	err = codec.Walk(c, text, func(key string, decode codec.DecodeFunc) error {
		if out.Contains(key) {
			return nil
		}

		var value V
		if err := decode(&value); err != nil {
			return err
		}

		out.Add(key, value)

		return nil
	})

	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, codec.ErrDecode):
		return create(newMap)
	default:
		return nil, err
	}
}

// FromJSON is FromText with the JSON codec. Single-quoted strings are
// accepted.
//
//nolint:ireturn
func FromJSON[V any](factory Factory[string, V], text string, opts ...verify.Option) (Map[string, V], error) {
	return FromText(factory, codec.JSON, text, opts...)
}

// ParseJSON decodes a JSON object into a builtin map. Malformed input yields
// an empty map and a nil error.
func ParseJSON(text string) (map[string]any, error) {
	m, err := FromJSON[any](NewGoMap[string, any], text)
	if err != nil {
		return nil, err
	}

	return ToGoMap(m), nil
}
