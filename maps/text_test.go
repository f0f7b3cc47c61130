package maps_test

import (
	"testing"

	"github.com/amp-labs/things/codec"
	"github.com/amp-labs/things/errors"
	"github.com/amp-labs/things/maps"
	"github.com/amp-labs/things/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	t.Parallel()

	out, err := maps.ParseJSON(`{'a':'b'}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "b"}, out)

	out, err = maps.ParseJSON(`{"n": 1, "nested": {"ok": true}, "list": [1, "x"]}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"n":      float64(1),
		"nested": map[string]any{"ok": true},
		"list":   []any{float64(1), "x"},
	}, out)
}

func TestParseJSON_Degrades(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"not json", "[1, 2]", `{"a": `, "42"} {
		out, err := maps.ParseJSON(text)
		require.NoError(t, err, text)
		assert.NotNil(t, out, text)
		assert.Empty(t, out, text)
	}

	_, err := maps.ParseJSON("")
	require.ErrorIs(t, err, errors.ErrMissingValue)
}

func TestFromJSON_Order(t *testing.T) {
	t.Parallel()

	m, err := maps.FromJSON[int](maps.NewOrderedMap[string, int], `{"z": 1, "a": 2, "m": 3, "z": 4}`)
	require.NoError(t, err)

	keys, values := collect(m)
	assert.Equal(t, []string{"z", "a", "m"}, keys)
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestFromJSON_WrongValueType(t *testing.T) {
	t.Parallel()

	m, err := maps.FromJSON[int](maps.NewOrderedMap[string, int], `{"a": 1, "b": "two"}`)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
}

func TestFromText_Codecs(t *testing.T) {
	t.Parallel()

	m, err := maps.FromText[string](maps.NewOrderedMap[string, string], codec.YAML, "host: localhost\nport: \"80\"\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "port"}, m.Keys())

	v, _ := m.Get("port")
	assert.Equal(t, "80", v)

	tm, err := maps.FromText[int64](maps.NewOrderedMap[string, int64], codec.TOML, "b = 2\na = 1\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, tm.Keys())

	bad, err := maps.FromText[int64](maps.NewOrderedMap[string, int64], codec.TOML, "[[[")
	require.NoError(t, err)
	assert.Equal(t, 0, bad.Size())
}

func TestFromText_Arguments(t *testing.T) {
	t.Parallel()

	_, err := maps.FromText[any](maps.NewGoMap[string, any], nil, "{}")
	require.ErrorIs(t, err, errors.ErrArgumentNotSpecified)

	_, err = maps.FromText[any](nil, codec.JSON, "{}", verify.Strict())
	require.ErrorIs(t, err, errors.ErrArgumentNotSpecified)

	m, err := maps.FromText[any](nil, codec.JSON, `{"a": 1}`, verify.Lenient())
	require.NoError(t, err)
	assert.True(t, m.Contains("a"))

	nilMap := func() maps.Map[string, any] { return nil }

	_, err = maps.FromJSON[any](nilMap, `{"a": 1}`)
	require.ErrorIs(t, err, errors.ErrMissingValue)
	assert.Contains(t, err.Error(), "map factory result")
}
