package maps_test

import (
	"strconv"
	"testing"

	"github.com/amp-labs/things/errors"
	"github.com/amp-labs/things/maps"
	"github.com/amp-labs/things/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	id   int
	name string
}

func userID(u user) int { return u.id }

func userName(u user) string { return u.name }

type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (Color) Values() []Color { return []Color{Red, Green, Blue} }

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "color(" + strconv.Itoa(int(c)) + ")"
	}
}

func TestFromPairs(t *testing.T) {
	t.Parallel()

	m, err := maps.FromPairs(maps.NewOrderedMap[string, int],
		maps.Pair("b", 1),
		maps.Pair("a", 2),
		maps.Pair("b", 3))
	require.NoError(t, err)

	keys, values := collect(m)
	assert.Equal(t, []string{"b", "a"}, keys)
	assert.Equal(t, []int{1, 2}, values, "first write wins")

	_, err = maps.FromPairs(maps.NewGoMap[string, int])
	require.ErrorIs(t, err, errors.ErrMissingValue)

	fallback, err := maps.FromPairs[string, int](nil, maps.Pair("x", 1))
	require.NoError(t, err)
	assert.True(t, fallback.Contains("x"))
}

func TestFromPairsWith(t *testing.T) {
	t.Parallel()

	pairs := []maps.KeyValuePair[string, int]{maps.Pair("a", 1), maps.Pair("a", 2)}

	m, err := maps.FromPairsWith(maps.NewOrderedMap[string, int], pairs)
	require.NoError(t, err)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, err = maps.FromPairsWith[string, int](nil, pairs, verify.Strict())
	require.ErrorIs(t, err, errors.ErrArgumentNotSpecified)

	lenient, err := maps.FromPairsWith[string, int](nil, pairs, verify.Lenient())
	require.NoError(t, err)
	assert.Equal(t, 1, lenient.Size())

	_, err = maps.FromPairsWith(maps.NewGoMap[string, int], []maps.KeyValuePair[string, int]{})
	require.ErrorIs(t, err, errors.ErrMissingValue)
}

func TestBuilders_NilFactoryResult(t *testing.T) {
	t.Parallel()

	nilMap := func() maps.Map[int, string] { return nil }

	_, err := maps.FromPairs(nilMap, maps.Pair(1, "one"))
	require.ErrorIs(t, err, errors.ErrMissingValue)
	assert.Contains(t, err.Error(), "map factory result")

	_, err = maps.FromItems(nilMap, []user{{id: 1, name: "al"}}, userID, userName)
	require.ErrorIs(t, err, errors.ErrMissingValue)
}

func TestFromItems(t *testing.T) {
	t.Parallel()

	users := []user{{id: 2, name: "bo"}, {id: 1, name: "al"}, {id: 2, name: "cy"}}

	m, err := maps.FromItems(maps.NewOrderedMap[int, string], users, userID, userName)
	require.NoError(t, err)

	keys, values := collect(m)
	assert.Equal(t, []int{2, 1}, keys)
	assert.Equal(t, []string{"bo", "al"}, values)

	_, err = maps.FromItems(maps.NewGoMap[int, string], []user{}, userID, userName)
	require.ErrorIs(t, err, errors.ErrMissingValue)
}

func TestFromItems_Arguments(t *testing.T) {
	t.Parallel()

	users := []user{{id: 1, name: "al"}}

	_, err := maps.FromItems(maps.NewGoMap[int, string], nil, userID, userName)
	require.ErrorIs(t, err, errors.ErrMissingValue)

	_, err = maps.FromItems[user, int, string](maps.NewGoMap[int, string], users, nil, userName)
	require.ErrorIs(t, err, errors.ErrArgumentNotSpecified)

	_, err = maps.FromItems[user, int, string](maps.NewGoMap[int, string], users, userID, nil)
	require.ErrorIs(t, err, errors.ErrArgumentNotSpecified)

	// Mappers are required even when lenient.
	_, err = maps.FromItems[user, int, string](maps.NewGoMap[int, string], users, nil, userName, verify.Lenient())
	require.ErrorIs(t, err, errors.ErrArgumentNotSpecified)

	m, err := maps.FromItems[user, int, string](nil, users, userID, userName, verify.Lenient())
	require.NoError(t, err)
	assert.Equal(t, 1, m.Size())

	_, err = maps.FromItems[user, int, string](nil, users, userID, userName, verify.Strict())
	require.ErrorIs(t, err, errors.ErrArgumentNotSpecified)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	users := []user{{id: 1, name: "al"}, {id: 1, name: "bo"}}

	out, err := maps.Collect(users, userID, userName)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "al"}, out)

	_, err = maps.Collect[user, int, string](nil, userID, userName)
	require.ErrorIs(t, err, errors.ErrMissingValue)

	_, err = maps.Collect([]user{}, userID, userName)
	require.ErrorIs(t, err, errors.ErrMissingValue)
}

func TestFromEnum(t *testing.T) {
	t.Parallel()

	m, err := maps.FromEnum(Color.String)
	require.NoError(t, err)

	keys, values := collect(m)
	assert.Equal(t, []Color{Red, Green, Blue}, keys)
	assert.Equal(t, []string{"red", "green", "blue"}, values)

	_, err = maps.FromEnum[Color, string](nil)
	require.ErrorIs(t, err, errors.ErrArgumentNotSpecified)
}

func TestFromValues(t *testing.T) {
	t.Parallel()

	m, err := maps.FromValues([]string{"x", "yy", "x"}, func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "yy"}, m.Keys())

	_, err = maps.FromValues[string, int](nil, func(s string) int { return len(s) })
	require.ErrorIs(t, err, errors.ErrMissingValue)

	_, err = maps.FromValues([]string{}, func(s string) int { return len(s) })
	require.ErrorIs(t, err, errors.ErrMissingValue)
}
