// Package envutil reads typed configuration values from environment variables.
//
// Each reader function returns a Reader, which carries the key, whether the
// variable was present, the parsed value and any parse error. Options such as
// Default are applied in order after parsing.
//
//	strict := envutil.Bool("THINGS_STRICT_ARGUMENTS", envutil.Default(false)).ValueOrElse(false)
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLogLevel is returned when a log level name is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidChoice is returned when a value is not one of the allowed choices.
	ErrInvalidChoice = errors.New("invalid choice")
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// NewReader returns a Reader for the given raw data. This provides the same
// functionality as the environment-backed readers when the values come from
// somewhere else.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool returns a Reader that parses the variable with strconv.ParseBool.
// Surrounding whitespace is ignored.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// OneOf returns a Reader whose value must be one of the given choices
// (compared case-insensitively, after trimming). The matched choice is returned.
func OneOf(key string, choices []string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(key), func(s string) (string, error) {
		s = strings.ToLower(strings.TrimSpace(s))

		idx := slices.IndexFunc(choices, func(c string) bool {
			return strings.ToLower(c) == s
		})
		if idx < 0 {
			return s, fmt.Errorf("%w: %q (allowed: %s)", ErrInvalidChoice, s, strings.Join(choices, ", "))
		}

		return choices[idx], nil
	}), opts)
}

// SlogLevel returns a Reader that parses one of "debug", "info", "warn" or "error".
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), parseSlogLevel), opts)
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
