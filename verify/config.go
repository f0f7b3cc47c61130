package verify

import (
	"fmt"
	"sync"

	"github.com/amp-labs/things/envutil"
)

// EnvStrictArguments names the environment variable read by LoadConfig.
const EnvStrictArguments = "THINGS_STRICT_ARGUMENTS"

// Config controls how auxiliary arguments (predicates, custom errors, map
// factories) are treated when they are missing.
type Config struct {
	// StrictArguments makes a nil predicate, an explicit WithError(nil) or a
	// nil map factory fail with errors.ErrArgumentNotSpecified before the value
	// is looked at. When false, a nil predicate always passes, a nil error
	// falls back to the missing-value error and a nil factory falls back to
	// the package default.
	StrictArguments bool
}

// LoadConfig reads the configuration from the environment. An unset
// THINGS_STRICT_ARGUMENTS means lenient.
func LoadConfig() (Config, error) {
	strict, err := envutil.Bool(EnvStrictArguments, envutil.Default(false)).Value()
	if err != nil {
		return Config{}, fmt.Errorf("loading verify config: %w", err)
	}

	return Config{StrictArguments: strict}, nil
}

var defaultConfig = sync.OnceValue(func() Config { //nolint:gochecknoglobals
	strict := envutil.Bool(EnvStrictArguments, envutil.Default(false)).ValueOrElse(false)

	return Config{StrictArguments: strict}
})

// DefaultConfig returns the process-wide configuration, read from the
// environment on first use. Malformed values are logged and treated as unset.
func DefaultConfig() Config {
	return defaultConfig()
}
