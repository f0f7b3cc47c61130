package verify

import (
	"fmt"

	"github.com/amp-labs/things/errors"
)

// Option customizes a single Verify call.
type Option func(*options)

type options struct {
	message string
	err     error
	errSet  bool
	config  Config
}

// WithMessage annotates the failure with msg.
func WithMessage(msg string) Option {
	return func(o *options) {
		o.message = msg
	}
}

// WithError replaces the default errors.ErrMissingValue with err. Passing a
// nil error is an argument error in strict mode; in lenient mode the default
// error is used (with an "error not specified" note).
func WithError(err error) Option {
	return func(o *options) {
		o.err = err
		o.errSet = true
	}
}

// WithConfig overrides the process-wide DefaultConfig for this call.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// Strict enables strict argument checking for this call.
func Strict() Option {
	return func(o *options) {
		o.config.StrictArguments = true
	}
}

// Lenient disables strict argument checking for this call.
func Lenient() Option {
	return func(o *options) {
		o.config.StrictArguments = false
	}
}

func newOptions(opts []Option) *options {
	o := &options{config: DefaultConfig()}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// ResolveConfig returns the configuration the given options would use. Other
// packages call this to apply the same strictness to their own arguments.
func ResolveConfig(opts ...Option) Config {
	return newOptions(opts).config
}

// failure builds the error returned when the value is not present.
func (o *options) failure() error {
	base := errors.ErrMissingValue

	if o.errSet {
		if o.err == nil {
			if o.message != "" {
				return fmt.Errorf("%w: error not specified: %s", errors.ErrMissingValue, o.message)
			}

			return fmt.Errorf("%w: error not specified", errors.ErrMissingValue)
		}

		base = o.err
	}

	if o.message != "" {
		return fmt.Errorf("%w: %s", base, o.message)
	}

	return base
}

// checkArguments applies strict-mode argument checks.
func (o *options) checkArguments(hasPredicate, predicateGiven bool) error {
	if !o.config.StrictArguments {
		return nil
	}

	if o.errSet && o.err == nil {
		return fmt.Errorf("%w: error", errors.ErrArgumentNotSpecified)
	}

	if hasPredicate && !predicateGiven {
		return fmt.Errorf("%w: predicate", errors.ErrArgumentNotSpecified)
	}

	return nil
}
