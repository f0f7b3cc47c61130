// Package codec converts between Go values and text documents (JSON, YAML, TOML).
//
// Encoding failures are swallowed: Encode returns an empty string and a nil
// error, after logging the failure at debug level and counting it in
// things_codec_failures_total. Decoding failures are counted the same way but
// returned, so callers choose whether to degrade.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	commonErrors "github.com/amp-labs/things/errors"
	"github.com/amp-labs/things/logger"
	"github.com/amp-labs/things/verify"
	"gopkg.in/yaml.v3"
)

// ErrDecode is returned when a document cannot be decoded.
var ErrDecode = errors.New("decode failed")

// DecodeFunc decodes a single value into v.
type DecodeFunc func(v any) error

// Codec is a text format.
type Codec interface {
	// Name is the short, lowercase format name ("json", "yaml", "toml").
	Name() string

	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error

	// Fields walks the top-level keys of a document that must be an
	// object/mapping/table, in document order. Each value is decoded lazily
	// through the DecodeFunc. Walking stops at the first error fn returns.
	Fields(data []byte, fn func(key string, decode DecodeFunc) error) error
}

const (
	opEncode = "encode"
	opDecode = "decode"
)

// Encode renders v as text. A nil v fails with errors.ErrMissingValue. A value
// the codec cannot represent yields "" and a nil error.
func Encode(c Codec, v any) (out string, err error) {
	if err := verify.Argument(c, "codec"); err != nil {
		return "", err
	}

	if verify.IsNil(v) {
		return "", fmt.Errorf("%w: value to encode", commonErrors.ErrMissingValue)
	}

	defer func() {
		if r := recover(); r != nil {
			recordFailure(c, opEncode, fmt.Errorf("panic: %v", r))

			out, err = "", nil
		}
	}()

	data, marshalErr := c.Marshal(v)
	if marshalErr != nil {
		recordFailure(c, opEncode, marshalErr)

		return "", nil
	}

	return string(data), nil
}

// ToJSON is Encode with the JSON codec.
func ToJSON(v any) (string, error) {
	return Encode(JSON, v)
}

// Decode parses text into out. Empty text fails with errors.ErrMissingValue;
// malformed text fails with ErrDecode. When the text is well formed but a
// value does not fit out, the error also wraps errors.ErrWrongType.
func Decode(c Codec, text string, out any) error {
	if err := checkDecode(c, text); err != nil {
		return err
	}

	if err := verify.Argument(out, "output"); err != nil {
		return err
	}

	if err := c.Unmarshal([]byte(text), out); err != nil {
		recordFailure(c, opDecode, err)

		if isTypeMismatch(err) {
			return fmt.Errorf("%w: %w: %s: %w", ErrDecode, commonErrors.ErrWrongType, c.Name(), err)
		}

		return fmt.Errorf("%w: %s: %w", ErrDecode, c.Name(), err)
	}

	return nil
}

// Walk calls Fields on text, with the same argument checks and failure
// accounting as Decode. The document has been parsed by the time fn runs, so
// a failing DecodeFunc yields an error wrapping both ErrDecode and
// errors.ErrWrongType. Other errors returned by fn are passed through untouched.
func Walk(c Codec, text string, fn func(key string, decode DecodeFunc) error) error {
	if err := checkDecode(c, text); err != nil {
		return err
	}

	if err := verify.Argument(fn, "field visitor"); err != nil {
		return err
	}

	var visitErr error

	err := c.Fields([]byte(text), func(key string, decode DecodeFunc) error {
		visitErr = fn(key, func(v any) error {
			if err := decode(v); err != nil {
				recordFailure(c, opDecode, err)

				return fmt.Errorf("%w: %w: %s: field %q: %w", ErrDecode, commonErrors.ErrWrongType, c.Name(), key, err)
			}

			return nil
		})

		return visitErr
	})
	if err == nil {
		return nil
	}

	if visitErr != nil {
		return visitErr
	}

	recordFailure(c, opDecode, err)

	return fmt.Errorf("%w: %s: %w", ErrDecode, c.Name(), err)
}

func isTypeMismatch(err error) bool {
	var (
		jsonErr *json.UnmarshalTypeError
		yamlErr *yaml.TypeError
	)

	return errors.As(err, &jsonErr) || errors.As(err, &yamlErr)
}

func checkDecode(c Codec, text string) error {
	if err := verify.Argument(c, "codec"); err != nil {
		return err
	}

	if text == "" {
		return fmt.Errorf("%w: text to decode", commonErrors.ErrMissingValue)
	}

	return nil
}

func recordFailure(c Codec, op string, err error) {
	failuresTotal.WithLabelValues(c.Name(), op).Inc()

	logger.Get().Debug("codec failure",
		"codec", c.Name(),
		"operation", op,
		"error", err)
}
