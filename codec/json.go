package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotAnObject is returned by Fields when the document root is not a
	// key/value object.
	ErrNotAnObject = errors.New("document is not an object")

	// JSON is the JSON codec. Decoding accepts single-quoted strings.
	JSON Codec = jsonCodec{} //nolint:gochecknoglobals
)

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal([]byte(NormalizeQuotes(string(data))), v)
}

func (jsonCodec) Fields(data []byte, fn func(key string, decode DecodeFunc) error) error {
	dec := json.NewDecoder(strings.NewReader(NormalizeQuotes(string(data))))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: json root is %v", ErrNotAnObject, tok)
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected token %v", ErrNotAnObject, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		if err := fn(key, func(v any) error { return json.Unmarshal(raw, v) }); err != nil {
			return err
		}
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// NormalizeQuotes rewrites single-quoted string literals as double-quoted
// ones so that loosely written JSON such as {'a': 'b'} can be parsed.
// Apostrophes inside double-quoted strings are left alone, double quotes
// inside single-quoted strings are escaped, and \' becomes a plain '.
func NormalizeQuotes(text string) string {
	if !strings.ContainsRune(text, '\'') {
		return text
	}

	var (
		buf   bytes.Buffer
		quote byte
	)

	buf.Grow(len(text) + 8) //nolint:mnd

	for i := 0; i < len(text); i++ {
		ch := text[i]

		switch {
		case quote == 0:
			if ch == '\'' {
				quote = ch

				buf.WriteByte('"')

				continue
			}

			if ch == '"' {
				quote = ch
			}

			buf.WriteByte(ch)

		case ch == '\\' && i+1 < len(text):
			i++

			next := text[i]
			if quote == '\'' && next == '\'' {
				buf.WriteByte(next)

				continue
			}

			buf.WriteByte(ch)
			buf.WriteByte(next)

		case ch == quote:
			quote = 0

			buf.WriteByte('"')

		case quote == '\'' && ch == '"':
			buf.WriteString(`\"`)

		default:
			buf.WriteByte(ch)
		}
	}

	return buf.String()
}
