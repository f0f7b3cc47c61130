package codec

import (
	"github.com/BurntSushi/toml"
)

// TOML is the TOML codec. Only tables (maps and structs) can be encoded.
var TOML Codec = tomlCodec{} //nolint:gochecknoglobals

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

func (tomlCodec) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (tomlCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

func (tomlCodec) Fields(data []byte, fn func(key string, decode DecodeFunc) error) error {
	var raw map[string]toml.Primitive

	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return err
	}

	// md.Keys() lists every key, nested ones included, in document order.
	seen := make(map[string]struct{}, len(raw))

	for _, key := range md.Keys() {
		if len(key) == 0 {
			continue
		}

		name := key[0]
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		prim, ok := raw[name]
		if !ok {
			continue
		}

		if err := fn(name, func(v any) error { return md.PrimitiveDecode(prim, v) }); err != nil {
			return err
		}
	}

	return nil
}
