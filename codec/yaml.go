package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML is the YAML codec.
var YAML Codec = yamlCodec{} //nolint:gochecknoglobals

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func (yamlCodec) Fields(data []byte, fn func(key string, decode DecodeFunc) error) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: yaml root is %s", ErrNotAnObject, root.Tag)
	}

	// Content alternates key, value.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		if err := fn(key.Value, value.Decode); err != nil {
			return err
		}
	}

	return nil
}
