package manifest

import (
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// Document returns m as a document tree accepted by [FromDocument].
// Files and presets keep their order; key mappings are sorted by name.
func (m *Manifest) Document() yaml.MapSlice {
	files := make([]any, 0, len(m.Files))

	for _, f := range m.Files {
		config := make(yaml.MapSlice, 0, len(f.Config))

		for _, name := range slices.Sorted(maps.Keys(f.Config)) {
			kc := f.Config[name]
			config = append(config, yaml.MapItem{Key: name, Value: yaml.MapSlice{
				{Key: "key", Value: kc.Key},
				{Key: "type", Value: string(kc.Type)},
			}})
		}

		files = append(files, yaml.MapSlice{
			{Key: "file", Value: f.Path},
			{Key: "config", Value: config},
		})
	}

	presets := make(yaml.MapSlice, 0, len(m.Presets))

	for _, p := range m.Presets {
		values := make(yaml.MapSlice, 0, len(p.Values))
		for key, value := range p.Values.All() {
			values = append(values, yaml.MapItem{Key: key, Value: value})
		}

		presets = append(presets, yaml.MapItem{Key: p.Name, Value: values})
	}

	return yaml.MapSlice{
		{Key: "files", Value: files},
		{Key: "presets", Value: presets},
	}
}

// MarshalYAML encodes m as a YAML document.
func (m *Manifest) MarshalYAML() ([]byte, error) {
	return m.marshal(yaml.Indent(2), yaml.IndentSequence(true))
}

// MarshalJSON encodes m as a JSON document.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	return m.marshal(yaml.JSON())
}

func (m *Manifest) marshal(opts ...yaml.EncodeOption) ([]byte, error) {
	return yaml.MarshalWithOptions(m.Document(), opts...)
}
