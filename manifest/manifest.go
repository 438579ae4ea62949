package manifest

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/webconf/pkg"
)

// KeyType selects the container element and attribute pair patched for a
// logical key.
type KeyType string

const (
	AppSetting       KeyType = "appSetting"       // <appSettings> key/value
	ConnectionString KeyType = "connectionString" // <connectionStrings> name/connectionString
)

// KeyConfig locates one logical key in a file. Key is the value of the
// identifying attribute of the <add/> element.
type KeyConfig struct {
	Key  string
	Type KeyType
}

// KeyConfigMap maps logical keys to their location in a file.
type KeyConfigMap map[string]KeyConfig

// File is a target file and its key mappings.
type File struct {
	Path   string
	Config KeyConfigMap
}

// Manifest is the decoded manifest document.
type Manifest struct {
	Files   []File
	Presets Presets
}

// Read reads a JSON or YAML manifest from r and returns its document tree.
func Read(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	return Decode(data)
}

// Decode parses data into a generic document tree. Mappings decode as
// [yaml.MapSlice] so that key order is preserved.
func Decode(data []byte) (any, error) {
	var doc any

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return nil, pkg.ErrParseManifest.Wrap(err)
	}

	return doc, nil
}

// FromDocument builds a Manifest from a tree produced by [Decode].
func FromDocument(doc any) (*Manifest, error) {
	root, err := mapping("manifest", doc)
	if err != nil {
		return nil, err
	}

	var m Manifest

	for _, item := range root {
		switch key := fmt.Sprint(item.Key); key {
		case "files":
			m.Files, err = DecodeFiles(item.Value)
		case "presets":
			m.Presets, err = DecodePresets(item.Value)
		}

		if err != nil {
			return nil, err
		}
	}

	return &m, nil
}

// DecodeFiles converts the "files" sequence of a document tree.
func DecodeFiles(node any) ([]File, error) {
	if node == nil {
		return nil, nil
	}

	seq, ok := node.([]any)
	if !ok {
		return nil, pkg.ErrParseManifest.Wrapf(
			"files: expected sequence, got %T", node)
	}

	files := make([]File, 0, len(seq))

	for i, elem := range seq {
		path := fmt.Sprintf("files[%d]", i)

		entry, err := mapping(path, elem)
		if err != nil {
			return nil, err
		}

		var file File

		for _, item := range entry {
			switch fmt.Sprint(item.Key) {
			case "file":
				file.Path, err = scalar(path+".file", item.Value)
			case "config":
				file.Config, err = decodeKeyConfig(path+".config", item.Value)
			}

			if err != nil {
				return nil, err
			}
		}

		if file.Path == "" {
			return nil, pkg.ErrParseManifest.Wrapf("%s: missing file", path)
		}

		files = append(files, file)
	}

	return files, nil
}

// DecodePresets converts the "presets" mapping of a document tree.
func DecodePresets(node any) (Presets, error) {
	root, err := mapping("presets", node)
	if err != nil {
		return nil, err
	}

	presets := make(Presets, 0, len(root))

	for _, item := range root {
		name := fmt.Sprint(item.Key)
		path := "presets." + name

		body, err := mapping(path, item.Value)
		if err != nil {
			return nil, err
		}

		var values Values

		for _, kv := range body {
			key := fmt.Sprint(kv.Key)

			value, err := scalar(path+"."+key, kv.Value)
			if err != nil {
				return nil, err
			}

			values = values.Set(key, value)
		}

		presets = append(presets, Preset{Name: name, Values: values})
	}

	return presets, nil
}

func decodeKeyConfig(path string, node any) (KeyConfigMap, error) {
	root, err := mapping(path, node)
	if err != nil {
		return nil, err
	}

	config := make(KeyConfigMap, len(root))

	for _, item := range root {
		name := fmt.Sprint(item.Key)
		sub := path + "." + name

		body, err := mapping(sub, item.Value)
		if err != nil {
			return nil, err
		}

		var kc KeyConfig

		for _, kv := range body {
			var s string

			s, err = scalar(sub+"."+fmt.Sprint(kv.Key), kv.Value)
			if err != nil {
				return nil, err
			}

			switch fmt.Sprint(kv.Key) {
			case "key":
				kc.Key = s
			case "type":
				kc.Type = KeyType(s)
			}
		}

		config[name] = kc
	}

	return config, nil
}

// mapping returns node as an ordered mapping. A nil node is an empty mapping.
func mapping(path string, node any) (yaml.MapSlice, error) {
	switch m := node.(type) {
	case nil:
		return nil, nil

	case yaml.MapSlice:
		return m, nil

	case map[string]any:
		ms := make(yaml.MapSlice, 0, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			ms = append(ms, yaml.MapItem{Key: k, Value: m[k]})
		}

		return ms, nil

	default:
		return nil, pkg.ErrParseManifest.Wrapf(
			"%s: expected mapping, got %T", path, node)
	}
}

// scalar renders a leaf value as its literal text. Null is the empty string.
func scalar(path string, node any) (string, error) {
	switch v := node.(type) {
	case nil:
		return "", nil

	case string:
		return v, nil

	case yaml.MapSlice, map[string]any, []any:
		return "", pkg.ErrParseManifest.Wrapf(
			"%s: expected scalar, got %T", path, node)

	default:
		return fmt.Sprint(v), nil
	}
}
