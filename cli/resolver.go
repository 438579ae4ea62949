package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/webconf/manifest"
	"github.com/ardnew/webconf/pkg"
)

// load is a [kong.ConfigurationLoader] for manifests written in JSON or YAML.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(load, "/path/to/webconf.yaml")
//
// Each top-level key of the manifest resolves the flag of the same name.
// Keys may spell hyphens as underscores, so both of these set --dry-run:
//
//	{"dry-run": true}
//	{"dry_run": true}
//
// The "files" and "presets" keys hold the manifest proper. Values are passed
// to the flag mappers undecoded. Command-line flags override manifest values.
func load(r io.Reader) (kong.Resolver, error) {
	doc, err := manifest.Read(r)
	if err != nil {
		return nil, err
	}

	switch root := doc.(type) {
	case nil:
		return document{}, nil
	case yaml.MapSlice:
		return document(root), nil
	default:
		return nil, pkg.ErrParseManifest.Wrapf(
			"manifest: expected mapping, got %T", doc)
	}
}

// document implements [kong.Resolver] for a decoded manifest.
type document yaml.MapSlice

// Validate implements [kong.Resolver]. The whole manifest must be well formed,
// including entries whose flags were overridden on the command line.
func (d document) Validate(*kong.Application) error {
	_, err := manifest.FromDocument(yaml.MapSlice(d))

	return err
}

// Resolve implements [kong.Resolver].
func (d document) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// The manifest cannot name another manifest.
	if _, ok := flag.Target.Interface().(kong.ConfigFlag); ok {
		return nil, nil
	}

	underscore := strings.ReplaceAll(flag.Name, "-", "_")

	for _, item := range d {
		switch fmt.Sprint(item.Key) {
		case flag.Name, underscore:
			return item.Value, nil
		}
	}

	return nil, nil
}
