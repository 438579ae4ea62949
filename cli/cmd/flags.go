package cmd

import (
	"github.com/alecthomas/kong"

	"github.com/ardnew/webconf/manifest"
)

// Files is the manifest file list as a kong flag value.
//
// A command-line value is decoded as a JSON or YAML document. A value
// resolved from the manifest arrives already decoded.
type Files []manifest.File

// Decode implements [kong.MapperValue].
func (f *Files) Decode(ctx *kong.DecodeContext) error {
	node, err := decodeToken(ctx)
	if err != nil {
		return err
	}

	files, err := manifest.DecodeFiles(node)
	if err != nil {
		return err
	}

	*f = files

	return nil
}

// Presets is the manifest preset mapping as a kong flag value.
type Presets manifest.Presets

// Decode implements [kong.MapperValue].
func (p *Presets) Decode(ctx *kong.DecodeContext) error {
	node, err := decodeToken(ctx)
	if err != nil {
		return err
	}

	presets, err := manifest.DecodePresets(node)
	if err != nil {
		return err
	}

	*p = Presets(presets)

	return nil
}

func decodeToken(ctx *kong.DecodeContext) (any, error) {
	token := ctx.Scan.Pop()

	switch v := token.Value.(type) {
	case string:
		return manifest.Decode([]byte(v))
	case []byte:
		return manifest.Decode(v)
	default:
		return v, nil
	}
}
