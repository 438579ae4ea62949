package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/webconf/manifest"
)

// Preset applies a value set stored in the manifest.
type Preset struct {
	Name string `arg:"" help:"Name of the preset to apply."`
}

// Run implements the preset command. An unknown name lists the available
// presets and fails before any file is read.
func (p *Preset) Run(ctx context.Context, g *Globals) error {
	presets := manifest.Presets(g.Presets)

	values, ok := presets.Lookup(p.Name)
	if !ok {
		names := presets.Names()
		w := stdout(ctx)

		fmt.Fprintln(w, "Unknown preset: "+p.Name)
		fmt.Fprintln(w, heading(w, "Available presets:"))
		fmt.Fprintln(w, strings.Join(names, " "))

		return ErrUnknownPreset.With(
			slog.String("preset", p.Name),
			slog.Any("suggest", Suggest(p.Name, names)),
		)
	}

	return apply(ctx, g, values)
}
