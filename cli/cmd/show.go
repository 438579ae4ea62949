package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/webconf/manifest"
)

// Show prints the resolved manifest.
type Show struct {
	Format string `default:"yaml" enum:"json,yaml" help:"Output format (${enum})." short:"f"`
}

// Run implements the show command.
func (s *Show) Run(ctx context.Context, g *Globals) error {
	m := manifest.Manifest{
		Files:   g.Files,
		Presets: manifest.Presets(g.Presets),
	}

	var (
		data []byte
		err  error
	)

	switch s.Format {
	case "json":
		data, err = m.MarshalJSON()
	default:
		data, err = m.MarshalYAML()
	}

	if err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", s.Format))
	}

	w := stdout(ctx)
	if _, err := w.Write(data); err != nil {
		return err
	}

	if n := len(data); n > 0 && data[n-1] != '\n' {
		_, err = w.Write([]byte{'\n'})
	}

	return err
}
