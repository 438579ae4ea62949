package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/webconf/log"
	"github.com/ardnew/webconf/manifest"
	"github.com/ardnew/webconf/update"
)

// Globals are the flags shared by every command. The manifest loaded with
// --config supplies Files and Presets unless they are given explicitly.
type Globals struct {
	Config  kong.ConfigFlag `help:"Manifest describing target files and presets." required:"" short:"c" type:"path"`
	Files   Files           `help:"Target files as a JSON or YAML list."        group:"manifest" required:""`
	Presets Presets         `help:"Named value sets as a JSON or YAML mapping." group:"manifest" default:"{}"`
	DryRun  bool            `help:"Report the files that would change without writing them." short:"n"`
}

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer for command output: the kong application's
// stdout when one is available, otherwise [os.Stdout].
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// apply runs the updater over every manifest file with the given values.
func apply(ctx context.Context, g *Globals, values manifest.Values) error {
	log.DebugContext(ctx, "apply values",
		slog.Int("files", len(g.Files)),
		slog.Any("keys", values.Keys()),
		slog.Bool("dry-run", g.DryRun),
	)

	u := update.Updater{Out: stdout(ctx), DryRun: g.DryRun}

	if err := u.Run(ctx, g.Files, values); err != nil {
		return ErrUpdate.Wrap(err)
	}

	return nil
}

// Suggest returns the candidates that fuzzy-match name, best match first.
func Suggest(name string, candidates []string) []string {
	matches := fuzzy.Find(name, candidates)
	out := make([]string, 0, len(matches))

	for _, m := range matches {
		out = append(out, m.Str)
	}

	return out
}

// heading renders s in bold on w when w is a terminal.
func heading(w io.Writer, s string) string {
	return lipgloss.NewRenderer(w).NewStyle().Bold(true).Render(s)
}
