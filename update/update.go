// Package update applies a set of logical key assignments to the files listed
// in a manifest.
package update

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/atomicfile"

	"github.com/ardnew/webconf/log"
	"github.com/ardnew/webconf/manifest"
	"github.com/ardnew/webconf/pkg"
	"github.com/ardnew/webconf/xmlpatch"
)

// Updater rewrites target files in place.
type Updater struct {
	// Out receives one report line per processed file.
	Out io.Writer
	// DryRun computes every substitution but writes nothing.
	DryRun bool
}

// Run patches each file entry in order.
//
// The first file that cannot be expanded, read or written aborts the run.
// Files processed before the failure keep their changes.
func (u Updater) Run(
	ctx context.Context,
	files []manifest.File,
	values manifest.Values,
) error {
	for _, file := range files {
		paths, err := Expand(file.Path)
		if err != nil {
			return err
		}

		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}

			err := u.File(ctx, path, file.Config, values)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// File patches a single file with the given key configuration.
func (u Updater) File(
	ctx context.Context,
	path string,
	config manifest.KeyConfigMap,
	values manifest.Values,
) error {
	info, err := os.Stat(path)
	if err != nil {
		return pkg.ErrReadFile.Wrap(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkg.ErrReadFile.Wrap(err)
	}

	content := Apply(ctx, string(data), config, values)

	if !u.DryRun {
		err = atomicfile.WriteData(path, []byte(content), info.Mode().Perm())
		if err != nil {
			return pkg.ErrWriteFile.Wrap(err)
		}
	}

	log.DebugContext(ctx, "file processed",
		slog.String("path", path),
		slog.Bool("changed", content != string(data)),
		slog.Bool("dry_run", u.DryRun),
	)

	u.report(path)

	return nil
}

// Apply folds values over content in order. Keys absent from config and keys
// with an unknown type leave the content as it is.
func Apply(
	ctx context.Context,
	content string,
	config manifest.KeyConfigMap,
	values manifest.Values,
) string {
	for key, value := range values.All() {
		kc, ok := config[key]
		if !ok {
			continue
		}

		before := content

		switch kc.Type {
		case manifest.AppSetting:
			content = xmlpatch.UpdateAppSetting(content, kc.Key, value)

		case manifest.ConnectionString:
			content = xmlpatch.UpdateConnectionString(content, kc.Key, value)

		default:
			log.DebugContext(ctx, "unknown key type",
				slog.String("key", key),
				slog.String("type", string(kc.Type)),
			)

			continue
		}

		log.DebugContext(ctx, "key applied",
			slog.String("key", key),
			slog.String("attribute", kc.Key),
			slog.String("type", string(kc.Type)),
			slog.Bool("changed", content != before),
		)
	}

	return content
}

// Expand returns the files named by path. An existing file, or a path without
// glob metacharacters, is returned as is. Otherwise path is matched with
// doublestar syntax ("**" crosses directories) and must match at least one
// file.
func Expand(path string) ([]string, error) {
	if !strings.ContainsAny(path, "*?[{") {
		return []string{path}, nil
	}

	if _, err := os.Stat(path); err == nil {
		return []string{path}, nil
	}

	matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
	if err != nil {
		return nil, pkg.ErrInvalidPattern.Wrap(err).Wrapf("pattern %q", path)
	}

	if len(matches) == 0 {
		return nil, pkg.ErrNoMatch.Wrapf("pattern %q", path)
	}

	slices.Sort(matches)

	return matches, nil
}

var reportColor = lipgloss.Color("2")

func (u Updater) report(path string) {
	if u.Out == nil {
		return
	}

	verb := "updated"
	if u.DryRun {
		verb = "would update"
	}

	style := lipgloss.NewRenderer(u.Out).NewStyle().Foreground(reportColor)

	fmt.Fprintln(u.Out, style.Render(verb)+" "+path)
}
