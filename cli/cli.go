package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/webconf/cli/cmd"
	"github.com/ardnew/webconf/pkg"
)

// CLI is the top-level command-line interface for webconf.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	cmd.Globals `embed:""`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Set    cmd.Set    `cmd:"" help:"Apply key=value pairs to every manifest file."`
	Preset cmd.Preset `cmd:"" help:"Apply a preset from the manifest to every manifest file."`
	Show   cmd.Show   `cmd:"" help:"Print the resolved manifest."`
}

// Run executes the webconf CLI with the given context and arguments.
// The exit function is called with the appropriate exit code when kong
// terminates early, as for --help and --version.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, os.Stdout, os.Stderr, args...)
}

func run(
	ctx context.Context,
	exit func(code int),
	stdout, stderr io.Writer,
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{"version": pkg.Version}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logging flags are applied before parsing so that they take effect
	// regardless of their position on the command line.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{
				cli.Log.group(),
				cli.Pprof.group(),
				{Key: "manifest", Title: "Manifest overrides"},
			},
		),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(load),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return usage(parser, err)
	}

	ctx = cmd.WithContext(ctx, ktx)

	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	ktx.BindTo(ctx, (*context.Context)(nil))

	return ktx.Run(&cli.Globals)
}

// usage reports a parse error. An unrecognized command name is reported
// with suggestions; any other error is followed by the usage summary.
func usage(parser *kong.Kong, err error) error {
	var perr *kong.ParseError
	if !errors.As(err, &perr) || perr.Context == nil {
		return err
	}

	name, ok := unknownCommand(perr)
	if !ok {
		_ = perr.Context.PrintUsage(true)

		return err
	}

	fmt.Fprintln(parser.Stdout, "Unknown command: "+name)

	var names []string
	for _, node := range parser.Model.Children {
		names = append(names, node.Name)
	}

	return cmd.ErrUnknownCommand.With(
		slog.String("command", name),
		slog.Any("suggest", cmd.Suggest(name, names)),
	)
}

// unknownCommand returns the offending argument when the parse failed on a
// positional argument before any command was selected.
func unknownCommand(perr *kong.ParseError) (string, bool) {
	const prefix = "unexpected argument "

	if perr.Context.Selected() != nil {
		return "", false
	}

	msg := perr.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}

	name, _, _ := strings.Cut(strings.TrimPrefix(msg, prefix), ",")

	return name, name != ""
}
