package cmd

import (
	"context"

	"github.com/ardnew/webconf/manifest"
)

// Set applies key=value pairs given on the command line.
type Set struct {
	Values []string `arg:"" help:"Assignments of the form key=value." name:"key=value"`
}

// Run implements the set command.
func (s *Set) Run(ctx context.Context, g *Globals) error {
	return apply(ctx, g, manifest.ParseAssignments(s.Values...))
}
