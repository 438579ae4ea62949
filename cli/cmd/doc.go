// Package cmd implements the webconf subcommands.
//
// Every command receives the shared [Globals] resolved from the command line
// and the manifest:
//
//	webconf --config webconf.yaml set ApiUrl=https://example.com
//	webconf --config webconf.yaml preset staging
//	webconf --config webconf.yaml show --format json
//
// Commands write report lines to the kong application's stdout. Failures are
// returned as [*Error] values that carry structured attributes for logging.
package cmd
