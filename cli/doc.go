// Package cli contains the command line interface for webconf.
//
// # Usage
//
//	webconf --config <manifest> [flags] <command> [args]
//
// The manifest given with --config is a JSON or YAML document. Its top-level
// keys resolve flags of the same name, so a manifest normally supplies
// --files and --presets:
//
//	files:
//	  - file: src/Web/Web.config
//	    config:
//	      apiUrl: {key: ApiUrl, type: appSetting}
//	      db:     {key: Main, type: connectionString}
//	presets:
//	  local:
//	    apiUrl: http://localhost:5000
//	    db: Server=.;Database=app;Trusted_Connection=True
//
// Flags given on the command line override the manifest.
//
// # Commands
//
//   - set key=value...: apply the given values
//   - preset <name>: apply the values of a named preset
//   - show [--format json|yaml]: print the resolved manifest
//
// # Logging Options
//
//   - --log-level: minimum log level (debug, info, warn, error)
//   - --log-format: log output format (json, text)
//   - --log-time-layout: timestamp layout, a named layout or "none"
//   - --log-caller: include caller information
//   - --log-pretty: colorize text output
//
// Logs are written to stderr. Report lines are written to stdout.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: profiling mode (allocs, block, clock, cpu, goroutine, heap,
//     mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory (default: the pprof directory
//     under the user cache directory)
package cli
