// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// A [Logger] is immutable once created. Its time layout, level, output
// format and caller reporting are chosen with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//	logger.Info("file processed", slog.String("path", "Web.config"))
//
// Attributes added with [Logger.With] are included in every subsequent
// message.
//
// # Default Logger
//
// Package-level functions such as [Info] and [DebugContext] write through a
// default logger that initially writes JSON to [os.Stderr]. [Config]
// derives a new default logger from the current one, so options can be
// applied incrementally while command-line flags are parsed.
//
// # Output Formats
//
// [FormatJSON] (default) and [FormatText] are supported. With [WithPretty]
// the text format is colorized whenever the output is a terminal. Pretty
// printing has no effect on JSON output.
package log
