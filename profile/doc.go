// Package profile provides optional runtime profiling for webconf.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag every [Config.Start] returns a no-op and [Modes] is empty.
//
// # Modes
//
//   - allocs:    memory allocations
//   - block:     blocking on synchronization primitives
//   - clock:     wall-clock time
//   - cpu:       CPU time
//   - goroutine: goroutine stacks
//   - heap:      live heap
//   - mem:       memory (sampled)
//   - mutex:     mutex contention
//   - thread:    thread creation
//   - trace:     execution trace
//
// # Usage
//
//	p := profile.New(
//	    profile.WithMode("cpu"),
//	    profile.WithPath("/tmp/profiles"),
//	).Start()
//	defer p.Stop()
//
// From the command line:
//
//	webconf --pprof-mode cpu --config webconf.yaml preset staging
//	go tool pprof ~/.cache/webconf/pprof/cpu.pprof
//
// The default output directory is the pprof directory under the user cache
// directory. The build also registers the [net/http/pprof] handlers, which
// are served only if the program starts an HTTP server.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
