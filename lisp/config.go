package lisp

import "io"

// Config is a function that configures a Runtime.
type Config func(rt *Runtime)

// WithReader returns a Config that makes the runtime use r to parse source
// streams.  There is no default Reader for a runtime, and without one the
// load builtin fails.
func WithReader(r Reader) Config {
	return func(rt *Runtime) {
		rt.Reader = r
	}
}

// WithLibrary returns a Config that makes the runtime resolve the paths given
// to load and read using lib instead of the default, the host file system.
func WithLibrary(lib Library) Config {
	return func(rt *Runtime) {
		rt.Library = lib
	}
}

// WithStdout returns a Config that makes the print builtin write to w instead
// of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stdout = w
	}
}

// WithStderr returns a Config that makes the runtime write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stderr = w
	}
}

// WithArena returns a Config that makes the runtime allocate scopes in a
// instead of DefaultArena.
func WithArena(a *Arena) Config {
	return func(rt *Runtime) {
		rt.Arena = a
	}
}
