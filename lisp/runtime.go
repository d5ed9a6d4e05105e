package lisp

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Runtime holds the collaborators shared by every scope created from it.  A
// Runtime evaluates one expression at a time; concurrent calls to Eval on the
// same scopes are not supported.
type Runtime struct {
	Arena   *Arena
	Reader  Reader
	Library Library
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewRuntime returns a Runtime configured by configs.  Unconfigured fields use
// DefaultArena, an OSLibrary, os.Stdout and os.Stderr.
func NewRuntime(configs ...Config) *Runtime {
	rt := &Runtime{
		Arena:   DefaultArena,
		Library: &OSLibrary{},
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
	for _, fn := range configs {
		fn(rt)
	}
	return rt
}

// NewRootScope creates a root scope with every builtin bound to its name.
func (rt *Runtime) NewRootScope() Scope {
	root := rt.Arena.NewRoot()
	for _, name := range BuiltinNames() {
		root.Bind(name, Builtin(name))
	}
	return root
}

// Load parses the contents of r and evaluates each expression in scope.  The
// value of the last expression is returned.  Evaluation stops at the first
// error.
func (rt *Runtime) Load(name string, r io.Reader, scope Scope) (*LVal, error) {
	return rt.load(name, r, scope, 0, nil)
}

// LoadEach is like Load but calls fn with the value of each expression as
// soon as it has been evaluated.
func (rt *Runtime) LoadEach(name string, r io.Reader, scope Scope, fn func(v *LVal)) (*LVal, error) {
	return rt.load(name, r, scope, 0, fn)
}

// LoadString is like Load but reads source from a string.
func (rt *Runtime) LoadString(name, source string, scope Scope) (*LVal, error) {
	return rt.load(name, strings.NewReader(source), scope, 0, nil)
}

// LoadFile reads path through the runtime's Library and evaluates its
// contents in scope.
func (rt *Runtime) LoadFile(path string, scope Scope) (*LVal, error) {
	return rt.loadFile(path, scope, 0)
}

func (rt *Runtime) loadFile(path string, scope Scope, line int) (*LVal, error) {
	source, err := rt.readSource(path, line)
	if err != nil {
		return nil, err
	}
	return rt.load(path, bytes.NewReader(source), scope, line, nil)
}

func (rt *Runtime) readSource(path string, line int) ([]byte, error) {
	if rt.Library == nil {
		return nil, errIO(nil, line, "failed to load file '%s': no library configured", path)
	}
	source, err := rt.Library.ReadSource(path)
	if err != nil {
		return nil, errIO(err, line, "failed to load file '%s': %v", path, err)
	}
	return source, nil
}

// load evaluates expressions with their own source line when the reader
// recorded one, falling back to line.
func (rt *Runtime) load(name string, r io.Reader, scope Scope, line int, fn func(*LVal)) (*LVal, error) {
	if rt.Reader == nil {
		return nil, errIO(nil, line, "failed to load file '%s': no reader configured", name)
	}
	exprs, err := rt.Reader.Read(name, r)
	if err != nil {
		return nil, errParse(err, line, "failed to parse file '%s': %v", name, err)
	}
	last := Nil()
	for _, expr := range exprs {
		exprLine := expr.Line()
		if exprLine == 0 {
			exprLine = line
		}
		last, err = rt.Eval(expr, scope, exprLine)
		if err != nil {
			return nil, err
		}
		if fn != nil {
			fn(last)
		}
	}
	return last, nil
}

// DebugScope writes the local bindings of scope and each of its ancestors to
// the runtime's Stderr.
func (rt *Runtime) DebugScope(scope Scope) {
	depth := 0
	for s, ok := scope, true; ok; s, ok = s.Parent() {
		fmt.Fprintf(rt.Stderr, "scope %d (depth %d, %d bindings)\n", s.ID(), depth, s.Len())
		for _, name := range s.Names() {
			v, _ := s.Lookup(name)
			fmt.Fprintf(rt.Stderr, "  %s = %v\n", name, v)
		}
		depth++
	}
}
