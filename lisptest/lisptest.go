// Package lisptest runs lisp expressions and source files as go tests.
package lisptest

import (
	"bytes"
	"io"
	"testing"

	"github.com/JakobSachs/jlisp/lisp"
	"github.com/JakobSachs/jlisp/parser"
)

// Runner is a test runner.
type Runner struct {
	// Library resolves the paths given to load and read.  When Library is nil
	// the host file system is used.
	Library lisp.Library
}

// NewRuntime returns a runtime with its own scope arena that prints to
// stdout, along with a root scope holding the builtins.
func (r *Runner) NewRuntime(stdout io.Writer) (*lisp.Runtime, lisp.Scope) {
	configs := []lisp.Config{
		lisp.WithArena(lisp.NewArena()),
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(stdout),
	}
	if r.Library != nil {
		configs = append(configs, lisp.WithLibrary(r.Library))
	}
	rt := lisp.NewRuntime(configs...)
	return rt, rt.NewRootScope()
}

// RunTestFile loads the source file at path.  The test fails if loading
// returns an error or if the last expression in the file does not evaluate
// to 1.
func (r *Runner) RunTestFile(t *testing.T, path string) {
	var out bytes.Buffer
	rt, scope := r.NewRuntime(&out)
	v, err := rt.LoadFile(path, scope)
	if err != nil {
		t.Errorf("%s: %v", path, err)
		return
	}
	if !v.Equal(lisp.Number(1)) {
		t.Errorf("%s: expected result 1 (got %v)", path, v)
	}
	if out.Len() > 0 {
		t.Logf("%s output:\n%s", path, out.String())
	}
}

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially in one root scope.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result or the error message
	Output string // text printed while evaluating Expr
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated runtime.
func RunTestSuite(t *testing.T, tests TestSuite) {
	runner := &Runner{}
	for i, test := range tests {
		var out bytes.Buffer
		rt, scope := runner.NewRuntime(&out)
		for j, expr := range test.TestSequence {
			v, _, err := parser.ParseLVal([]byte(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			var result string
			lval, err := rt.Eval(v[0], scope, v[0].Line())
			if err != nil {
				result = err.Error()
			} else {
				result = lval.String()
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if out.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, out.String())
			}
			out.Reset()
		}
	}
}
