package repl

import (
	"bytes"
	"sort"
	"testing"

	"github.com/JakobSachs/jlisp/lisp"
	"github.com/JakobSachs/jlisp/parser"
	"github.com/stretchr/testify/assert"
)

func newTestSession() (*session, *bytes.Buffer) {
	var out bytes.Buffer
	rt := lisp.NewRuntime(
		lisp.WithArena(lisp.NewArena()),
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(&out),
	)
	return newSession(rt, rt.NewRootScope(), &out), &out
}

func TestSessionInput(t *testing.T) {
	s, out := newTestSession()
	tests := []struct {
		line   string
		more   bool
		output string
	}{
		{"(+ 1 2)", false, "3\n"},
		{"", false, ""},
		{"(def {x} 10) x", false, "()\n10\n"},
		{`(print "hi")`, false, "\"hi\"\n()\n"},
		{"(fun {sq n}", true, ""},
		{"  {* n n})", false, "()\n"},
		{"(sq 4)", false, "16\n"},
		{"nope", false, "ERROR: undefined symbol 'nope' at line 1\n"},
		{"(+ 1 nope) (print 1)", false, "ERROR: undefined symbol 'nope' at line 1\n"},
		{"(list 1", true, ""},
		{"", true, ""},
		{"  nope)", false, "ERROR: undefined symbol 'nope' at line 1\n"},
		{"1 )", false, "ERROR: <input>:1:3: unexpected ')'\n"},
		{"(+ 1 {2 3)", false, "ERROR: <input>:1:10: unexpected ')'\n"},
		{"(foo ]", false, "ERROR: <input>:1:1: invalid syntax near \"(foo\"\n"},
		{"(head {1", true, ""},
		{"  2})", false, "{1}\n"},
	}
	for i, test := range tests {
		more := s.input(test.line)
		assert.Equal(t, test.more, more, "line %d: %q", i, test.line)
		assert.Equal(t, test.output, out.String(), "line %d: %q", i, test.line)
		out.Reset()
	}
}

func TestSessionReset(t *testing.T) {
	s, out := newTestSession()
	assert.True(t, s.input("(+ 1"))
	assert.True(t, s.pending())
	s.reset()
	assert.False(t, s.pending())
	assert.False(t, s.input("(+ 2 2)"))
	assert.Equal(t, "4\n", out.String())
}

func TestCompleter(t *testing.T) {
	arena := lisp.NewArena()
	root := arena.NewRoot()
	root.Bind("sort", lisp.Builtin("sort"))
	root.Bind("sqrt", lisp.Builtin("sqrt"))
	root.Bind("str-sub", lisp.Builtin("str-sub"))
	local := root.Child()
	local.Bind("square", lisp.Number(1))
	local.Bind("sort", lisp.Number(2))
	c := &completer{scope: local}

	line := []rune("(s")
	candidates, n := c.Do(line, len(line))
	assert.Equal(t, 1, n)
	var names []string
	for _, cand := range candidates {
		names = append(names, "s"+string(cand))
	}
	sort.Strings(names)
	assert.Equal(t, []string{"sort", "sqrt", "square", "str-sub"}, names)

	line = []rune("(map str-")
	candidates, n = c.Do(line, len(line))
	assert.Equal(t, 4, n)
	assert.Equal(t, [][]rune{[]rune("sub")}, candidates)

	line = []rune("(+ 1 ")
	candidates, n = c.Do(line, len(line))
	assert.Equal(t, 0, n)
	assert.Empty(t, candidates)
}
