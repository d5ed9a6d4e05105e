package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JakobSachs/jlisp/lisp"
	"github.com/JakobSachs/jlisp/parser"
	"github.com/chzyer/readline"
)

// DefaultPrompt is the prompt shown when Config.Prompt is empty.
const DefaultPrompt = ">> "

// Config controls an interactive session.
type Config struct {
	Prompt string
	// HistoryFile persists entered lines between sessions.  History is not
	// saved when HistoryFile is empty.
	HistoryFile string
}

// RunRepl runs a simple repl on the terminal.  Each complete expression is
// evaluated in scope and its value, or the error it caused, is printed.
func RunRepl(rt *lisp.Runtime, scope lisp.Scope, config *Config) error {
	prompt := config.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     config.HistoryFile,
		AutoComplete:    &completer{scope: scope},
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	rt.Stdout = rl.Stdout()
	s := newSession(rt, scope, rl.Stdout())
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt && s.pending() {
			s.reset()
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			if err != io.EOF && err != readline.ErrInterrupt {
				return err
			}
			fmt.Fprintln(rl.Stdout(), "Goodbye...")
			return nil
		}
		if s.input(line) {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
}

// session accumulates input lines until they form complete expressions.
type session struct {
	rt    *lisp.Runtime
	scope lisp.Scope
	out   io.Writer
	buf   []byte
}

func newSession(rt *lisp.Runtime, scope lisp.Scope, out io.Writer) *session {
	return &session{rt: rt, scope: scope, out: out}
}

func (s *session) pending() bool {
	return len(s.buf) != 0
}

func (s *session) reset() {
	s.buf = nil
}

// input adds line to the session.  It returns true when the buffered text is
// incomplete and more lines are needed.  Otherwise every expression in the
// buffer is evaluated in order and the buffer is cleared.  Error lines are
// relative to the start of the buffered input.
func (s *session) input(line string) bool {
	if len(s.buf) != 0 {
		s.buf = append(s.buf, '\n')
	}
	s.buf = append(s.buf, line...)
	if len(bytes.TrimSpace(s.buf)) == 0 {
		s.buf = nil
		return false
	}
	_, err := s.rt.LoadEach("", bytes.NewReader(s.buf), s.scope, func(v *lisp.LVal) {
		fmt.Fprintln(s.out, v)
	})
	if parser.IsIncomplete(err) {
		return true
	}
	s.buf = nil
	if err != nil {
		s.errln(err)
	}
	return false
}

// errln reports err.  Syntax errors are reported without the load context
// that wraps them.
func (s *session) errln(err error) {
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		err = serr
	}
	fmt.Fprintf(s.out, "ERROR: %v\n", err)
}

// completer completes the symbol under the cursor with names bound in scope
// or any of its ancestors.
type completer struct {
	scope lisp.Scope
}

var _ readline.AutoCompleter = (*completer)(nil)

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && isSymbolRune(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}
	var candidates [][]rune
	seen := make(map[string]bool)
	for s, ok := c.scope, true; ok; s, ok = s.Parent() {
		for _, name := range s.Names() {
			if seen[name] || !strings.HasPrefix(name, prefix) || name == prefix {
				continue
			}
			seen[name] = true
			candidates = append(candidates, []rune(name[len(prefix):]))
		}
	}
	return candidates, len([]rune(prefix))
}

func isSymbolRune(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	default:
		return strings.ContainsRune(`_+-*/\=<>!&|^%?`, c)
	}
}
