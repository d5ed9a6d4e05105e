// Package parser provides a lisp parser.
//
//	expr    := <comment> | <term> | '(' <expr>* ')' | '{' <expr>* '}'
//	term    := <float> | <int> | <char> | <string> | <symbol>
//	comment := ';' /[^\n]*/
//	float   := /-?[0-9]+/ '.' /[0-9]+/
//	int     := /-?[0-9]+/
//	char    := '\'' <charcontent> '\''
//	string  := '"' <strcontent>* '"'
//	symbol  := /[a-zA-Z_+\-*\/\\=<>!&|^%?][a-zA-Z0-9_+\-*\/\\=<>!&|^%?]*/
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JakobSachs/jlisp/lisp"
	"github.com/JakobSachs/jlisp/parser/token"
	parsec "github.com/prataprc/goparsec"
)

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
	nodeQExpr
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeSExpr:   "SEXPR",
	nodeQExpr:   "QEXPR",
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

// SyntaxError is returned when source text does not match the grammar.
type SyntaxError struct {
	Source  *token.Location
	Message string
	// Incomplete is true when the text ended inside an unclosed list or
	// string, so appending more text may make it valid.
	Incomplete bool
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s", err.Source, err.Message)
}

// IsIncomplete returns true if err is a SyntaxError caused by source text
// that ended early.
func IsIncomplete(err error) bool {
	var serr *SyntaxError
	return errors.As(err, &serr) && serr.Incomplete
}

type reader struct{}

// NewReader returns a lisp.Reader that parses source text with the package
// grammar.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(name, text)
}

// ParseLVal parses LVal values from text and returns them.  The number of
// bytes read is returned along with any error that was encountered in parsing.
func ParseLVal(text []byte) ([]*lisp.LVal, int, error) {
	p := newParseState("", text)
	return p.parseAll()
}

// Parse parses every expression in text.  Each returned top-level expression
// carries its location in the source text.  The name is used to report
// locations.
func Parse(name string, text []byte) ([]*lisp.LVal, error) {
	p := newParseState(name, text)
	v, _, err := p.parseAll()
	return v, err
}

// parseState holds the source being parsed.  Parsec callbacks record the
// first error they encounter in err.
type parseState struct {
	name string
	text []byte
	err  error
}

func newParseState(name string, text []byte) *parseState {
	return &parseState{name: name, text: text}
}

func (p *parseState) parseAll() ([]*lisp.LVal, int, error) {
	var v []*lisp.LVal
	s := parsec.NewScanner(p.text)
	parser := p.newParsecParser()
	for {
		start := skipSpace(p.text, s.GetCursor())
		if start >= len(p.text) {
			return v, len(p.text), nil
		}
		var root parsec.ParsecNode
		root, s = parser(s)
		if p.err != nil {
			return v, start, p.err
		}
		lval := getLVal(root)
		if lval == nil {
			return v, start, p.syntaxError(start)
		}
		lval.Source = p.location(start)
		v = append(v, lval)
	}
}

func (p *parseState) newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openB := parsec.Atom("{", "OPENB")
	closeB := parsec.Atom("}", "CLOSEB")
	comment := parsec.Token(`;[^\n]*`, "COMMENT")
	float := parsec.Token(`-?[0-9]+\.[0-9]+`, "FLOAT")
	integer := parsec.Token(`-?[0-9]+`, "INT")
	char := parsec.Token(`'(?:[^'\\]|\\.)+'`, "CHAR")
	str := parsec.Token(`"(?:[^"\\]|\\.)*"`, "STRING")
	symbol := parsec.Token(`[a-zA-Z_+\-*/\\=<>!&|^%?][a-zA-Z0-9_+\-*/\\=<>!&|^%?]*`, "SYMBOL")
	term := parsec.OrdChoice(p.astNode(nodeTerm), // terminal token
		comment,
		float,
		integer,
		char,
		str,
		symbol, // symbol comes last because it swallows anything
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(p.astNode(nodeSExpr), openP, exprList, closeP)
	qexpr := parsec.And(p.astNode(nodeQExpr), openB, exprList, closeB)
	expr = parsec.OrdChoice(nil, term, sexpr, qexpr)
	return expr
}

func (p *parseState) astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return p.newAST(t, nodes)
	}
}

func (p *parseState) newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeTerm:
		term, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			panic(fmt.Sprintf("unexpected term node: %T", nodes[0]))
		}
		return p.termLVal(term)
	case nodeSExpr, nodeQExpr:
		// We don't want terminal parsec nodes for the brackets.  Comments
		// inside a list are dropped so they never become arguments.
		var cells []*lisp.LVal
		for _, c := range nodes {
			if v, ok := c.(*lisp.LVal); ok && v.Type != lisp.LComment {
				cells = append(cells, v)
			}
		}
		if typ == nodeSExpr {
			return lisp.SExpr(cells)
		}
		return lisp.QExpr(cells)
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

func (p *parseState) termLVal(term *parsec.Terminal) *lisp.LVal {
	switch term.Name {
	case "COMMENT":
		return lisp.Comment(strings.TrimPrefix(term.Value, ";"))
	case "FLOAT":
		x, err := strconv.ParseFloat(term.Value, 32)
		if err != nil {
			p.fail(term.Position, "bad float: %s", term.Value)
		}
		return lisp.Float(float32(x))
	case "INT":
		x, err := strconv.ParseInt(term.Value, 10, 32)
		if err != nil {
			p.fail(term.Position, "integer out of range: %s", term.Value)
		}
		return lisp.Number(int32(x))
	case "CHAR":
		s, err := unescape(term.Value[1 : len(term.Value)-1])
		if err != nil || len([]rune(s)) != 1 {
			p.fail(term.Position, "bad character literal: %s", term.Value)
			return lisp.Char(0)
		}
		return lisp.Char([]rune(s)[0])
	case "STRING":
		s, err := unescape(term.Value[1 : len(term.Value)-1])
		if err != nil {
			p.fail(term.Position, "bad string literal: %v", err)
		}
		return lisp.String(s)
	default:
		return lisp.Symbol(term.Value)
	}
}

func (p *parseState) fail(pos int, format string, v ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{
		Source:  p.location(skipSpace(p.text, pos)),
		Message: fmt.Sprintf(format, v...),
	}
}

// syntaxError describes why no expression could be parsed at offset start.
func (p *parseState) syntaxError(start int) error {
	err := &SyntaxError{Source: p.location(start)}
	mismatch, incomplete := scanLists(p.text[start:])
	switch {
	case mismatch >= 0:
		err.Source = p.location(start + mismatch)
		err.Message = fmt.Sprintf("unexpected '%c'", p.text[start+mismatch])
	case incomplete:
		err.Message = "unexpected end of input"
		err.Incomplete = true
	default:
		rest := p.text[start:]
		if i := bytes.IndexAny(rest, " \t\r\n"); i >= 0 {
			rest = rest[:i]
		}
		err.Message = fmt.Sprintf("invalid syntax near %q", rest)
	}
	return err
}

func (p *parseState) location(pos int) *token.Location {
	before := p.text[:pos]
	line := bytes.Count(before, []byte("\n")) + 1
	col := pos - bytes.LastIndexByte(before, '\n')
	return &token.Location{
		File: p.name,
		Pos:  pos,
		Line: line,
		Col:  col,
	}
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func getLVal(root parsec.ParsecNode) *lisp.LVal {
	if root == nil {
		return nil
	}
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		return nil
	}
	lval, _ := nodes[0].(*lisp.LVal)
	return lval
}

func skipSpace(text []byte, pos int) int {
	for pos < len(text) {
		switch text[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

// scanLists walks text following the nesting of lists.  It returns the
// offset of the first closing bracket that does not close the innermost open
// list, or -1.  The text is incomplete when it ends inside a list, a string
// or a character literal and contains no byte the grammar never accepts.
func scanLists(text []byte) (mismatch int, incomplete bool) {
	var open []byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == ';':
			for i < len(text) && text[i] != '\n' {
				i++
			}
		case c == '"' || c == '\'':
			end := closingQuote(text, i)
			if end < 0 {
				return -1, true
			}
			i = end
		case c == '(' || c == '{':
			open = append(open, c)
		case c == ')' || c == '}':
			if len(open) == 0 || open[len(open)-1] != openingBracket(c) {
				return i, false
			}
			open = open[:len(open)-1]
		case isSpace(c) || isTokenByte(c):
		default:
			return -1, false
		}
	}
	return -1, len(open) > 0
}

func openingBracket(c byte) byte {
	if c == ')' {
		return '('
	}
	return '{'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isTokenByte returns true if c may appear in a number or a symbol.
func isTokenByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("_+-*/\\=<>!&|^%?.", c) >= 0
}

// closingQuote returns the index of the unescaped quote matching the one at
// text[open], or -1.
func closingQuote(text []byte, open int) int {
	q := text[open]
	for i := open + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case q:
			return i
		}
	}
	return -1
}

// unescape interprets backslash escapes in the body of a string or character
// literal.
func unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			buf.WriteByte(s[i])
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("trailing backslash")
		}
		switch s[i] {
		case 'n':
			buf.WriteByte('\n')
		case 't':
			buf.WriteByte('\t')
		case 'r':
			buf.WriteByte('\r')
		case '0':
			buf.WriteByte(0)
		case '\\', '"', '\'':
			buf.WriteByte(s[i])
		default:
			return "", fmt.Errorf("unknown escape sequence \\%c", s[i])
		}
	}
	return buf.String(), nil
}
