package lisp

import (
	"strconv"
	"strings"

	"github.com/JakobSachs/jlisp/parser/token"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNumber
	LFloat
	LChar
	LString
	LSymbol
	LComment
	LBuiltin
	LLambda
	LSExpr
	LQExpr
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LNumber:  "Number",
	LFloat:   "Float",
	LChar:    "Char",
	LString:  "String",
	LSymbol:  "Symbol",
	LComment: "Comment",
	LBuiltin: "Builtin",
	LLambda:  "Lambda",
	LSExpr:   "Sexpr",
	LQExpr:   "Qexpr",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LVal is a lisp value.  LVals are used for both code and data.  Once
// constructed an LVal is never modified, so values may be shared freely
// between scopes and lists.
type LVal struct {
	Type LType

	Num   int32
	Float float32
	Char  rune

	// Str holds the text of a String, the name of a Symbol or Builtin and the
	// content of a Comment.
	Str string

	// Cells holds the elements of an SExpr or a QExpr.
	Cells []*LVal

	// Variables needed for lambda values
	Env     Scope
	Formals *LVal
	Body    *LVal

	// Source is the location of the expression in source text, when known.
	Source *token.Location
}

// Number returns an LVal representing the integer x.
func Number(x int32) *LVal {
	return &LVal{Type: LNumber, Num: x}
}

// Bool returns Number(1) when b is true and Number(0) otherwise.
func Bool(b bool) *LVal {
	if b {
		return Number(1)
	}
	return Number(0)
}

// Float returns an LVal representing the floating point number x.
func Float(x float32) *LVal {
	return &LVal{Type: LFloat, Float: x}
}

// Char returns an LVal representing the unicode scalar c.
func Char(c rune) *LVal {
	return &LVal{Type: LChar, Char: c}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{Type: LString, Str: s}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{Type: LSymbol, Str: s}
}

// Comment returns an inert LVal holding comment text.
func Comment(text string) *LVal {
	return &LVal{Type: LComment, Str: text}
}

// Builtin returns a reference to the builtin function with the given name.
func Builtin(name string) *LVal {
	return &LVal{Type: LBuiltin, Str: name}
}

// Lambda returns a user defined function that captures env.  Formals and body
// are expected to be list values.
func Lambda(env Scope, formals *LVal, body *LVal) *LVal {
	return &LVal{
		Type:    LLambda,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// SExpr returns an LVal representing an S-expression, a call-form.
func SExpr(cells []*LVal) *LVal {
	return &LVal{Type: LSExpr, Cells: cells}
}

// QExpr returns an LVal representing a Q-expression, a quoted data list.
func QExpr(cells []*LVal) *LVal {
	return &LVal{Type: LQExpr, Cells: cells}
}

// Nil returns the empty call-form, the value of expressions that produce
// nothing.
func Nil() *LVal {
	return SExpr(nil)
}

// IsNil returns true if v is the empty call-form.
func (v *LVal) IsNil() bool {
	return v.Type == LSExpr && len(v.Cells) == 0
}

// IsList returns true if v is an SExpr or a QExpr.
func (v *LVal) IsList() bool {
	return v.Type == LSExpr || v.Type == LQExpr
}

// IsNumeric returns true if v is a Number or a Float.
func (v *LVal) IsNumeric() bool {
	return v.Type == LNumber || v.Type == LFloat
}

// Len returns the number of cells in a list value.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// Line returns the source line of v or zero when v carries no location.
func (v *LVal) Line() int {
	if v.Source == nil {
		return 0
	}
	return v.Source.Line
}

// TypeName describes the type of v in error messages.
func (v *LVal) TypeName() string {
	if v.Type == LSymbol {
		return "Symbol: " + v.Str
	}
	return v.Type.String()
}

func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		return strconv.FormatInt(int64(v.Num), 10)
	case LFloat:
		return formatFloat(v.Float)
	case LChar:
		return "'" + string(v.Char) + "'"
	case LString:
		return `"` + v.Str + `"`
	case LSymbol:
		return v.Str
	case LComment:
		return "()"
	case LBuiltin:
		return "<builtin " + v.Str + ">"
	case LLambda:
		return `(\ ` + exprString(v.Formals.Cells, "{", "}") + " " + exprString(v.Body.Cells, "{", "}") + ")"
	case LSExpr:
		return exprString(v.Cells, "(", ")")
	case LQExpr:
		return exprString(v.Cells, "{", "}")
	default:
		return "<invalid>"
	}
}

func formatFloat(x float32) string {
	return strconv.FormatFloat(float64(x), 'f', -1, 32)
}

func exprString(cells []*LVal, left string, right string) string {
	if len(cells) == 0 {
		return left + right
	}
	var buf strings.Builder
	buf.WriteString(left)
	for i, c := range cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
