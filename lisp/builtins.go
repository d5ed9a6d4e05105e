package lisp

import (
	"fmt"
	"sync"
)

// LBuiltinFunc is the implementation of a builtin function.  Args have already
// been evaluated in scope, the scope of the caller.
type LBuiltinFunc func(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error)

type langBuiltin struct {
	name string
	fun  LBuiltinFunc
}

var langBuiltins = []*langBuiltin{
	{"+", builtinArith("+")},
	{"-", builtinArith("-")},
	{"*", builtinArith("*")},
	{"/", builtinArith("/")},
	{"%", builtinMod},
	{"**", builtinPow},
	{"&", builtinBitwise("&")},
	{"|", builtinBitwise("|")},
	{"^", builtinBitwise("^")},
	{"<<", builtinShift("<<")},
	{">>", builtinShift(">>")},
	{"==", builtinEqual("==")},
	{"!=", builtinEqual("!=")},
	{">", builtinOrd(">")},
	{"<", builtinOrd("<")},
	{">=", builtinOrd(">=")},
	{"<=", builtinOrd("<=")},
	{"and", builtinAnd},
	{"or", builtinOr},
	{"not", builtinNot},
	{"head", builtinHead},
	{"last", builtinLast},
	{"tail", builtinTail},
	{"list", builtinList},
	{"join", builtinJoin},
	{"range", builtinRange},
	{"eval", builtinEval},
	{"if", builtinIf},
	{"print", builtinPrint},
	{"load", builtinLoad},
	{"read", builtinRead},
	{"chars", builtinChars},
	{"int", builtinInt},
	{"sort", builtinSort},
	{"len", builtinLen},
	{"str-sub", builtinStrSub},
	{"split", builtinSplit},
	{"sqrt", builtinSqrt},
	{"abs", builtinAbs},
	{"min", builtinMinMax("min")},
	{"max", builtinMinMax("max")},
	{"floor", builtinUnaryFloat("floor")},
	{"ceil", builtinUnaryFloat("ceil")},
	{"round", builtinUnaryFloat("round")},
	{"sin", builtinUnaryFloat("sin")},
	{"cos", builtinUnaryFloat("cos")},
	{"tan", builtinUnaryFloat("tan")},
	{"log", builtinLog},
	{"exp", builtinUnaryFloat("exp")},
	{"truncate", builtinTruncate},
	{"=", builtinDefine("=")},
	{"def", builtinDefine("def")},
	{`\`, builtinLambda},
	{"fun", builtinFun},
}

var (
	builtinMu    sync.RWMutex
	userBuiltins []*langBuiltin
	builtinIndex map[string]*langBuiltin
)

func init() {
	builtinIndex = indexBuiltins(langBuiltins)
}

func indexBuiltins(funs []*langBuiltin) map[string]*langBuiltin {
	index := make(map[string]*langBuiltin, len(funs))
	for _, fn := range funs {
		index[fn.name] = fn
	}
	return index
}

// RegisterDefaultBuiltin adds fn to the builtins bound by NewRootScope.
// Registering a name that is already a builtin panics.
func RegisterDefaultBuiltin(name string, fn LBuiltinFunc) {
	builtinMu.Lock()
	defer builtinMu.Unlock()
	if _, ok := builtinIndex[name]; ok {
		panic(fmt.Sprintf("builtin already defined: %s", name))
	}
	b := &langBuiltin{name, fn}
	userBuiltins = append(userBuiltins, b)
	builtinIndex[name] = b
}

// BuiltinNames returns the name of every builtin in definition order.
func BuiltinNames() []string {
	builtinMu.RLock()
	defer builtinMu.RUnlock()
	names := make([]string, 0, len(langBuiltins)+len(userBuiltins))
	for _, fn := range langBuiltins {
		names = append(names, fn.name)
	}
	for _, fn := range userBuiltins {
		names = append(names, fn.name)
	}
	return names
}

// Dispatch invokes the builtin called name.
func (rt *Runtime) Dispatch(name string, scope Scope, args []*LVal, line int) (*LVal, error) {
	builtinMu.RLock()
	fn := builtinIndex[name]
	builtinMu.RUnlock()
	if fn == nil {
		return nil, errMissingOperator(line)
	}
	return fn.fun(rt, scope, args, line)
}

func expectArity(fn string, args []*LVal, n int, line int) error {
	if len(args) != n {
		return errWrongAmountOfArgs(fn, n, len(args), line)
	}
	return nil
}

func expectNonEmpty(fn string, cells []*LVal, line int) error {
	if len(cells) == 0 {
		return errWrongAmountOfArgs(fn, 1, 0, line)
	}
	return nil
}

func expectType(fn string, v *LVal, t LType, line int) error {
	if v.Type != t {
		return errIncompatibleType(fn, t.String(), v.TypeName(), line)
	}
	return nil
}
