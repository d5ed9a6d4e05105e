package lisp

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// listArg returns the cells of the single non-empty data list in args.
func listArg(fn string, args []*LVal, line int) ([]*LVal, error) {
	err := expectArity(fn, args, 1, line)
	if err != nil {
		return nil, err
	}
	err = expectType(fn, args[0], LQExpr, line)
	if err != nil {
		return nil, err
	}
	cells := args[0].Cells
	err = expectNonEmpty(fn, cells, line)
	if err != nil {
		return nil, err
	}
	return cells, nil
}

func builtinHead(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	cells, err := listArg("head", args, line)
	if err != nil {
		return nil, err
	}
	return QExpr([]*LVal{cells[0]}), nil
}

func builtinLast(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	cells, err := listArg("last", args, line)
	if err != nil {
		return nil, err
	}
	return cells[len(cells)-1], nil
}

func builtinTail(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	cells, err := listArg("tail", args, line)
	if err != nil {
		return nil, err
	}
	return QExpr(copyCells(cells[1:])), nil
}

func builtinList(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	return QExpr(copyCells(args)), nil
}

// builtinJoin concatenates either strings or data lists.
func builtinJoin(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	if len(args) == 0 {
		return QExpr(nil), nil
	}
	var nstr, nlist int
	for _, v := range args {
		switch v.Type {
		case LString:
			nstr++
		case LQExpr:
			nlist++
		}
	}
	switch {
	case nstr == len(args):
		var buf strings.Builder
		for _, v := range args {
			buf.WriteString(v.Str)
		}
		return String(buf.String()), nil
	case nlist == len(args):
		var cells []*LVal
		for _, v := range args {
			cells = append(cells, v.Cells...)
		}
		return QExpr(cells), nil
	default:
		return nil, errInconsistentTypes("join", line)
	}
}

func builtinLen(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	err := expectArity("len", args, 1, line)
	if err != nil {
		return nil, err
	}
	switch v := args[0]; v.Type {
	case LString:
		return Number(int32(utf8.RuneCountInString(v.Str))), nil
	case LQExpr, LSExpr:
		return Number(int32(len(v.Cells))), nil
	default:
		return nil, errIncompatibleType("len", "String, Qexpr or Sexpr", v.TypeName(), line)
	}
}

// builtinSplit splits a string on a character or a data list on elements
// equal to a delimiter value.  Adjacent delimiters produce empty segments.
func builtinSplit(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	err := expectArity("split", args, 2, line)
	if err != nil {
		return nil, err
	}
	input, delim := args[0], args[1]
	switch input.Type {
	case LString:
		err = expectType("split", delim, LChar, line)
		if err != nil {
			return nil, err
		}
		parts := strings.Split(input.Str, string(delim.Char))
		cells := make([]*LVal, len(parts))
		for i := range parts {
			cells[i] = String(parts[i])
		}
		return QExpr(cells), nil
	case LQExpr:
		var cells []*LVal
		var chunk []*LVal
		for _, v := range input.Cells {
			if v.Equal(delim) {
				cells = append(cells, QExpr(chunk))
				chunk = nil
				continue
			}
			chunk = append(chunk, v)
		}
		cells = append(cells, QExpr(chunk))
		return QExpr(cells), nil
	default:
		return nil, errIncompatibleType("split", "String or Qexpr", input.TypeName(), line)
	}
}

func stringArg(fn string, args []*LVal, line int) (string, error) {
	err := expectArity(fn, args, 1, line)
	if err != nil {
		return "", err
	}
	err = expectType(fn, args[0], LString, line)
	if err != nil {
		return "", err
	}
	return args[0].Str, nil
}

func builtinChars(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	s, err := stringArg("chars", args, line)
	if err != nil {
		return nil, err
	}
	var cells []*LVal
	for _, c := range s {
		cells = append(cells, Char(c))
	}
	return QExpr(cells), nil
}

func builtinInt(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	s, err := stringArg("int", args, line)
	if err != nil {
		return nil, err
	}
	x, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, errParse(err, line, "couldn't parse int from string %q", s)
	}
	return Number(int32(x)), nil
}

// builtinStrSub returns the characters of a string in the half-open range
// [start, end).
func builtinStrSub(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	const fn = "str-sub"
	err := expectArity(fn, args, 3, line)
	if err != nil {
		return nil, err
	}
	err = expectType(fn, args[0], LString, line)
	if err != nil {
		return nil, err
	}
	for _, v := range args[1:] {
		err = expectType(fn, v, LNumber, line)
		if err != nil {
			return nil, err
		}
	}
	runes := []rune(args[0].Str)
	start, end := int(args[1].Num), int(args[2].Num)
	switch {
	case start < 0 || end < 0:
		return nil, errParse(nil, line, "substring indices must be non-negative")
	case start > end:
		return nil, errParse(nil, line, "substring start index must be <= end index")
	case end > len(runes):
		return nil, errParse(nil, line, "substring end index out of bounds")
	}
	return String(string(runes[start:end])), nil
}

func builtinSort(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	err := expectArity("sort", args, 1, line)
	if err != nil {
		return nil, err
	}
	err = expectType("sort", args[0], LQExpr, line)
	if err != nil {
		return nil, err
	}
	cells := copyCells(args[0].Cells)
	for _, v := range cells {
		err = expectType("sort", v, LNumber, line)
		if err != nil {
			return nil, err
		}
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].Num < cells[j].Num
	})
	return QExpr(cells), nil
}

// builtinRange returns the list {0 1 ... n-1}.
func builtinRange(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	err := expectArity("range", args, 1, line)
	if err != nil {
		return nil, err
	}
	err = expectType("range", args[0], LNumber, line)
	if err != nil {
		return nil, err
	}
	n := args[0].Num
	if n <= 0 {
		return QExpr(nil), nil
	}
	cells := make([]*LVal, n)
	for i := range cells {
		cells[i] = Number(int32(i))
	}
	return QExpr(cells), nil
}
