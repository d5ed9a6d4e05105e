package lisp

// Equal reports whether v and other are structurally equal.  Lists are
// compared elementwise, any two comments are equal and lambdas are compared
// by their formals and body only.  Values of different types are never equal.
func (v *LVal) Equal(other *LVal) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil || v.Type != other.Type {
		return false
	}
	switch v.Type {
	case LNumber:
		return v.Num == other.Num
	case LFloat:
		return v.Float == other.Float
	case LChar:
		return v.Char == other.Char
	case LString, LSymbol, LBuiltin:
		return v.Str == other.Str
	case LComment:
		return true
	case LLambda:
		return v.Formals.Equal(other.Formals) && v.Body.Equal(other.Body)
	case LSExpr, LQExpr:
		return cellsEqual(v.Cells, other.Cells)
	default:
		return false
	}
}

func cellsEqual(a, b []*LVal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
