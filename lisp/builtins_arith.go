package lisp

import (
	"math"
	"strconv"
)

func builtinArith(op string) LBuiltinFunc {
	return func(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
		return arith(op, args, line)
	}
}

// arith implements + - * /.  The type of the operands selects integer, float
// or codepoint arithmetic.
func arith(op string, args []*LVal, line int) (*LVal, error) {
	if len(args) == 0 {
		return nil, errWrongAmountOfArgs(op, 1, 0, line)
	}
	var nchar, nfloat int
	for _, v := range args {
		switch v.Type {
		case LChar:
			nchar++
		case LFloat:
			nfloat++
		case LNumber:
		default:
			return nil, errIncompatibleType(op, "Number,Float,Char", v.TypeName(), line)
		}
	}
	switch {
	case nchar == len(args):
		return charArith(op, args, line)
	case nchar > 0:
		return nil, errInconsistentTypes(op, line)
	case nfloat > 0:
		return floatArith(op, args, line)
	default:
		return intArith(op, args, line)
	}
}

func intArith(op string, args []*LVal, line int) (*LVal, error) {
	if op == "-" && len(args) == 1 {
		return Number(-args[0].Num), nil
	}
	if op == "/" {
		// Integer division is only used when every step is exact and the
		// quotient fits in an int32.
		out := args[0].Num
		for _, v := range args[1:] {
			if v.Num == 0 {
				return nil, errDivisionByZero(line)
			}
		}
		for _, v := range args[1:] {
			if out%v.Num != 0 || (out == math.MinInt32 && v.Num == -1) {
				return floatArith(op, args, line)
			}
			out /= v.Num
		}
		return Number(out), nil
	}
	out := args[0].Num
	for _, v := range args[1:] {
		out = intOp(op, out, v.Num)
	}
	return Number(out), nil
}

func intOp(op string, a, b int32) int32 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	default:
		return a / b
	}
}

func floatArith(op string, args []*LVal, line int) (*LVal, error) {
	if op == "-" && len(args) == 1 {
		return Float(-toFloat(args[0])), nil
	}
	out := toFloat(args[0])
	for _, v := range args[1:] {
		x := toFloat(v)
		switch op {
		case "+":
			out += x
		case "-":
			out -= x
		case "*":
			out *= x
		case "/":
			if x == 0 {
				return nil, errDivisionByZero(line)
			}
			out /= x
		}
	}
	return Float(out), nil
}

// charArith operates on codepoints.  Sums and differences that stay within
// 0-255 are characters again, every other result is a Number.
func charArith(op string, args []*LVal, line int) (*LVal, error) {
	if op == "-" && len(args) == 1 {
		return Number(-int32(args[0].Char)), nil
	}
	out := int32(args[0].Char)
	for _, v := range args[1:] {
		c := int32(v.Char)
		if op == "/" && c == 0 {
			return nil, errDivisionByZero(line)
		}
		out = intOp(op, out, c)
	}
	if (op == "+" || op == "-") && out >= 0 && out <= 255 {
		return Char(rune(out)), nil
	}
	return Number(out), nil
}

func toFloat(v *LVal) float32 {
	if v.Type == LFloat {
		return v.Float
	}
	return float32(v.Num)
}

func expectTwoOperands(op string, args []*LVal, line int) error {
	if len(args) != 2 {
		return errIncompatibleType(op, "exactly 2 arguments", strconv.Itoa(len(args)), line)
	}
	return nil
}

func builtinMod(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	const op = "%"
	err := expectTwoOperands(op, args, line)
	if err != nil {
		return nil, err
	}
	for _, v := range args {
		err = expectType(op, v, LNumber, line)
		if err != nil {
			return nil, err
		}
	}
	if args[1].Num == 0 {
		return nil, errDivisionByZero(line)
	}
	return Number(args[0].Num % args[1].Num), nil
}

func builtinPow(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
	const op = "**"
	err := expectTwoOperands(op, args, line)
	if err != nil {
		return nil, err
	}
	for _, v := range args {
		if !v.IsNumeric() {
			return nil, errIncompatibleType(op, "Number or Float", v.TypeName(), line)
		}
	}
	base, exp := args[0], args[1]
	if exp.Type == LFloat {
		return Float(float32(math.Pow(float64(toFloat(base)), float64(exp.Float)))), nil
	}
	if exp.Num < 0 {
		return nil, errParse(nil, line, "power exponent must be non-negative")
	}
	result := powi(toFloat(base), exp.Num)
	if base.Type == LFloat {
		return Float(result), nil
	}
	rounded := math.Round(float64(result))
	if math.Abs(float64(result)-rounded) < 1e-4 && rounded >= math.MinInt32 && rounded <= math.MaxInt32 {
		return Number(int32(rounded)), nil
	}
	return Float(result), nil
}

// powi raises x to a non-negative integer power by repeated squaring.
func powi(x float32, n int32) float32 {
	result := float32(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

func builtinBitwise(op string) LBuiltinFunc {
	return func(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
		err := expectBitwiseOperands(op, args, line)
		if err != nil {
			return nil, err
		}
		out := args[0].Num
		for _, v := range args[1:] {
			switch op {
			case "&":
				out &= v.Num
			case "|":
				out |= v.Num
			case "^":
				out ^= v.Num
			}
		}
		return Number(out), nil
	}
}

func builtinShift(op string) LBuiltinFunc {
	return func(rt *Runtime, scope Scope, args []*LVal, line int) (*LVal, error) {
		err := expectBitwiseOperands(op, args, line)
		if err != nil {
			return nil, err
		}
		err = expectTwoOperands(op, args, line)
		if err != nil {
			return nil, err
		}
		x, n := args[0].Num, args[1].Num
		if n < 0 || n > 31 {
			return nil, errParse(nil, line, "shift amount must be between 0 and 31")
		}
		if op == "<<" {
			return Number(x << uint(n)), nil
		}
		return Number(x >> uint(n)), nil
	}
}

func expectBitwiseOperands(op string, args []*LVal, line int) error {
	if len(args) == 0 {
		return errIncompatibleType(op, "at least one argument", "none", line)
	}
	for _, v := range args {
		err := expectType(op, v, LNumber, line)
		if err != nil {
			return err
		}
	}
	return nil
}
