package lisp

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind classifies errors produced during evaluation.
type ErrorKind uint

// Possible ErrorKind values
const (
	ErrUnknown ErrorKind = iota
	UndefinedSymbol
	DivisionByZero
	IncompatibleType
	InconsistentTypes
	MissingOperator
	WrongAmountOfArgs
	IoError
	ParseError
)

var errorKindStrings = []string{
	ErrUnknown:        "unknown",
	UndefinedSymbol:   "undefined-symbol",
	DivisionByZero:    "division-by-zero",
	IncompatibleType:  "incompatible-type",
	InconsistentTypes: "inconsistent-types",
	MissingOperator:   "missing-operator",
	WrongAmountOfArgs: "wrong-amount-of-args",
	IoError:           "io-error",
	ParseError:        "parse-error",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorKindStrings) {
		return errorKindStrings[ErrUnknown]
	}
	return errorKindStrings[k]
}

// Error is the error type returned by evaluation.  Which of the context
// fields are set depends on Kind.
type Error struct {
	Kind ErrorKind
	Line int

	// Name is the undefined symbol, the operation or the function involved.
	Name     string
	Expected string
	Received string
	Message  string

	// Err is the underlying cause of an IoError or ParseError, if any.
	Err error
}

var _ error = (*Error)(nil)

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case UndefinedSymbol:
		return fmt.Sprintf("undefined symbol '%s' at line %d", e.Name, e.Line)
	case DivisionByZero:
		return fmt.Sprintf("tried to divide by zero at line %d", e.Line)
	case IncompatibleType:
		return fmt.Sprintf("type error in '%s' expected %s, got %s at line %d", e.Name, e.Expected, e.Received, e.Line)
	case InconsistentTypes:
		return fmt.Sprintf("mixed types in '%s' at line %d", e.Name, e.Line)
	case MissingOperator:
		return fmt.Sprintf("missing operator at line %d", e.Line)
	case WrongAmountOfArgs:
		return fmt.Sprintf("wrong amount of args to func '%s', expected %s but got %s at line %d", e.Name, e.Expected, e.Received, e.Line)
	case IoError:
		return fmt.Sprintf("IO error: %s at line %d", e.Message, e.Line)
	case ParseError:
		return fmt.Sprintf("parse error: %s at line %d", e.Message, e.Line)
	default:
		return fmt.Sprintf("%s at line %d", e.Message, e.Line)
	}
}

// Unwrap returns the underlying cause of e.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorKindOf returns the kind of the first *Error in err's chain, or
// ErrUnknown if there is none.
func ErrorKindOf(err error) ErrorKind {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind
	}
	return ErrUnknown
}

func errUndefinedSymbol(name string, line int) error {
	return &Error{Kind: UndefinedSymbol, Name: name, Line: line}
}

func errDivisionByZero(line int) error {
	return &Error{Kind: DivisionByZero, Line: line}
}

func errIncompatibleType(op, expected, received string, line int) error {
	return &Error{Kind: IncompatibleType, Name: op, Expected: expected, Received: received, Line: line}
}

func errInconsistentTypes(op string, line int) error {
	return &Error{Kind: InconsistentTypes, Name: op, Line: line}
}

func errMissingOperator(line int) error {
	return &Error{Kind: MissingOperator, Line: line}
}

func errWrongAmountOfArgs(fn string, expected, received int, line int) error {
	return &Error{
		Kind:     WrongAmountOfArgs,
		Name:     fn,
		Expected: strconv.Itoa(expected),
		Received: strconv.Itoa(received),
		Line:     line,
	}
}

func errIO(err error, line int, format string, v ...interface{}) error {
	return &Error{Kind: IoError, Message: fmt.Sprintf(format, v...), Err: err, Line: line}
}

func errParse(err error, line int, format string, v ...interface{}) error {
	return &Error{Kind: ParseError, Message: fmt.Sprintf(format, v...), Err: err, Line: line}
}
