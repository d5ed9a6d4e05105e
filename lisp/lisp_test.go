package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	root := NewArena().NewRoot()
	tests := []struct {
		v      *LVal
		expect string
	}{
		{Number(-12), "-12"},
		{Float(2.5), "2.5"},
		{Float(0.1), "0.1"},
		{Float(3), "3"},
		{Char('x'), "'x'"},
		{String("hi"), `"hi"`},
		{Symbol("foo"), "foo"},
		{Comment(" note"), "()"},
		{Builtin("+"), "<builtin +>"},
		{Nil(), "()"},
		{QExpr(nil), "{}"},
		{QExpr([]*LVal{Number(1), SExpr([]*LVal{Symbol("+"), Number(1)})}), "{1 (+ 1)}"},
		{Lambda(root, QExpr([]*LVal{Symbol("x")}), QExpr([]*LVal{Symbol("*"), Symbol("x"), Symbol("x")})), `(\ {x} {* x x})`},
		{&LVal{}, "<invalid>"},
	}
	for i, test := range tests {
		assert.Equal(t, test.expect, test.v.String(), "test %d", i)
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "Symbol: x", Symbol("x").TypeName())
	assert.Equal(t, "Qexpr", QExpr(nil).TypeName())
	assert.Equal(t, "Sexpr", Nil().TypeName())
	assert.Equal(t, "Float", Float(1).TypeName())
	assert.Equal(t, "INVALID", LType(99).String())
}

func TestEqual(t *testing.T) {
	arena := NewArena()
	sq := func() *LVal {
		return Lambda(arena.NewRoot(), QExpr([]*LVal{Symbol("x")}), QExpr([]*LVal{Symbol("*"), Symbol("x"), Symbol("x")}))
	}
	list := func() *LVal {
		return QExpr([]*LVal{Number(1), String("a"), QExpr([]*LVal{Char('c')})})
	}
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Float(1)))
	assert.True(t, Float(1.5).Equal(Float(1.5)))
	assert.True(t, list().Equal(list()))
	assert.False(t, list().Equal(QExpr(list().Cells[:2])))
	assert.False(t, QExpr(nil).Equal(Nil()))
	assert.True(t, Comment("a").Equal(Comment("b")))
	assert.True(t, sq().Equal(sq()))
	assert.False(t, sq().Equal(Builtin("*")))
	assert.True(t, Builtin("+").Equal(Builtin("+")))
	assert.False(t, Symbol("a").Equal(String("a")))
	assert.False(t, Number(1).Equal(nil))
}

func TestPredicates(t *testing.T) {
	assert.True(t, Nil().IsNil())
	assert.False(t, QExpr(nil).IsNil())
	assert.True(t, QExpr(nil).IsList())
	assert.False(t, String("").IsList())
	assert.True(t, Float(1).IsNumeric())
	assert.False(t, Char('1').IsNumeric())
	assert.Equal(t, 2, QExpr([]*LVal{Number(1), Number(2)}).Len())
	assert.Equal(t, 0, Number(1).Line())
	assert.Equal(t, Number(1), Bool(true))
	assert.Equal(t, Number(0), Bool(false))
}
