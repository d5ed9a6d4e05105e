package lisp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBound(t *testing.T, s Scope, name string, expect *LVal) {
	t.Helper()
	v, ok := s.Lookup(name)
	if assert.True(t, ok, "%s is not bound", name) {
		assert.True(t, expect.Equal(v), "%s = %v (expected %v)", name, v, expect)
	}
}

func TestScopeRoot(t *testing.T) {
	arena := NewArena()
	root := arena.NewRoot()
	assert.True(t, root.IsValid())
	assert.Equal(t, 0, root.Len())
	root.Bind("a", Number(1))
	_, ok := root.Lookup("b")
	assert.False(t, ok)
	assertBound(t, root, "a", Number(1))
	root.Bind("a", Number(2))
	assertBound(t, root, "a", Number(2))
	assert.Equal(t, 1, root.Len())
	_, ok = root.Parent()
	assert.False(t, ok)
	assert.Equal(t, root, root.Root())
	assert.False(t, Scope{}.IsValid())
}

func TestScopeChild(t *testing.T) {
	arena := NewArena()
	root := arena.NewRoot()
	root.Bind("a", Number(1))
	root.Bind("b", Number(2))
	child := root.Child()
	assert.Equal(t, 0, child.Len())
	child.Bind("b", Number(3))
	assertBound(t, child, "a", Number(1))
	assertBound(t, child, "b", Number(3))
	assertBound(t, root, "b", Number(2))

	grandchild := child.Child()
	assertBound(t, grandchild, "b", Number(3))
	parent, ok := grandchild.Parent()
	require.True(t, ok)
	assert.Equal(t, child.ID(), parent.ID())
	assert.Equal(t, root.ID(), grandchild.Root().ID())
	assert.Equal(t, 3, arena.Len())

	// Bindings added to an ancestor after a child is created are visible.
	root.Bind("c", Number(4))
	assertBound(t, grandchild, "c", Number(4))
}

func TestScopeNames(t *testing.T) {
	root := NewArena().NewRoot()
	root.Bind("zeta", Number(1))
	root.Bind("alpha", Number(2))
	root.Bind("mid", Number(3))
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, root.Names())

	b := newBindings(0)
	b.Put("zeta", Number(1))
	b.Put("alpha", Number(2))
	b.Put("zeta", Number(3))
	assert.Equal(t, []string{"zeta", "alpha"}, b.Names())
	v, ok := b.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, int32(3), v.Num)
}

func TestScopeConcurrentRoots(t *testing.T) {
	arena := NewArena()
	var wg sync.WaitGroup
	roots := make([]Scope, 8)
	for i := range roots {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			root := arena.NewRoot()
			for j := 0; j < 50; j++ {
				root.Child().Bind("x", Number(int32(j)))
			}
			root.Bind("i", Number(int32(i)))
			roots[i] = root
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 8*51, arena.Len())
	for i, root := range roots {
		assertBound(t, root, "i", Number(int32(i)))
		_, ok := root.Lookup("x")
		assert.False(t, ok)
	}
}
