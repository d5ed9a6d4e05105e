package sqlitelib

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/JakobSachs/jlisp/lisp"
	"github.com/JakobSachs/jlisp/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := Open(filepath.Join(t.TempDir(), "lib.db"))
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })
	return lib
}

func TestStoreAndRead(t *testing.T) {
	lib := openTestLibrary(t)
	require.NoError(t, lib.Store("b.lisp", []byte("(def {b} 2)")))
	require.NoError(t, lib.Store("a.lisp", []byte("(def {a} 1)")))
	require.NoError(t, lib.Store("a.lisp", []byte("(def {a} 3)")))

	src, err := lib.ReadSource("a.lisp")
	require.NoError(t, err)
	assert.Equal(t, "(def {a} 3)", string(src))

	paths, err := lib.Paths()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.lisp", "b.lisp"}, paths)

	require.NoError(t, lib.Remove("b.lisp"))
	require.NoError(t, lib.Remove("never-stored.lisp"))
	_, err = lib.ReadSource("b.lisp")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.db")
	lib, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, lib.Store("x.lisp", []byte("1")))
	require.NoError(t, lib.Close())

	lib, err = Open(path)
	require.NoError(t, err)
	defer lib.Close()
	src, err := lib.ReadSource("x.lisp")
	require.NoError(t, err)
	assert.Equal(t, "1", string(src))
}

func TestRuntimeLoad(t *testing.T) {
	lib := openTestLibrary(t)
	require.NoError(t, lib.Store("util.lisp", []byte("(fun {inc x} {+ x 1})")))
	require.NoError(t, lib.Store("main.lisp", []byte("(load \"util.lisp\")\n(inc 41)")))

	rt := lisp.NewRuntime(
		lisp.WithArena(lisp.NewArena()),
		lisp.WithReader(parser.NewReader()),
		lisp.WithLibrary(lib),
	)
	root := rt.NewRootScope()
	v, err := rt.LoadFile("main.lisp", root)
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())

	_, err = rt.LoadString("test", `(load "missing.lisp")`, root)
	if assert.Error(t, err) {
		assert.Equal(t, lisp.IoError, lisp.ErrorKindOf(err))
		assert.Equal(t, "IO error: failed to load file 'missing.lisp': open missing.lisp: file does not exist at line 1", err.Error())
	}
}
