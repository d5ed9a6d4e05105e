package lisp

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Library resolves the paths given to the load and read builtins.
type Library interface {
	ReadSource(path string) ([]byte, error)
}

// OSLibrary reads sources from the host file system.  Relative paths are
// resolved against Dir when it is not empty.
type OSLibrary struct {
	Dir string
}

var _ Library = (*OSLibrary)(nil)

// ReadSource implements Library.
func (lib *OSLibrary) ReadSource(path string) ([]byte, error) {
	if lib.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(lib.Dir, path)
	}
	return os.ReadFile(path)
}

// FSLibrary reads sources from an fs.FS, such as an embed.FS or an
// fstest.MapFS.
type FSLibrary struct {
	FS fs.FS
}

var _ Library = (*FSLibrary)(nil)

// ReadSource implements Library.
func (lib *FSLibrary) ReadSource(path string) ([]byte, error) {
	return fs.ReadFile(lib.FS, path)
}
