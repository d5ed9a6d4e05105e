package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JakobSachs/jlisp/lisp"
	"github.com/JakobSachs/jlisp/lisp/sqlitelib"
	"github.com/JakobSachs/jlisp/parser"
	"gopkg.in/yaml.v3"
)

// Config is the contents of the file given with --config.
type Config struct {
	// Prompt replaces the default REPL prompt.
	Prompt string `yaml:"prompt"`
	// History is the REPL history file.  A leading ~ is expanded to the
	// home directory.
	History string `yaml:"history"`
	// Preload files are loaded into the root scope before anything else is
	// evaluated.
	Preload []string `yaml:"preload"`
	// LibraryDir resolves relative paths given to load and read.
	LibraryDir string `yaml:"library_dir"`
	// LibraryDB is a SQLite database of sources used instead of the file
	// system.
	LibraryDB string `yaml:"library_db"`
}

const defaultHistory = "~/.jrepl_hist"

// readConfig reads the YAML config at path.  An empty path returns the
// default configuration.
func readConfig(path string) (*Config, error) {
	config := &Config{History: defaultHistory}
	if path == "" {
		return config, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(b, config)
}

func parseConfig(b []byte, config *Config) (*Config, error) {
	err := yaml.Unmarshal(b, config)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// expandHome replaces a leading ~ in path with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newRuntime builds a runtime from config and loads its preload files into a
// new root scope.  The returned function releases resources held by the
// runtime's library.
func newRuntime(config *Config, stdout io.Writer) (*lisp.Runtime, lisp.Scope, func(), error) {
	var lib lisp.Library = &lisp.OSLibrary{Dir: config.LibraryDir}
	cleanup := func() {}
	if config.LibraryDB != "" {
		db, err := sqlitelib.Open(config.LibraryDB)
		if err != nil {
			return nil, lisp.Scope{}, nil, fmt.Errorf("library database %s: %w", config.LibraryDB, err)
		}
		lib = db
		cleanup = func() { db.Close() }
	}
	rt := lisp.NewRuntime(
		lisp.WithReader(parser.NewReader()),
		lisp.WithLibrary(lib),
		lisp.WithStdout(stdout),
	)
	scope := rt.NewRootScope()
	for _, path := range config.Preload {
		_, err := rt.LoadFile(path, scope)
		if err != nil {
			cleanup()
			return nil, lisp.Scope{}, nil, fmt.Errorf("preload %s: %w", path, err)
		}
	}
	return rt, scope, cleanup, nil
}
