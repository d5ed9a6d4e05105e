package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JakobSachs/jlisp/lisp"
	"github.com/JakobSachs/jlisp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
	runDumpScope  bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := loadConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if runExpression {
			os.Exit(runExpressions(config, args, runPrint, os.Stdout, os.Stderr))
		}
		os.Exit(runFiles(config, args, runPrint, os.Stdout, os.Stderr))
	},
}

// runFiles evaluates each source file in paths in one root scope and returns
// the process exit status.  Files named on the command line are read from
// disk, the configured library only resolves load and read.
func runFiles(config *Config, paths []string, printValues bool, stdout, stderr io.Writer) int {
	rt, scope, cleanup, err := newRuntime(config, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer cleanup()
	rt.Stderr = stderr
	defer dumpScope(rt, scope)
	for _, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if !evalSource(rt, scope, path, text, printValues, stdout, stderr) {
			return 1
		}
	}
	return 0
}

// runExpressions evaluates each argument as lisp source text in one root
// scope and returns the process exit status.
func runExpressions(config *Config, exprs []string, printValues bool, stdout, stderr io.Writer) int {
	rt, scope, cleanup, err := newRuntime(config, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer cleanup()
	rt.Stderr = stderr
	defer dumpScope(rt, scope)
	for i, text := range exprs {
		name := fmt.Sprintf("<arg %d>", i+1)
		if !evalSource(rt, scope, name, []byte(text), printValues, stdout, stderr) {
			return 1
		}
	}
	return 0
}

func dumpScope(rt *lisp.Runtime, scope lisp.Scope) {
	if runDumpScope {
		rt.DebugScope(scope)
	}
}

// evalSource evaluates the expressions in text one after another.  When
// printValues is true each value is written to stdout.  Evaluation stops at the
// first error, which is written to stderr, and evalSource returns false.
func evalSource(rt *lisp.Runtime, scope lisp.Scope, name string, text []byte, printValues bool, stdout, stderr io.Writer) bool {
	_, err := rt.LoadEach(name, bytes.NewReader(text), scope, func(v *lisp.LVal) {
		if printValues {
			fmt.Fprintln(stdout, v)
		}
	})
	if err == nil {
		return true
	}
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		fmt.Fprintln(stderr, serr)
	} else {
		fmt.Fprintf(stderr, "error during eval: %v\n", err)
	}
	return false
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
	runCmd.Flags().BoolVar(&runDumpScope, "dump-scope", false,
		"Write the root scope bindings to stderr when evaluation ends")
}
