package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JakobSachs/jlisp/lisp/sqlitelib"
	"github.com/spf13/cobra"
)

var libImportBase string

var libCmd = &cobra.Command{
	Use:   "lib",
	Short: "Manage SQLite source libraries",
	Long: `Manage SQLite databases of lisp sources.  A database is used in place of
the file system by passing --library-db.`,
}

var libImportCmd = &cobra.Command{
	Use:   "import DB FILE...",
	Short: "Store source files in a library database",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := sqlitelib.Open(args[0])
		if err != nil {
			return err
		}
		defer lib.Close()
		return importFiles(lib, libImportBase, args[1:], cmd.OutOrStdout())
	},
}

var libListCmd = &cobra.Command{
	Use:   "list DB",
	Short: "List the paths stored in a library database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := sqlitelib.Open(args[0])
		if err != nil {
			return err
		}
		defer lib.Close()
		paths, err := lib.Paths()
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

// importFiles stores each file under its path relative to base.  An empty
// base stores files under the paths as given.
func importFiles(lib *sqlitelib.Library, base string, files []string, out io.Writer) error {
	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		path := file
		if base != "" {
			path, err = filepath.Rel(base, file)
			if err != nil {
				return err
			}
		}
		path = filepath.ToSlash(path)
		err = lib.Store(path, source)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		fmt.Fprintf(out, "stored %s\n", path)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(libCmd)
	libCmd.AddCommand(libImportCmd)
	libCmd.AddCommand(libListCmd)

	libImportCmd.Flags().StringVar(&libImportBase, "base", "",
		"Store files relative to this directory")
}
