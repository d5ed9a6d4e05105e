package cmd

import (
	"fmt"
	"os"

	"github.com/JakobSachs/jlisp/repl"
	"github.com/spf13/cobra"
)

var (
	configPath string
	libraryDir string
	libraryDB  string
	replPrompt string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jlisp [file]",
	Short: "A small lisp interpreter",
	Long: `Start an interactive session, or execute the lisp source file given as
an argument.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := loadConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if len(args) == 1 {
			os.Exit(runFiles(config, args, false, os.Stdout, os.Stderr))
		}
		rt, scope, cleanup, err := newRuntime(config, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer cleanup()
		err = repl.RunRepl(rt, scope, &repl.Config{
			Prompt:      config.Prompt,
			HistoryFile: expandHome(config.History),
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the --config file and applies flags that override it.
func loadConfig() (*Config, error) {
	config, err := readConfig(configPath)
	if err != nil {
		return nil, err
	}
	if libraryDir != "" {
		config.LibraryDir = libraryDir
	}
	if libraryDB != "" {
		config.LibraryDB = libraryDB
	}
	if replPrompt != "" {
		config.Prompt = replPrompt
	}
	return config, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML config file")
	rootCmd.PersistentFlags().StringVar(&libraryDir, "library-dir", "",
		"Resolve relative paths given to load and read against this directory")
	rootCmd.PersistentFlags().StringVar(&libraryDB, "library-db", "",
		"Read sources from a SQLite library database instead of the file system")
	rootCmd.Flags().StringVar(&replPrompt, "prompt", "",
		"Interactive prompt")
}
