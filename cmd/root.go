// Package cmd wires the notesweep subcommands. All scan results print to
// stdout; diagnostics go through the logger on stderr.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notesweep/notesweep/internal/ignore"
	"github.com/notesweep/notesweep/internal/logging"
	"github.com/notesweep/notesweep/internal/scanner"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "notesweep",
	Short: "Word and tag statistics for markdown vaults",
	Long: `notesweep scans a directory tree of markdown files and reports word
counts and frontmatter-tag statistics. Paths are filtered through the
nearest .sweepignore file at or above the scan root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(viper.GetBool("verbose"), viper.GetString("log_dir"))
	},
}

// Execute runs the root command and exits non-zero on error. Ignore-engine
// errors get a friendlier rendering than the generic wrap chain.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var cerr *ignore.CompileError
		var lerr *ignore.LoadError
		switch {
		case errors.As(err, &cerr):
			fmt.Fprintf(os.Stderr, "Error: bad ignore pattern %q: %s\n", cerr.Pattern, cerr.Reason)
		case errors.As(err, &lerr):
			fmt.Fprintf(os.Stderr, "Error: cannot read ignore file %s: %v\n", lerr.Path, lerr.Err)
		default:
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default .notesweep.yaml in cwd or home)")
	pf.StringP("dir", "d", ".", "vault directory to scan")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.StringSliceP("exclude", "e", []string{".git"}, "directory names to skip")
	pf.Bool("no-history", false, "do not record this run in the history database")

	viper.BindPFlag("dir", pf.Lookup("dir"))             //nolint:errcheck
	viper.BindPFlag("verbose", pf.Lookup("verbose"))     //nolint:errcheck
	viper.BindPFlag("exclude", pf.Lookup("exclude"))     //nolint:errcheck
	viper.BindPFlag("no-history", pf.Lookup("no-history")) //nolint:errcheck
}

// newScanner builds a Scanner over the real filesystem from the effective
// configuration.
func newScanner() (*scanner.Scanner, error) {
	return scanner.New(afero.NewOsFs(), viper.GetString("dir"), viper.GetStringSlice("exclude"))
}
