// Package cmd implements golisp's cobra command tree: root, repl, run,
// lex, parse, and version, grounded on the teacher's cmd/dwscript/cmd
// package.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "golisp",
	Short: "golisp interpreter",
	Long: `golisp is a small homoiconic, bracket-oriented Lisp.

Running with no arguments and no file drops into an interactive REPL;
given a file, golisp loads and evaluates it.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRepl(cmd, args)
		}
		return runFile(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic output")
}
