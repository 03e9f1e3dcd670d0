package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golisp-lang/golisp/internal/bootstrap"
	"github.com/golisp-lang/golisp/internal/host"
	"github.com/golisp-lang/golisp/internal/repl"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run <file> [args...]",
	Short: "Load and evaluate a golisp file",
	Long: `Evaluate a golisp source file.

Examples:
  # Run a script file, binding *ARGV* to any trailing arguments
  golisp run script.lisp foo bar

  # Evaluate an inline expression instead of a file
  golisp run -e '(+ 1 2)'`,
	Args: cobra.MinimumNArgs(0),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
}

func runFile(_ *cobra.Command, args []string) error {
	h := host.NewDefaultStdHost()
	env, err := bootstrap.NewRootEnv(h)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	var logw *os.File
	if verbose {
		logw = os.Stderr
	}

	if evalExpr != "" {
		return repl.RunEval(env, h, evalExpr, args)
	}

	if len(args) == 0 {
		return fmt.Errorf("either provide a file path or use -e for inline source")
	}
	return repl.RunFile(env, h, args[0], args[1:], logw)
}
