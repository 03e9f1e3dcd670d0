package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golisp-lang/golisp/internal/bootstrap"
	"github.com/golisp-lang/golisp/internal/config"
	"github.com/golisp-lang/golisp/internal/host"
	"github.com/golisp-lang/golisp/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive golisp session",
	Long:  `Start the interactive "user> " read-eval-print loop.`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	h := host.NewDefaultStdHost()
	env, err := bootstrap.NewRootEnv(h)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	repl.RunInteractive(env, h, cfg.Prompt, cfg.Echo)
	return nil
}
