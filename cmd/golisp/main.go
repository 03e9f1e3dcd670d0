// Command golisp is the command-line entrypoint for the golisp
// interpreter: a thin main() delegating to the cobra command tree in
// cmd/golisp/cmd, the same shape as the teacher's cmd/dwscript/main.go.
package main

import (
	"fmt"
	"os"

	"github.com/golisp-lang/golisp/cmd/golisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
