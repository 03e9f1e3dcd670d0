package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/lexer"
	"github.com/golisp-lang/golisp/internal/reader"
	"github.com/golisp-lang/golisp/internal/runtime"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a golisp file and print its value tree",
	Long: `Read every top-level form in a golisp source file and print each
resulting Value, either in canonical print form or, with --dump-ast, as
an indented structural dump.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the structural form of each parsed value")
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	src := string(content)

	r := reader.New(lexer.New(src).Tokens())
	for {
		v, err := r.Read()
		if err != nil {
			if pe, ok := err.(*errors.ParseError); ok && pe.Msg == "empty" {
				return nil // clean end of input
			}
			fmt.Fprint(os.Stderr, errors.Format(err, src, filename))
			return fmt.Errorf("parsing failed")
		}
		if _, isComment := v.(runtime.Comment); isComment {
			continue
		}
		if parseDumpAST {
			dumpValue(v, 0)
		} else {
			fmt.Println(runtime.Print(v))
		}
	}
}

func dumpValue(v runtime.Value, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	switch v := v.(type) {
	case *runtime.List:
		fmt.Printf("%sList (%d elements)\n", pad, len(v.Items))
		for _, it := range v.Items {
			dumpValue(it, indent+1)
		}
	case *runtime.Vector:
		fmt.Printf("%sVector (%d elements)\n", pad, len(v.Items))
		for _, it := range v.Items {
			dumpValue(it, indent+1)
		}
	case *runtime.Dictionary:
		fmt.Printf("%sDictionary (%d entries)\n", pad, v.Len())
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			fmt.Printf("%s  %s:\n", pad, k)
			dumpValue(val, indent+2)
		}
	default:
		fmt.Printf("%s%s: %s\n", pad, v.Type(), v.String())
	}
}
