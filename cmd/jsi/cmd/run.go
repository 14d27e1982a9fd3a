package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-jsi/internal/estree"
	"github.com/cwbudde/go-jsi/pkg/jsi"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var evalJSON string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an ESTree JSON program",
	Long: `Execute a program supplied as ESTree-shaped JSON, from a file or
inline.

Examples:
  # Run a program from a file
  jsi run program.json

  # Evaluate inline JSON
  jsi run -e '{"type":"Program","body":[...]}'

  # Run from stdin, dumping the re-serialized AST first
  cat program.json | jsi run --json-ast`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalJSON, "eval", "e", "", "evaluate inline ESTree JSON instead of reading from a file")
}

func runProgram(_ *cobra.Command, args []string) error {
	input, err := readProgramInput(evalJSON, args)
	if err != nil {
		return err
	}

	prog, err := estree.Import(input)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if jsonAST {
		dumped, err := estree.Export(prog)
		if err != nil {
			return fmt.Errorf("re-export for --json-ast failed: %w", err)
		}
		fmt.Fprintln(os.Stderr, string(pretty.Pretty([]byte(dumped))))
	}

	engine := jsi.New()
	result, err := engine.EvalProgram(prog)
	fmt.Print(result.Output)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "=> %s\n", result.Value)
	}
	return nil
}

// readProgramInput resolves a subcommand's source the same way across
// run/parse: an inline -e string wins, then a file argument, then stdin.
func readProgramInput(inline string, args []string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
