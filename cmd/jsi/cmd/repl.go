package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/go-jsi/pkg/jsi"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read-eval-print loop over ESTree JSON programs",
	Long: `Start an interactive loop that reads one ESTree JSON Program document
per line from stdin, evaluates it against a single persistent Engine (so
variables and functions declared on one line stay visible to the next),
and prints its completion value.

There is no source-text REPL here: the interpreter has no lexer or
parser of its own (spec §1), so each line must already be a full ESTree
Program document, compact JSON on one line. A host with a real parser
(a browser tab, Acorn under Node) drives this the same way, feeding back
each freshly parsed statement as JSON.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	engine := jsi.New()

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Prelude != "" {
			if _, err := engine.EvalJSON(cfg.Prelude); err != nil {
				return fmt.Errorf("prelude failed: %w", err)
			}
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	fmt.Fprint(os.Stderr, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(os.Stderr, "> ")
			continue
		}

		result, err := engine.EvalJSON(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			fmt.Fprint(os.Stderr, "> ")
			continue
		}
		fmt.Print(result.Output)
		fmt.Println(result.Value)
		fmt.Fprint(os.Stderr, "> ")
	}
	return scanner.Err()
}
