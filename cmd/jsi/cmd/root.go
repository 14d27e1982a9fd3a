package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose    bool
	jsonAST    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "jsi",
	Short: "jsi is a dynamically-typed, prototype-based scripting language interpreter",
	Long: `jsi is a tree-walking interpreter for a small ECMAScript-family
scripting language: prototype-based objects, closures, exceptions, and
the usual statement/expression set, minus generators, async, modules,
and strict mode.

It has no lexer or parser of its own: every subcommand consumes an
ESTree-shaped JSON AST (the shape Acorn/Esprima produce), the way a
host embedding this interpreter already has a parser and only needs an
evaluator.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonAST, "json-ast", false, "print the imported AST, re-serialized and pretty-printed, before running")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with a REPL prelude program (see Config)")
}
