package cmd

import (
	"fmt"

	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/estree"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var parseInline string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Import ESTree JSON and print the resulting AST",
	Long: `Import an ESTree-shaped JSON document into internal/ast and print it,
either as a short indented tree (default) or, with --json-ast, as the
document re-exported and pretty-printed.

If no file is provided, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseInline, "eval", "e", "", "parse inline ESTree JSON instead of reading from a file")
}

func runParseCmd(_ *cobra.Command, args []string) error {
	input, err := readProgramInput(parseInline, args)
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
		fmt.Println(string(pretty.Pretty([]byte(dumped))))
		return nil
	}

	fmt.Println("Program:")
	dumpASTNode(prog.Body, 0)
	return nil
}

// dumpASTNode is a minimal indented-tree printer for debugging, the same
// role the teacher's cmd/dwscript/cmd/parse.go dumpASTNode plays for its
// own AST — one case per node kind, falling back to %T for anything new.
func dumpASTNode(node ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.BlockStatement:
		fmt.Printf("%sBlockStatement (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpASTNode(s, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", pad)
		dumpASTNode(n.Expr, indent+1)
	case *ast.VariableDeclaration:
		fmt.Printf("%sVariableDeclaration\n", pad)
		for _, d := range n.Declarations {
			fmt.Printf("%s  %s\n", pad, d.Name.Name)
			if d.Init != nil {
				dumpASTNode(d.Init, indent+2)
			}
		}
	case *ast.FunctionDeclaration:
		fmt.Printf("%sFunctionDeclaration %s\n", pad, n.Name.Name)
		dumpASTNode(n.Body, indent+1)
	case *ast.IfStatement:
		fmt.Printf("%sIfStatement\n", pad)
		dumpASTNode(n.Test, indent+1)
		dumpASTNode(n.Consequent, indent+1)
		if n.Alternate != nil {
			dumpASTNode(n.Alternate, indent+1)
		}
	case *ast.ReturnStatement:
		fmt.Printf("%sReturnStatement\n", pad)
		if n.Argument != nil {
			dumpASTNode(n.Argument, indent+1)
		}
	case *ast.BinaryExpression:
		fmt.Printf("%sBinaryExpression (%s)\n", pad, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.CallExpression:
		fmt.Printf("%sCallExpression\n", pad)
		dumpASTNode(n.Callee, indent+1)
		for _, a := range n.Arguments {
			dumpASTNode(a, indent+1)
		}
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", pad, n.Name)
	case *ast.NumberLiteral:
		fmt.Printf("%sNumberLiteral: %g\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", pad, n.Value)
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %v\n", pad, n.Value)
	case *ast.NullLiteral:
		fmt.Printf("%sNullLiteral\n", pad)
	default:
		fmt.Printf("%s%T\n", pad, node)
	}
}
