package estree

import (
	"fmt"

	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/tidwall/gjson"
)

// Import parses an ESTree Program, JSON-encoded exactly as Acorn/Esprima
// or an equivalent host-side parser would emit it, into an *ast.Program
// ready for the evaluator. gjson.Parse never reports a syntax error
// itself (a malformed document just yields a zero Result), so the first
// real check is that the root actually looks like a Program node.
func Import(source string) (*ast.Program, error) {
	root := gjson.Parse(source)
	if !root.Exists() || root.Get("type").String() != "Program" {
		return nil, fmt.Errorf("estree: expected a root Program node")
	}

	stmts, err := parseStatementList(root.Get("body"))
	if err != nil {
		return nil, err
	}
	vars, funcs := collectHoists(stmts)

	return &ast.Program{
		Body:      ast.NewBlockStatement(stmts, locOf(root)),
		Variables: vars,
		Functions: funcs,
	}, nil
}
