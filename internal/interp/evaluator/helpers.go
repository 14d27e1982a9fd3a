package evaluator

import (
	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/token"
)

// locPos extracts the starting Position of a node's Location, or nil if
// the node carries none. Diagnostic constructors take *token.Position,
// not *token.Location, since a raised error pins to one point.
func locPos(loc *token.Location) *token.Position {
	if loc == nil {
		return nil
	}
	p := loc.Start
	return &p
}

// collectBlockHoists scans the direct statements of a block (not
// recursing into nested blocks, loop/if/try bodies, or function bodies)
// for `var` and `function` declarations to hoist, modeling block-scoped
// hoisting the way spec §4.3's Block rule describes: "hoists its let/const
// bindings...since the AST does not distinguish [them from var]".
func collectBlockHoists(stmts []ast.Statement) (vars []string, funcs []*ast.FunctionDeclaration) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.VariableDeclaration:
			for _, d := range n.Declarations {
				vars = append(vars, d.Name.Name)
			}
		case *ast.FunctionDeclaration:
			funcs = append(funcs, n)
		}
	}
	return vars, funcs
}
