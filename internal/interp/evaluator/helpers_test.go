package evaluator

import (
	"testing"

	"github.com/cwbudde/go-jsi/internal/ast"
)

func TestCollectBlockHoistsIsNotRecursive(t *testing.T) {
	inner := ast.NewVariableDeclaration([]ast.VariableDeclarator{
		{Name: ast.NewIdentifier("innerVar", nil)},
	}, nil)
	block := ast.NewBlockStatement([]ast.Statement{inner}, nil)

	outerVar := ast.NewVariableDeclaration([]ast.VariableDeclarator{
		{Name: ast.NewIdentifier("outerVar", nil)},
	}, nil)
	fn := ast.NewFunctionDeclaration(
		ast.NewIdentifier("f", nil), nil,
		ast.NewBlockStatement(nil, nil), nil, nil, nil,
	)

	vars, funcs := collectBlockHoists([]ast.Statement{outerVar, fn, block})

	if len(vars) != 1 || vars[0] != "outerVar" {
		t.Errorf("collectBlockHoists vars = %v, want [\"outerVar\"] (must not recurse into the nested block)", vars)
	}
	if len(funcs) != 1 || funcs[0].Name.Name != "f" {
		t.Errorf("collectBlockHoists funcs = %v, want one declaration named \"f\"", funcs)
	}
}

func TestLocPosNilLocation(t *testing.T) {
	if got := locPos(nil); got != nil {
		t.Errorf("locPos(nil) = %+v, want nil", got)
	}
}
