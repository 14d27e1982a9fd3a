package ast

import "github.com/cwbudde/go-jsi/internal/token"

// FunctionDeclaration is a named `function f(params) { body }` statement.
// Variables and Functions are the pre-computed per-function hoisting sets
// (spec §6) the evaluator trusts for hoisting rather than re-deriving.
type FunctionDeclaration struct {
	base
	Name      *Identifier
	Params    []*Identifier
	Body      *BlockStatement
	Variables []string
	Functions []*FunctionDeclaration
}

func (f *FunctionDeclaration) statementNode() {}

func NewFunctionDeclaration(name *Identifier, params []*Identifier, body *BlockStatement, vars []string, funcs []*FunctionDeclaration, loc *token.Location) *FunctionDeclaration {
	return &FunctionDeclaration{
		base:      base{Location: loc},
		Name:      name,
		Params:    params,
		Body:      body,
		Variables: vars,
		Functions: funcs,
	}
}

// FunctionExpression is an (optionally named) function literal used as a
// value: `var f = function(x) { return x; }`.
type FunctionExpression struct {
	base
	Name      *Identifier // nil for anonymous function expressions
	Params    []*Identifier
	Body      *BlockStatement
	Variables []string
	Functions []*FunctionDeclaration
}

func (f *FunctionExpression) expressionNode() {}

func NewFunctionExpression(name *Identifier, params []*Identifier, body *BlockStatement, vars []string, funcs []*FunctionDeclaration, loc *token.Location) *FunctionExpression {
	return &FunctionExpression{
		base:      base{Location: loc},
		Name:      name,
		Params:    params,
		Body:      body,
		Variables: vars,
		Functions: funcs,
	}
}
