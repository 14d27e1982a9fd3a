// Package evaluator implements the AST-dispatch half of the interpreter:
// one rule per node kind (spec §4.3), driving internal/interp/runtime's
// Heap to allocate objects, resolve scopes, and dispatch calls. It is the
// only package that knows how to turn an *ast.Program into observable
// values and side effects.
package evaluator

import (
	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/interp/exception"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// Evaluator holds no mutable state of its own — everything observable
// lives on the Heap it is handed — so a single instance can be reused
// across evaluations, matching the teacher's stateless-evaluator split
// between data (runtime.Heap) and behavior (Evaluator).
type Evaluator struct{}

// New creates an Evaluator.
func New() *Evaluator { return &Evaluator{} }

// EvalProgram hoists the program's top-level declarations directly into
// the global scope and runs its body, returning the last statement's
// completion value (spec §6 embedding API, §4.3 Block's REPL semantics).
func (e *Evaluator) EvalProgram(h *runtime.Heap, prog *ast.Program) (runtime.Value, error) {
	h.Declare(runtime.GlobalID, prog.Variables, prog.Functions)
	res, err := e.runStatements(h, prog.Body.Statements)
	if err != nil {
		return runtime.Undefined(), exception.AsSignal(err)
	}
	return res.ToValue(h), nil
}

// runStatements executes stmts in the current scope without allocating a
// new scope or hoisting — the caller is responsible for both, since the
// rules differ between a Program, a function activation, and a plain
// block (see statements.go and call.go).
func (e *Evaluator) runStatements(h *runtime.Heap, stmts []ast.Statement) (runtime.Interpreted, error) {
	last := runtime.VOID
	for _, s := range stmts {
		h.CurrentLoc = locPos(s.Loc())
		res, err := e.EvalStatement(h, s)
		if err != nil {
			return runtime.VOID, err
		}
		last = res
	}
	return last, nil
}

// EvalStatement dispatches a single statement to its rule. Every rule
// returns runtime.VOID on success unless noted; failures are reported by
// returning a non-nil error, always a *exception.Signal once it leaves
// this package (spec §4.3).
func (e *Evaluator) EvalStatement(h *runtime.Heap, stmt ast.Statement) (runtime.Interpreted, error) {
	switch n := stmt.(type) {
	case *ast.BlockStatement:
		return e.evalBlock(h, n)
	case *ast.ExpressionStatement:
		return e.evalExpressionStatement(h, n)
	case *ast.EmptyStatement:
		return runtime.VOID, nil
	case *ast.VariableDeclaration:
		return e.evalVariableDeclaration(h, n)
	case *ast.FunctionDeclaration:
		// No-op at evaluation time: the enclosing scope's hoisting pass
		// already materialized this as an initialized closure (spec §4.3).
		return runtime.VOID, nil
	case *ast.IfStatement:
		return e.evalIf(h, n)
	case *ast.SwitchStatement:
		return e.evalSwitch(h, n, "")
	case *ast.ForStatement:
		return e.evalFor(h, n, "")
	case *ast.WhileStatement:
		return e.evalWhile(h, n, "")
	case *ast.DoWhileStatement:
		return e.evalDoWhile(h, n, "")
	case *ast.ForInStatement:
		return e.evalForIn(h, n, "")
	case *ast.LabeledStatement:
		return e.evalLabeled(h, n)
	case *ast.ReturnStatement:
		return e.evalReturn(h, n)
	case *ast.BreakStatement:
		return runtime.VOID, exception.Break(n.Label)
	case *ast.ContinueStatement:
		return runtime.VOID, exception.Continue(n.Label)
	case *ast.ThrowStatement:
		return e.evalThrow(h, n)
	case *ast.TryStatement:
		return e.evalTry(h, n)
	default:
		return runtime.VOID, exception.NewInternal("evaluator: unhandled statement type %T", stmt)
	}
}

// EvalExpression dispatches a single expression to its rule, returning an
// Interpreted that may be an lvalue (spec §4.3).
func (e *Evaluator) EvalExpression(h *runtime.Heap, expr ast.Expression) (runtime.Interpreted, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.Val(runtime.Number(n.Value)), nil
	case *ast.StringLiteral:
		return runtime.Val(runtime.String(n.Value)), nil
	case *ast.BooleanLiteral:
		return runtime.Val(runtime.Bool(n.Value)), nil
	case *ast.NullLiteral:
		return runtime.Val(runtime.Null()), nil
	case *ast.Identifier:
		return h.LookupVar(n.Name), nil
	case *ast.ThisExpression:
		return runtime.Val(h.CurrentThis()), nil
	case *ast.ArrayExpression:
		return e.evalArrayExpression(h, n)
	case *ast.ObjectExpression:
		return e.evalObjectExpression(h, n)
	case *ast.FunctionExpression:
		return e.evalFunctionExpression(h, n)
	case *ast.BinaryExpression:
		return e.evalBinary(h, n)
	case *ast.LogicalExpression:
		return e.evalLogical(h, n)
	case *ast.UnaryExpression:
		return e.evalUnary(h, n)
	case *ast.UpdateExpression:
		return e.evalUpdate(h, n)
	case *ast.AssignmentExpression:
		return e.evalAssignment(h, n)
	case *ast.MemberExpression:
		return e.evalMember(h, n)
	case *ast.CallExpression:
		return e.evalCall(h, n)
	case *ast.NewExpression:
		return e.evalNew(h, n)
	case *ast.SequenceExpression:
		return e.evalSequence(h, n)
	case *ast.ConditionalExpression:
		return e.evalConditional(h, n)
	default:
		return runtime.VOID, exception.NewInternal("evaluator: unhandled expression type %T", expr)
	}
}

// evalValue evaluates expr and immediately dereferences the result,
// the common case everywhere except assignment/delete/typeof targets.
func (e *Evaluator) evalValue(h *runtime.Heap, expr ast.Expression) (runtime.Value, error) {
	r, err := e.EvalExpression(h, expr)
	if err != nil {
		return runtime.Undefined(), err
	}
	return r.ToValue(h), nil
}
