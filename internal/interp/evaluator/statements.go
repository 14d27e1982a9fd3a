package evaluator

import (
	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/interp/exception"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// evalBlock enters a new scope whose parent is the current scope, hoists
// its own var/function bindings, executes its statements in order, and
// yields the last statement's value (spec §4.3 Block).
func (e *Evaluator) evalBlock(h *runtime.Heap, block *ast.BlockStatement) (runtime.Interpreted, error) {
	return h.EnterBlockScope(func() (runtime.Interpreted, error) {
		vars, funcs := collectBlockHoists(block.Statements)
		h.Declare(h.CurrentScope(), vars, funcs)
		return e.runStatements(h, block.Statements)
	})
}

func (e *Evaluator) evalExpressionStatement(h *runtime.Heap, stmt *ast.ExpressionStatement) (runtime.Interpreted, error) {
	v, err := e.evalValue(h, stmt.Expr)
	if err != nil {
		return runtime.VOID, err
	}
	return runtime.Val(v), nil
}

// evalVariableDeclaration assigns each declarator's initializer (if any)
// to its already-hoisted binding, looking it up through the scope chain
// rather than creating a new binding here (spec §4.3).
func (e *Evaluator) evalVariableDeclaration(h *runtime.Heap, decl *ast.VariableDeclaration) (runtime.Interpreted, error) {
	for _, d := range decl.Declarations {
		if d.Init == nil {
			continue
		}
		v, err := e.evalValue(h, d.Init)
		if err != nil {
			return runtime.VOID, err
		}
		target := h.LookupVar(d.Name.Name)
		assignMember(h, target, v)
	}
	return runtime.VOID, nil
}

func (e *Evaluator) evalIf(h *runtime.Heap, stmt *ast.IfStatement) (runtime.Interpreted, error) {
	test, err := e.evalValue(h, stmt.Test)
	if err != nil {
		return runtime.VOID, err
	}
	if test.ToBoolean() {
		return e.EvalStatement(h, stmt.Consequent)
	}
	if stmt.Alternate != nil {
		return e.EvalStatement(h, stmt.Alternate)
	}
	return runtime.VOID, nil
}

func (e *Evaluator) evalReturn(h *runtime.Heap, stmt *ast.ReturnStatement) (runtime.Interpreted, error) {
	v := runtime.Undefined()
	if stmt.Argument != nil {
		var err error
		v, err = e.evalValue(h, stmt.Argument)
		if err != nil {
			return runtime.VOID, err
		}
	}
	return runtime.VOID, exception.Return(v)
}

func (e *Evaluator) evalThrow(h *runtime.Heap, stmt *ast.ThrowStatement) (runtime.Interpreted, error) {
	v, err := e.evalValue(h, stmt.Argument)
	if err != nil {
		return runtime.VOID, err
	}
	return runtime.VOID, exception.Thrown(v)
}

// evalTry interprets the block; a UserThrown exception or a typed
// diagnostic (materialized as an Error object) is handed to the catch
// handler (if any) in a fresh scope binding its parameter; Jump
// signals pass through catch untouched. The finalizer, if present, always
// runs, and its own failure supersedes whatever was pending (spec §4.3
// Try, §5 ordering guarantees).
func (e *Evaluator) evalTry(h *runtime.Heap, stmt *ast.TryStatement) (runtime.Interpreted, error) {
	res, blockErr := e.evalBlock(h, stmt.Block)

	if blockErr != nil && stmt.Handler != nil {
		if sig, ok := blockErr.(*exception.Signal); ok && (sig.Kind == exception.KindThrown || sig.Kind.IsDiagnostic()) {
			caught := exception.Materialize(h, sig)
			res, blockErr = h.EnterBlockScope(func() (runtime.Interpreted, error) {
				if stmt.Handler.Param != nil {
					h.Get(h.CurrentScope()).SetOwnProperty(stmt.Handler.Param.Name, caught)
				}
				vars, funcs := collectBlockHoists(stmt.Handler.Body.Statements)
				h.Declare(h.CurrentScope(), vars, funcs)
				return e.runStatements(h, stmt.Handler.Body.Statements)
			})
		}
	}

	if stmt.Finalizer != nil {
		finRes, finErr := e.evalBlock(h, stmt.Finalizer)
		if finErr != nil {
			return finRes, finErr
		}
	}

	return res, blockErr
}
