package evaluator

import (
	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/interp/exception"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// assignMember writes v to target if target is an lvalue, silently
// dropping the write if target is a plain rvalue (an expression that
// cannot be assigned to, e.g. the left side was itself a computed
// non-member) or if the named property exists and is read-only (spec
// §4.3 Assignment: "assigning to a read-only property is a silent
// no-op, not an error").
func assignMember(h *runtime.Heap, target runtime.Interpreted, v runtime.Value) {
	if !target.IsMember() {
		return
	}
	of, name := target.Member()
	if name == "__proto__" {
		// A pseudo-property special-cased here per spec, not a real,
		// enumerable, first-class settable property (it never goes through
		// SetOwnProperty, so hasOwnProperty/for-in never see it).
		if v.IsRef() {
			h.Get(of).Proto = v.Ref
		} else if v.IsNull() {
			h.Get(of).Proto = runtime.NullID
		}
		return
	}
	h.Get(of).SetOwnProperty(name, v)
}

// evalAssignment implements both `=` and the compound operators (spec
// §4.3 Assignment): the left side is resolved to an lvalue first, then
// for compound forms its current value feeds the same binary-operator
// table `evalBinary` uses, and finally the result is written back.
//
// Left-to-right (§5) over §4.3's literal "evaluate RHS first": resolving
// the lvalue before the RHS matches real ECMAScript assignment order and
// is what a compound operator needs anyway (it reads the lvalue's
// current value before the RHS can be combined with it), so left-first
// is kept here.
func (e *Evaluator) evalAssignment(h *runtime.Heap, expr *ast.AssignmentExpression) (runtime.Interpreted, error) {
	target, err := e.EvalExpression(h, expr.Left)
	if err != nil {
		return runtime.VOID, err
	}

	rhs, err := e.evalValue(h, expr.Right)
	if err != nil {
		return runtime.VOID, err
	}

	result := rhs
	if expr.Operator != ast.OpAssign {
		cur := target.ToValue(h)
		op, ok := compoundBinaryOp[expr.Operator]
		if !ok {
			return runtime.VOID, exception.NewInternal("evaluator: unknown compound assignment operator %v", expr.Operator)
		}
		result, err = applyBinaryOp(h, op, cur, rhs)
		if err != nil {
			return runtime.VOID, err
		}
	}

	assignMember(h, target, result)
	return runtime.Val(result), nil
}

// compoundBinaryOp maps each compound assignment operator to the binary
// operator it combines with the current value.
var compoundBinaryOp = map[ast.AssignmentOperator]ast.BinaryOperator{
	ast.OpAddAssign:    ast.OpAdd,
	ast.OpSubAssign:    ast.OpSub,
	ast.OpMulAssign:    ast.OpMul,
	ast.OpDivAssign:    ast.OpDiv,
	ast.OpModAssign:    ast.OpMod,
	ast.OpShlAssign:    ast.OpShl,
	ast.OpShrAssign:    ast.OpShr,
	ast.OpUShrAssign:   ast.OpUShr,
	ast.OpBitAndAssign: ast.OpBitAnd,
	ast.OpBitOrAssign:  ast.OpBitOr,
	ast.OpBitXorAssign: ast.OpBitXor,
}
