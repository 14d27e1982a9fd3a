package evaluator

import (
	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// evalForIn enumerates the target object's own enumerable keys (array
// indices ascending, then string keys in insertion order, per the Open
// Questions decision recorded in SPEC_FULL.md) plus those inherited via
// the prototype chain, skipping any name already seen at a closer level,
// binding each in turn to the loop variable (spec §4.3 ForIn).
func (e *Evaluator) evalForIn(h *runtime.Heap, stmt *ast.ForInStatement, label string) (runtime.Interpreted, error) {
	objVal, err := e.evalValue(h, stmt.Object)
	if err != nil {
		return runtime.VOID, err
	}
	if !objVal.IsRef() {
		return runtime.VOID, nil
	}

	seen := make(map[string]bool)
	for id := objVal.Ref; id != runtime.NullID; id = h.Get(id).Proto {
		obj := h.Get(id)
		for _, key := range obj.OwnEnumerableKeys() {
			if seen[key] {
				continue
			}
			seen[key] = true

			if err := e.bindForInVar(h, stmt.Left, key); err != nil {
				return runtime.VOID, err
			}
			_, err := e.EvalStatement(h, stmt.Body)
			if err != nil {
				sig, propagate := classifyLoopErr(err, label)
				if propagate != nil {
					return runtime.VOID, propagate
				}
				if sig == loopBreak {
					return runtime.VOID, nil
				}
			}
		}
	}
	return runtime.VOID, nil
}

// bindForInVar assigns the current enumeration key (as a string Value) to
// the loop's target, which is either a bare identifier naming a variable
// or a fuller assignment target (spec §4.3 ForIn's VarName/Target).
func (e *Evaluator) bindForInVar(h *runtime.Heap, left ast.ForInTarget, key string) error {
	v := runtime.String(key)
	if left.VarName != "" {
		target := h.LookupVar(left.VarName)
		assignMember(h, target, v)
		return nil
	}
	target, err := e.EvalExpression(h, left.Target)
	if err != nil {
		return err
	}
	assignMember(h, target, v)
	return nil
}
