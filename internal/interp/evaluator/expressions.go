package evaluator

import (
	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/interp/exception"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

func (e *Evaluator) evalArrayExpression(h *runtime.Heap, expr *ast.ArrayExpression) (runtime.Interpreted, error) {
	elems := make([]runtime.Value, len(expr.Elements))
	for i, el := range expr.Elements {
		v, err := e.evalValue(h, el)
		if err != nil {
			return runtime.VOID, err
		}
		elems[i] = v
	}
	return runtime.Val(runtime.RefValue(h.NewArrayObject(elems))), nil
}

// evalObjectExpression evaluates each property's key and value in source
// order, a computed key coerced to string via ToPrimitiveString (spec
// §4.3 Object literal).
func (e *Evaluator) evalObjectExpression(h *runtime.Heap, expr *ast.ObjectExpression) (runtime.Interpreted, error) {
	id := h.NewPlainObject()
	obj := h.Get(id)
	for _, prop := range expr.Properties {
		name, err := e.propertyKeyName(h, prop)
		if err != nil {
			return runtime.VOID, err
		}
		v, err := e.evalValue(h, prop.Value)
		if err != nil {
			return runtime.VOID, err
		}
		obj.SetOwnProperty(name, v)
	}
	return runtime.Val(runtime.RefValue(id)), nil
}

func (e *Evaluator) propertyKeyName(h *runtime.Heap, prop ast.ObjectProperty) (string, error) {
	if !prop.Computed {
		if ident, ok := prop.Key.(*ast.Identifier); ok {
			return ident.Name, nil
		}
		if lit, ok := prop.Key.(*ast.StringLiteral); ok {
			return lit.Value, nil
		}
	}
	v, err := e.evalValue(h, prop.Key)
	if err != nil {
		return "", err
	}
	return e.toPrimitiveString(h, v), nil
}

// evalFunctionExpression allocates a closure capturing the current scope,
// the same allocation Heap.Declare uses for hoisted function declarations
// (spec §4.3 Function expression).
func (e *Evaluator) evalFunctionExpression(h *runtime.Heap, expr *ast.FunctionExpression) (runtime.Interpreted, error) {
	name := ""
	if expr.Name != nil {
		name = expr.Name.Name
	}
	id := h.MakeClosure(name, expr.Params, expr.Body, expr.Variables, expr.Functions, h.CurrentScope())
	return runtime.Val(runtime.RefValue(id)), nil
}

func (e *Evaluator) evalSequence(h *runtime.Heap, expr *ast.SequenceExpression) (runtime.Interpreted, error) {
	var last runtime.Value
	for _, sub := range expr.Expressions {
		v, err := e.evalValue(h, sub)
		if err != nil {
			return runtime.VOID, err
		}
		last = v
	}
	return runtime.Val(last), nil
}

func (e *Evaluator) evalConditional(h *runtime.Heap, expr *ast.ConditionalExpression) (runtime.Interpreted, error) {
	test, err := e.evalValue(h, expr.Test)
	if err != nil {
		return runtime.VOID, err
	}
	if test.ToBoolean() {
		return e.EvalExpression(h, expr.Consequent)
	}
	return e.EvalExpression(h, expr.Alternate)
}

// memberPropertyName resolves a MemberExpression's property name: a
// non-computed member names an Identifier directly; a computed member
// evaluates its bracket expression and coerces the result to string
// (spec §4.3 Member).
func (e *Evaluator) memberPropertyName(h *runtime.Heap, expr *ast.MemberExpression) (string, error) {
	if !expr.Computed {
		ident := expr.Property.(*ast.Identifier)
		return ident.Name, nil
	}
	v, err := e.evalValue(h, expr.Property)
	if err != nil {
		return "", err
	}
	return e.toPrimitiveString(h, v), nil
}

// evalMember evaluates the object operand and returns a Member lvalue
// naming the resolved property, so the result can serve as either an
// rvalue (via ToValue) or an assignment/delete target. A primitive
// receiver (string/number/boolean) is autoboxed into a short-lived
// object so its prototype's methods are reachable the same way a real
// object's would be; undefined/null have no boxed form and raise a
// TypeError (spec §4.3 Member).
func (e *Evaluator) evalMember(h *runtime.Heap, expr *ast.MemberExpression) (runtime.Interpreted, error) {
	objVal, err := e.evalValue(h, expr.Object)
	if err != nil {
		return runtime.VOID, err
	}
	name, err := e.memberPropertyName(h, expr)
	if err != nil {
		return runtime.VOID, err
	}
	of, err := e.receiverObject(h, objVal, name)
	if err != nil {
		return runtime.VOID, err
	}
	return runtime.MemberOf(of, name), nil
}

// receiverObject resolves v to the object whose properties a member
// access or method call should see: v itself if already a reference, a
// fresh autoboxed wrapper for a primitive, or a TypeError for undefined
// or null.
func (e *Evaluator) receiverObject(h *runtime.Heap, v runtime.Value, name string) (runtime.ObjectId, error) {
	if v.IsRef() {
		return v.Ref, nil
	}
	if v.IsNullish() {
		return runtime.NullID, exception.NewType(h.CurrentLoc, "cannot read property %q of %s", name, v.TypeName())
	}
	return runtime.BoxPrimitive(h, v), nil
}
