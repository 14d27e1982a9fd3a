package evaluator

import (
	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/interp/exception"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// Bind wires h.Invoke to this Evaluator's Call, so built-ins that accept a
// callback (Array.prototype.forEach/map/sort, and similar) can invoke user
// functions without the runtime package importing this one.
func (e *Evaluator) Bind(h *runtime.Heap) {
	h.Invoke = func(fnID runtime.ObjectId, this runtime.Value, args []runtime.Value) (runtime.Value, error) {
		return e.Call(h, fnID, this, args)
	}
}

// Call invokes the function object at fnID with the given `this` and
// arguments. This is the dispatch the cycle between runtime.Heap and
// evaluator forces to live here rather than on Heap itself: a Closure
// payload needs to interpret an *ast.BlockStatement, which only this
// package knows how to do (spec §4.1 Heap::execute, §4.3 Call).
func (e *Evaluator) Call(h *runtime.Heap, fnID runtime.ObjectId, this runtime.Value, args []runtime.Value) (runtime.Value, error) {
	obj := h.Get(fnID)
	if !obj.IsCallable() {
		return runtime.Undefined(), exception.NewType(h.CurrentLoc, "value is not a function")
	}

	if hostFn := obj.Payload.HostFn; hostFn != nil {
		return hostFn(h, objectIDOf(this), args)
	}

	closure, _ := obj.AsClosure()
	h.PushFrame(closure.Name, h.CurrentLoc)
	defer h.PopFrame()

	res, err := h.EnterActivationScope(closure.Scope, this, func() (runtime.Interpreted, error) {
		bindParams(h, closure.Params, args)
		h.Declare(h.CurrentScope(), closure.Variables, closure.Functions)
		return e.runStatements(h, closure.Body.Statements)
	})
	if err != nil {
		if sig, ok := err.(*exception.Signal); ok && sig.Kind == exception.KindReturn {
			return sig.Value, nil
		}
		return runtime.Undefined(), err
	}
	return res.ToValue(h), nil
}

// objectIDOf extracts the receiver's ObjectId for a HostFunc, or NullID
// if `this` is not an object reference (a host function that needs an
// object receiver checks for NullID itself).
func objectIDOf(this runtime.Value) runtime.ObjectId {
	if this.IsRef() {
		return this.Ref
	}
	return runtime.NullID
}

// bindParams assigns each argument (or undefined, for a short argument
// list) to its declared parameter name as an own property of the fresh
// activation scope; extra arguments beyond the declared params are
// simply dropped since rest/arguments-object support is out of scope
// (spec's Non-goals on destructuring/rest).
func bindParams(h *runtime.Heap, params []*ast.Identifier, args []runtime.Value) {
	scope := h.Get(h.CurrentScope())
	for i, p := range params {
		if i < len(args) {
			scope.SetOwnProperty(p.Name, args[i])
		} else {
			scope.SetOwnProperty(p.Name, runtime.Undefined())
		}
	}
}

// evalCall resolves the callee (capturing a MemberExpression's object as
// `this`, per spec §4.3's method-call rule) and invokes it.
func (e *Evaluator) evalCall(h *runtime.Heap, expr *ast.CallExpression) (runtime.Interpreted, error) {
	this := runtime.Undefined()
	var calleeVal runtime.Value

	if member, ok := expr.Callee.(*ast.MemberExpression); ok {
		objVal, err := e.evalValue(h, member.Object)
		if err != nil {
			return runtime.VOID, err
		}
		name, err := e.memberPropertyName(h, member)
		if err != nil {
			return runtime.VOID, err
		}
		of, err := e.receiverObject(h, objVal, name)
		if err != nil {
			return runtime.VOID, err
		}
		this = runtime.RefValue(of)
		calleeVal = runtime.LookupValue(h, of, name)
	} else {
		v, err := e.evalValue(h, expr.Callee)
		if err != nil {
			return runtime.VOID, err
		}
		calleeVal = v
	}

	args, err := e.evalArgs(h, expr.Arguments)
	if err != nil {
		return runtime.VOID, err
	}
	if !calleeVal.IsRef() {
		return runtime.VOID, exception.NewType(h.CurrentLoc, "value is not a function")
	}
	result, err := e.Call(h, calleeVal.Ref, this, args)
	if err != nil {
		return runtime.VOID, err
	}
	return runtime.Val(result), nil
}

func (e *Evaluator) evalArgs(h *runtime.Heap, exprs []ast.Expression) ([]runtime.Value, error) {
	args := make([]runtime.Value, len(exprs))
	for i, a := range exprs {
		v, err := e.evalValue(h, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalNew allocates a fresh object prototyped on the callee's `prototype`
// property, invokes the constructor with that object as `this`, and
// yields the new object unless the constructor itself returns another
// object reference (spec §4.3 New).
func (e *Evaluator) evalNew(h *runtime.Heap, expr *ast.NewExpression) (runtime.Interpreted, error) {
	calleeVal, err := e.evalValue(h, expr.Callee)
	if err != nil {
		return runtime.VOID, err
	}
	if !calleeVal.IsRef() {
		return runtime.VOID, exception.NewType(h.CurrentLoc, "value is not a constructor")
	}
	fnObj := h.Get(calleeVal.Ref)
	if !fnObj.IsCallable() {
		return runtime.VOID, exception.NewType(h.CurrentLoc, "value is not a constructor")
	}

	protoVal, hasProto := fnObj.GetOwn("prototype")
	if !hasProto || !protoVal.IsRef() {
		return runtime.VOID, exception.NewType(h.CurrentLoc, "missing prototype on constructor")
	}
	instID := h.Alloc(runtime.NewObject(protoVal.Ref))

	args, err := e.evalArgs(h, expr.Arguments)
	if err != nil {
		return runtime.VOID, err
	}
	result, err := e.Call(h, calleeVal.Ref, runtime.RefValue(instID), args)
	if err != nil {
		return runtime.VOID, err
	}
	if result.IsRef() {
		return runtime.Val(result), nil
	}
	return runtime.Val(runtime.RefValue(instID)), nil
}
