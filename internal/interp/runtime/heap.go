package runtime

import (
	"io"
	"os"

	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/token"
)

// Internal slot names (spec §3 invariant 4). These never appear as
// property keys; they live in JSObject.Internal.
const (
	slotSavedScope = "[[saved_scope]]"
	slotThis       = "[[this]]"
)

// Frame records one active call's diagnostic context: the function's
// display name and the location of the call site that invoked it
// (spec §4.1, §7). StackTrace renders the live frames; nothing attaches
// that trace to a Signal, so an uncaught error's message carries its kind,
// text and position but no call stack.
type Frame struct {
	FuncName string
	CallSite *token.Position
}

// Heap owns every JSObject, the current scope pointer, the call stack
// used for diagnostics, and the well-known prototypes the built-ins
// package installs during bootstrap.
type Heap struct {
	objects      []*JSObject
	currentScope ObjectId

	CallStack  []Frame
	CurrentLoc *token.Position

	// Invoke calls a function object by id, set once by the evaluator that
	// owns this Heap (Evaluator.Bind wires it to Evaluator.Call).
	// Built-ins that accept a callback (Array.prototype.forEach/map/sort)
	// go through this rather than importing the evaluator package, which
	// would cycle back to runtime.
	Invoke func(fnID ObjectId, this Value, args []Value) (Value, error)

	// Output is where console.log and friends write (builtins.installConsole).
	// Defaults to os.Stdout; set to io.Discard or a buffer to capture output,
	// the way the teacher's Interpreter.output field works.
	Output io.Writer

	// Well-known prototypes, populated by builtins.Bootstrap. Zero value
	// NullID before bootstrap runs.
	ObjectProto   ObjectId
	FunctionProto ObjectId
	ArrayProto    ObjectId
	StringProto   ObjectId
	ErrorProto    ObjectId
	BooleanProto  ObjectId
	NumberProto   ObjectId
}

// NewHeap allocates a heap with the NullID sentinel reserved at index 0
// and the global object fixed at GlobalID (spec §3 invariants 2, 3).
func NewHeap() *Heap {
	h := &Heap{objects: make([]*JSObject, 1, 64), Output: os.Stdout}
	global := NewObject(NullID)
	h.objects = append(h.objects, global)
	h.currentScope = GlobalID
	return h
}

// Alloc appends obj to the arena and returns its stable index.
func (h *Heap) Alloc(obj *JSObject) ObjectId {
	h.objects = append(h.objects, obj)
	return ObjectId(len(h.objects) - 1)
}

// Get resolves id to its object. It panics on NullID, matching spec §3
// invariant 1 ("NULL is never dereferenced"); callers that might be
// handed NullID (e.g. a proto link) must check against NullID first.
func (h *Heap) Get(id ObjectId) *JSObject {
	if id == NullID {
		panic("runtime: dereferenced the null object reference")
	}
	return h.objects[id]
}

// Global returns the fixed global object.
func (h *Heap) Global() *JSObject { return h.objects[GlobalID] }

// CurrentScope returns the scope currently in effect.
func (h *Heap) CurrentScope() ObjectId { return h.currentScope }

// LookupVar walks the current scope's proto chain (intra-scope,
// block-within-activation) interleaved with the [[saved_scope]] chain
// (lexical parents) until a match is found (spec §4.1). An unresolved
// name falls back to Member{GLOBAL, name}, which lets a bare assignment
// create a global and lets a bare read defer the ReferenceError decision
// to the caller (spec §9, "Global lookup fallback").
func (h *Heap) LookupVar(name string) Interpreted {
	cur := h.currentScope
	for cur != NullID {
		obj := h.Get(cur)
		if obj.HasOwn(name) {
			return MemberOf(cur, name)
		}
		if sv, ok := obj.GetInternal(slotSavedScope); ok {
			cur = sv.Ref
			continue
		}
		cur = obj.Proto
	}
	return MemberOf(GlobalID, name)
}

// CurrentThis resolves the [[this]] slot of the nearest enclosing
// activation, the same way LookupVar resolves a name.
func (h *Heap) CurrentThis() Value {
	cur := h.currentScope
	for cur != NullID {
		obj := h.Get(cur)
		if v, ok := obj.GetInternal(slotThis); ok {
			return v
		}
		if sv, ok := obj.GetInternal(slotSavedScope); ok {
			cur = sv.Ref
			continue
		}
		cur = obj.Proto
	}
	return Undefined()
}

// Declare hoists var bindings as undefined (preserving any pre-existing
// own binding) and function declarations as initialized closures
// (always overwritten), in the given scope (spec §4.1).
func (h *Heap) Declare(scope ObjectId, vars []string, funcs []*ast.FunctionDeclaration) {
	obj := h.Get(scope)
	for _, name := range vars {
		if !obj.HasOwn(name) {
			obj.SetOwnProperty(name, Undefined())
		}
	}
	for _, fn := range funcs {
		closureID := h.MakeClosure(fn.Name.Name, fn.Params, fn.Body, fn.Variables, fn.Functions, scope)
		obj.SetOwnProperty(fn.Name.Name, RefValue(closureID))
	}
}

// MakeClosure allocates a function object carrying a Closure payload plus
// a fresh `prototype` object whose `constructor` backlinks to the
// function (hidden, non-enumerable), exactly as spec §4.3's Function
// expression rule describes; Declare's hoisted function declarations and
// the evaluator's function-expression rule both funnel through this one
// allocation path.
func (h *Heap) MakeClosure(name string, params []*ast.Identifier, body *ast.BlockStatement, vars []string, funcs []*ast.FunctionDeclaration, capturedScope ObjectId) ObjectId {
	fnObj := NewObject(h.FunctionProto)
	fnObj.Payload = Payload{Kind: PayloadClosure, Closure: &Closure{
		Name:      name,
		Params:    params,
		Body:      body,
		Variables: vars,
		Functions: funcs,
		Scope:     capturedScope,
	}}
	fnObj.SetHidden("length", Number(float64(len(params))))
	fnID := h.Alloc(fnObj)

	protoObj := NewObject(h.ObjectProto)
	protoID := h.Alloc(protoObj)
	protoObj.SetHidden("constructor", RefValue(fnID))
	fnObj.SetHidden("prototype", RefValue(protoID))
	return fnID
}

// EnterBlockScope allocates a fresh scope chained to the current one via
// proto (no new activation, no [[this]] rebinding), runs fn, and restores
// the previous current scope afterward regardless of how fn returns
// (spec §4.1 enter_new_scope; §5 "balanced on all exit paths").
func (h *Heap) EnterBlockScope(fn func() (Interpreted, error)) (Interpreted, error) {
	scope := NewObject(h.currentScope)
	id := h.Alloc(scope)
	prev := h.currentScope
	h.currentScope = id
	defer func() { h.currentScope = prev }()
	return fn()
}

// EnterActivationScope allocates a fresh function-activation scope whose
// proto reaches GLOBAL directly (invariant 4) and whose [[saved_scope]]
// and [[this]] slots are set from the closure being invoked, runs fn,
// and restores the previous current scope on every exit path.
func (h *Heap) EnterActivationScope(capturedScope ObjectId, this Value, fn func() (Interpreted, error)) (Interpreted, error) {
	scope := NewObject(GlobalID)
	scope.SetInternal(slotSavedScope, RefValue(capturedScope))
	scope.SetInternal(slotThis, this)
	id := h.Alloc(scope)
	prev := h.currentScope
	h.currentScope = id
	defer func() { h.currentScope = prev }()
	return fn()
}

// PushFrame records a call's diagnostic context for stack traces.
func (h *Heap) PushFrame(name string, callSite *token.Position) {
	h.CallStack = append(h.CallStack, Frame{FuncName: name, CallSite: callSite})
}

// PopFrame removes the most recently pushed frame.
func (h *Heap) PopFrame() {
	if len(h.CallStack) == 0 {
		return
	}
	h.CallStack = h.CallStack[:len(h.CallStack)-1]
}

// StackTrace renders the current call stack, innermost first. Nothing in
// this module calls it for an uncaught-exception report.
func (h *Heap) StackTrace() []string {
	out := make([]string, 0, len(h.CallStack))
	for i := len(h.CallStack) - 1; i >= 0; i-- {
		f := h.CallStack[i]
		if f.CallSite != nil {
			out = append(out, f.FuncName+" ("+f.CallSite.String()+")")
		} else {
			out = append(out, f.FuncName)
		}
	}
	return out
}
