package runtime

import "github.com/cwbudde/go-jsi/internal/ast"

// PayloadKind tags the specialized behavior layered on top of an object's
// plain property map (spec §3).
type PayloadKind uint8

const (
	PayloadNone PayloadKind = iota
	PayloadArray
	PayloadString
	PayloadClosure
	PayloadHostFn
	PayloadError
)

// HostFunc is a native function pointer bound into the heap as an
// object's HostFn payload (spec §6, "Host functions are registered by
// allocating an object with a HostFn payload"). this is NullID for a bare
// call (or any call whose receiver is not an object reference), or the
// receiver object for a method call; args is already evaluated and arity-normalized by the
// caller only in the sense that missing arguments are never supplied —
// host functions must handle short arg slices themselves.
type HostFunc func(h *Heap, this ObjectId, args []Value) (Value, error)

// Closure holds an immutable description of a function plus the
// ObjectId of the lexical scope captured at the time the function
// expression/declaration was evaluated (spec §4.5).
type Closure struct {
	Name      string
	Params    []*ast.Identifier
	Body      *ast.BlockStatement
	Variables []string
	Functions []*ast.FunctionDeclaration
	Scope     ObjectId
}

// Payload is the variant data an object carries beyond its property map.
type Payload struct {
	Kind PayloadKind

	// PayloadArray
	Array []Value

	// PayloadString
	Str string

	// PayloadClosure
	Closure *Closure

	// PayloadHostFn
	HostFn HostFunc

	// PayloadError: the diagnostic class tag ("TypeError",
	// "ReferenceError", "SyntaxError", "RangeError", "Error") preserved
	// across a throw/catch round-trip (spec §4.4).
	ErrorClass string
}

func (p Payload) IsCallable() bool {
	return p.Kind == PayloadClosure || p.Kind == PayloadHostFn
}
