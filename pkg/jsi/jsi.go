// Package jsi is the embedding API for host programs: construct an
// Engine, hand it a program (either a pre-parsed *ast.Program or an
// ESTree JSON document — this interpreter has no lexer/parser of its
// own, spec §1/§6), and read back the result. Grounded on the teacher's
// pkg/dwscript.New/Eval/Compile/Run shape (the package's own _test.go
// files are the only surviving trace of that API in the retrieval pack;
// its non-test sources were not retrieved) and on functional options
// (WithOutput/WithTypeCheck-equivalent) the same package uses.
package jsi

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/estree"
	"github.com/cwbudde/go-jsi/internal/interp/builtins"
	"github.com/cwbudde/go-jsi/internal/interp/evaluator"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// Engine is one interpreter instance: a bootstrapped Heap plus the
// stateless Evaluator bound to it. Globals and host bindings persist
// across calls to EvalProgram/EvalJSON on the same Engine, the way a
// single teacher dwscript.Engine persists compiled units across Eval
// calls.
type Engine struct {
	heap   *runtime.Heap
	eval   *evaluator.Evaluator
	output io.Writer // non-nil once an explicit WithOutput is set
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOutput makes console.log/warn/error/info write to w for every Eval
// call on this Engine, instead of each call getting its own captured
// buffer reported back in Result.Output.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.output = w
		e.heap.Output = w
	}
}

// New constructs a bootstrapped Engine: a fresh Heap with every built-in
// prototype and global installed (builtins.Bootstrap) and the evaluator's
// Invoke seam wired (Evaluator.Bind), ready to run a program.
func New(opts ...Option) *Engine {
	h := runtime.NewHeap()
	ev := evaluator.New()
	ev.Bind(h)
	builtins.Bootstrap(h)

	e := &Engine{heap: h, eval: ev}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is what one Eval call produced: the completion value, stringified
// the way console output already is (spec §3's Value has no exported Go
// type here — JSObject/Value live in internal/interp/runtime — so the
// embedding boundary is strings, not a leaked internal representation),
// and whatever console output was written during the call if the Engine
// wasn't constructed with WithOutput.
type Result struct {
	Value  string
	Output string
}

// EvalProgram runs an already-parsed program. This is the fundamental
// entry point spec §1 describes ("the host supplies a pre-parsed AST");
// EvalJSON is a convenience wrapper over it.
func (e *Engine) EvalProgram(prog *ast.Program) (Result, error) {
	var buf *bytes.Buffer
	if e.output == nil {
		buf = &bytes.Buffer{}
		e.heap.Output = buf
	}

	v, err := e.eval.EvalProgram(e.heap, prog)

	if e.output == nil {
		e.heap.Output = nil
	}

	res := Result{Value: runtime.Stringify(e.heap, v)}
	if buf != nil {
		res.Output = buf.String()
	}
	if err != nil {
		return res, err
	}
	return res, nil
}

// EvalJSON imports an ESTree-shaped JSON document via internal/estree and
// runs it, the path a browser or Node-hosted caller uses when it already
// has a parser (Acorn, Esprima, ...) but no Go AST.
func (e *Engine) EvalJSON(estreeJSON string) (Result, error) {
	prog, err := estree.Import(estreeJSON)
	if err != nil {
		return Result{}, fmt.Errorf("jsi: %w", err)
	}
	return e.EvalProgram(prog)
}

// Global looks up a global binding by name, returning its stringified
// value and whether it was found at all (as opposed to being `undefined`
// but present) — the minimal read-back surface a host needs to inspect
// what a script produced without round-tripping through EvalProgram's
// single completion value.
func (e *Engine) Global(name string) (string, bool) {
	if !e.heap.Get(runtime.GlobalID).HasOwn(name) {
		return "", false
	}
	v := runtime.LookupValue(e.heap, runtime.GlobalID, name)
	return runtime.Stringify(e.heap, v), true
}

// BindHostFunc installs fn as a callable global named name, the Engine's
// equivalent of the teacher's reflection-based RegisterFunction. Host
// functions here take the interpreter's own runtime.Value/HostFunc shape
// directly rather than through reflection: every JS value the evaluator
// produces is already untyped, so there is no argument-marshaling layer
// reflection would need to bridge, unlike the teacher's statically-typed
// DWScript values calling into Go's static types.
func (e *Engine) BindHostFunc(name string, arity int, fn runtime.HostFunc) {
	id := e.heap.NewHostFunction(name, arity, fn)
	e.heap.DefineGlobal(name, runtime.RefValue(id))
}

// SetOutput redirects console output for subsequent Eval calls, the
// post-construction counterpart to WithOutput.
func (e *Engine) SetOutput(w io.Writer) {
	e.output = w
	e.heap.Output = w
}
