package runtime

import (
	"testing"

	"github.com/cwbudde/go-jsi/internal/ast"
)

func TestNewHeapReservesNullAndGlobal(t *testing.T) {
	h := NewHeap()
	if h.CurrentScope() != GlobalID {
		t.Errorf("fresh heap's current scope = %v, want GlobalID", h.CurrentScope())
	}
	if h.Global() == nil {
		t.Fatal("Global() returned nil")
	}
}

func TestGetPanicsOnNullID(t *testing.T) {
	h := NewHeap()
	defer func() {
		if recover() == nil {
			t.Error("Get(NullID) should panic")
		}
	}()
	h.Get(NullID)
}

func TestLookupVarFallsBackToGlobal(t *testing.T) {
	h := NewHeap()
	v := h.LookupVar("neverDeclared")
	of, name := v.Member()
	if of != GlobalID || name != "neverDeclared" {
		t.Errorf("LookupVar fallback = (%v, %q), want (GlobalID, \"neverDeclared\")", of, name)
	}
}

func TestLookupVarFindsBlockScope(t *testing.T) {
	h := NewHeap()
	h.Global().SetOwnProperty("x", Number(1))

	_, err := h.EnterBlockScope(func() (Interpreted, error) {
		h.Get(h.CurrentScope()).SetOwnProperty("x", Number(2))
		v := h.LookupVar("x")
		of, name := v.Member()
		if name != "x" {
			t.Errorf("resolved name = %q, want \"x\"", name)
		}
		if val, ok := h.Get(of).GetOwn("x"); !ok || val.Num != 2 {
			t.Errorf("inner block's own x = %+v, want 2", val)
		}
		return VOID, nil
	})
	if err != nil {
		t.Fatalf("EnterBlockScope returned error: %v", err)
	}

	if h.CurrentScope() != GlobalID {
		t.Errorf("scope was not restored after EnterBlockScope, got %v", h.CurrentScope())
	}
	if v, ok := h.Global().GetOwn("x"); !ok || v.Num != 1 {
		t.Errorf("global x leaked the block's write, got %+v", v)
	}
}

func TestDeclareHoistsVarsAndFunctions(t *testing.T) {
	h := NewHeap()
	h.ObjectProto = h.Alloc(NewObject(NullID))
	h.FunctionProto = h.Alloc(NewObject(h.ObjectProto))

	h.Declare(GlobalID, []string{"a"}, nil)
	v, ok := h.Global().GetOwn("a")
	if !ok || !v.IsUndefined() {
		t.Errorf("hoisted var a = %+v, want undefined", v)
	}

	h.Global().SetOwnProperty("a", Number(5))
	h.Declare(GlobalID, []string{"a"}, nil)
	v, _ = h.Global().GetOwn("a")
	if v.Num != 5 {
		t.Errorf("re-declaring an existing var should not clobber it, got %+v", v)
	}

	fn := ast.NewFunctionDeclaration(ast.NewIdentifier("f", nil), nil, ast.NewBlockStatement(nil, nil), nil, nil, nil)
	h.Declare(GlobalID, nil, []*ast.FunctionDeclaration{fn})
	fv, ok := h.Global().GetOwn("f")
	if !ok || !fv.IsRef() || !h.Get(fv.Ref).IsCallable() {
		t.Errorf("hoisted function f = %+v, want a callable closure", fv)
	}
}

func TestEnterActivationScopeBindsThisAndSavedScope(t *testing.T) {
	h := NewHeap()
	capturedScope := GlobalID
	this := Number(42)

	_, err := h.EnterActivationScope(capturedScope, this, func() (Interpreted, error) {
		if got := h.CurrentThis(); got.Num != 42 {
			t.Errorf("CurrentThis() = %+v, want 42", got)
		}
		return VOID, nil
	})
	if err != nil {
		t.Fatalf("EnterActivationScope returned error: %v", err)
	}
	if h.CurrentScope() != GlobalID {
		t.Errorf("scope not restored after EnterActivationScope, got %v", h.CurrentScope())
	}
}
