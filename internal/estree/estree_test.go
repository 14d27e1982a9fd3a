package estree

import (
	"testing"

	"github.com/cwbudde/go-jsi/internal/ast"
)

// roundTrip imports doc, exports the result, and imports that export
// again, returning both programs so a test can assert shape equality
// without depending on Export's exact key ordering.
func roundTrip(t *testing.T, doc string) (*ast.Program, *ast.Program) {
	t.Helper()
	first, err := Import(doc)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	out, err := Export(first)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	second, err := Import(out)
	if err != nil {
		t.Fatalf("re-Import of exported JSON failed: %v\njson: %s", err, out)
	}
	return first, second
}

func TestImportBasicProgram(t *testing.T) {
	doc := `{"type":"Program","body":[
		{"type":"VariableDeclaration","kind":"var","declarations":[
			{"type":"VariableDeclarator","id":{"type":"Identifier","name":"x"},
			 "init":{"type":"Literal","value":1}}
		]}
	]}`
	prog, err := Import(doc)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(prog.Body.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Body.Statements))
	}
	decl, ok := prog.Body.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("statement 0 is %T, want *ast.VariableDeclaration", prog.Body.Statements[0])
	}
	if len(decl.Declarations) != 1 || decl.Declarations[0].Name.Name != "x" {
		t.Errorf("unexpected declarator: %+v", decl.Declarations)
	}
	if len(prog.Variables) != 1 || prog.Variables[0] != "x" {
		t.Errorf("hoisted Variables = %v, want [\"x\"]", prog.Variables)
	}
}

func TestImportRejectsNonProgramRoot(t *testing.T) {
	if _, err := Import(`{"type":"Identifier","name":"x"}`); err == nil {
		t.Error("Import of a non-Program root should fail")
	}
}

func TestRoundTripPreservesStatementShape(t *testing.T) {
	doc := `{"type":"Program","body":[
		{"type":"FunctionDeclaration","id":{"type":"Identifier","name":"add"},
		 "params":[{"type":"Identifier","name":"a"},{"type":"Identifier","name":"b"}],
		 "body":{"type":"BlockStatement","body":[
			{"type":"ReturnStatement","argument":
				{"type":"BinaryExpression","operator":"+",
				 "left":{"type":"Identifier","name":"a"},
				 "right":{"type":"Identifier","name":"b"}}}
		 ]}},
		{"type":"ExpressionStatement","expression":
			{"type":"CallExpression","callee":{"type":"Identifier","name":"add"},
			 "arguments":[{"type":"Literal","value":1},{"type":"Literal","value":2}]}}
	]}`

	first, second := roundTrip(t, doc)

	if len(first.Body.Statements) != len(second.Body.Statements) {
		t.Fatalf("statement count changed across round trip: %d vs %d",
			len(first.Body.Statements), len(second.Body.Statements))
	}
	if len(first.Functions) != len(second.Functions) {
		t.Errorf("hoisted function count changed across round trip: %d vs %d",
			len(first.Functions), len(second.Functions))
	}

	fn1, ok := first.Body.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("first statement 0 is %T", first.Body.Statements[0])
	}
	fn2, ok := second.Body.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("second statement 0 is %T", second.Body.Statements[0])
	}
	if fn1.Name.Name != fn2.Name.Name {
		t.Errorf("function name changed: %q vs %q", fn1.Name.Name, fn2.Name.Name)
	}
	if len(fn1.Params) != len(fn2.Params) {
		t.Errorf("param count changed: %d vs %d", len(fn1.Params), len(fn2.Params))
	}
}

func TestRoundTripForInAndTry(t *testing.T) {
	doc := `{"type":"Program","body":[
		{"type":"ForInStatement",
		 "left":{"type":"VariableDeclaration","kind":"var","declarations":[
			{"type":"VariableDeclarator","id":{"type":"Identifier","name":"k"},"init":null}]},
		 "right":{"type":"Identifier","name":"o"},
		 "body":{"type":"BlockStatement","body":[]}},
		{"type":"TryStatement",
		 "block":{"type":"BlockStatement","body":[]},
		 "handler":{"type":"CatchClause",
			"param":{"type":"Identifier","name":"e"},
			"body":{"type":"BlockStatement","body":[]}},
		 "finalizer":null}
	]}`

	first, second := roundTrip(t, doc)

	forIn1, ok := first.Body.Statements[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("first statement 0 is %T", first.Body.Statements[0])
	}
	forIn2, ok := second.Body.Statements[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("second statement 0 is %T", second.Body.Statements[0])
	}
	if forIn1.Left.VarName != forIn2.Left.VarName {
		t.Errorf("for-in bound name changed: %q vs %q", forIn1.Left.VarName, forIn2.Left.VarName)
	}

	try2, ok := second.Body.Statements[1].(*ast.TryStatement)
	if !ok {
		t.Fatalf("second statement 1 is %T", second.Body.Statements[1])
	}
	if try2.Handler == nil || try2.Handler.Param == nil || try2.Handler.Param.Name != "e" {
		t.Errorf("catch parameter lost across round trip: %+v", try2.Handler)
	}
	if try2.Finalizer != nil {
		t.Errorf("finalizer should stay nil across round trip, got %+v", try2.Finalizer)
	}
}

func TestFunctionDeclarationMustBeNamed(t *testing.T) {
	doc := `{"type":"Program","body":[
		{"type":"FunctionDeclaration","id":null,"params":[],
		 "body":{"type":"BlockStatement","body":[]}}
	]}`
	if _, err := Import(doc); err == nil {
		t.Error("anonymous FunctionDeclaration should be rejected")
	}
}

func TestSparseArrayElision(t *testing.T) {
	doc := `{"type":"Program","body":[
		{"type":"ExpressionStatement","expression":
			{"type":"ArrayExpression","elements":[{"type":"Literal","value":1},null,{"type":"Literal","value":3}]}}
	]}`
	prog, err := Import(doc)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	exprStmt := prog.Body.Statements[0].(*ast.ExpressionStatement)
	arr := exprStmt.Expr.(*ast.ArrayExpression)
	if len(arr.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(arr.Elements))
	}
	if _, ok := arr.Elements[1].(*ast.NullLiteral); !ok {
		t.Errorf("elided element is %T, want *ast.NullLiteral", arr.Elements[1])
	}
}
