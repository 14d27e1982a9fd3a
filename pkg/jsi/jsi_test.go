package jsi

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// evalJSON is the shared test helper: a fresh Engine per call, evaluating
// one ESTree Program document and returning its completion value and
// captured console output, mirroring the teacher's testEvalWithOutput
// shape (internal/interp/interpreter_basic_test.go) adapted to this
// package's JSON-document entry point since there is no lexer/parser to
// hand source text to.
func evalJSON(t *testing.T, doc string) (string, string) {
	t.Helper()
	engine := New()
	res, err := engine.EvalJSON(doc)
	if err != nil {
		t.Fatalf("EvalJSON(%s) returned error: %v", doc, err)
	}
	return res.Value, res.Output
}

func program(body string) string {
	return `{"type":"Program","body":[` + body + `]}`
}

func TestVarDeclarationAndArithmetic(t *testing.T) {
	doc := program(`
		{"type":"VariableDeclaration","declarations":[
			{"type":"VariableDeclarator","id":{"type":"Identifier","name":"x"},
			 "init":{"type":"Literal","value":2}}
		],"kind":"var"},
		{"type":"ExpressionStatement","expression":
			{"type":"BinaryExpression","operator":"+",
			 "left":{"type":"Identifier","name":"x"},
			 "right":{"type":"Literal","value":3}}}
	`)
	value, _ := evalJSON(t, doc)
	if value != "5" {
		t.Errorf("got completion value %q, want \"5\"", value)
	}
}

func TestFactorialRecursion(t *testing.T) {
	// function fact(n) { if (n < 2) return 1; return n * fact(n - 1); }
	// fact(5)
	doc := program(`
		{"type":"FunctionDeclaration","id":{"type":"Identifier","name":"fact"},
		 "params":[{"type":"Identifier","name":"n"}],
		 "body":{"type":"BlockStatement","body":[
			{"type":"IfStatement",
			 "test":{"type":"BinaryExpression","operator":"<",
				"left":{"type":"Identifier","name":"n"},
				"right":{"type":"Literal","value":2}},
			 "consequent":{"type":"ReturnStatement","argument":{"type":"Literal","value":1}}},
			{"type":"ReturnStatement","argument":
				{"type":"BinaryExpression","operator":"*",
				 "left":{"type":"Identifier","name":"n"},
				 "right":{"type":"CallExpression",
					"callee":{"type":"Identifier","name":"fact"},
					"arguments":[{"type":"BinaryExpression","operator":"-",
						"left":{"type":"Identifier","name":"n"},
						"right":{"type":"Literal","value":1}}]}}}
		 ]}},
		{"type":"ExpressionStatement","expression":
			{"type":"CallExpression","callee":{"type":"Identifier","name":"fact"},
			 "arguments":[{"type":"Literal","value":5}]}}
	`)
	value, _ := evalJSON(t, doc)
	if value != "120" {
		t.Errorf("fact(5) = %q, want \"120\"", value)
	}
}

func TestArrayPushAndLength(t *testing.T) {
	doc := program(`
		{"type":"VariableDeclaration","declarations":[
			{"type":"VariableDeclarator","id":{"type":"Identifier","name":"a"},
			 "init":{"type":"ArrayExpression","elements":[
				{"type":"Literal","value":1},{"type":"Literal","value":2}]}}
		],"kind":"var"},
		{"type":"ExpressionStatement","expression":
			{"type":"CallExpression",
			 "callee":{"type":"MemberExpression","computed":false,
				"object":{"type":"Identifier","name":"a"},
				"property":{"type":"Identifier","name":"push"}},
			 "arguments":[{"type":"Literal","value":3}]}},
		{"type":"ExpressionStatement","expression":
			{"type":"MemberExpression","computed":false,
			 "object":{"type":"Identifier","name":"a"},
			 "property":{"type":"Identifier","name":"length"}}}
	`)
	value, _ := evalJSON(t, doc)
	if value != "3" {
		t.Errorf("a.length after push = %q, want \"3\"", value)
	}
}

func TestForInCollectsOwnKeys(t *testing.T) {
	// var o = {a: 1, b: 2}; var out = "";
	// for (var k in o) out += k;
	// out
	doc := program(`
		{"type":"VariableDeclaration","declarations":[
			{"type":"VariableDeclarator","id":{"type":"Identifier","name":"o"},
			 "init":{"type":"ObjectExpression","properties":[
				{"type":"Property","kind":"init","computed":false,
				 "key":{"type":"Identifier","name":"a"},"value":{"type":"Literal","value":1}},
				{"type":"Property","kind":"init","computed":false,
				 "key":{"type":"Identifier","name":"b"},"value":{"type":"Literal","value":2}}
			 ]}},
			{"type":"VariableDeclarator","id":{"type":"Identifier","name":"out"},
			 "init":{"type":"Literal","value":""}}
		],"kind":"var"},
		{"type":"ForInStatement",
		 "left":{"type":"VariableDeclaration","kind":"var","declarations":[
			{"type":"VariableDeclarator","id":{"type":"Identifier","name":"k"},"init":null}]},
		 "right":{"type":"Identifier","name":"o"},
		 "body":{"type":"ExpressionStatement","expression":
			{"type":"AssignmentExpression","operator":"+=",
			 "left":{"type":"Identifier","name":"out"},
			 "right":{"type":"Identifier","name":"k"}}}},
		{"type":"ExpressionStatement","expression":{"type":"Identifier","name":"out"}}
	`)
	value, _ := evalJSON(t, doc)
	if value != "ab" {
		t.Errorf("for-in collected keys %q, want \"ab\"", value)
	}
}

func TestTryCatchFinally(t *testing.T) {
	// var log = "";
	// try { throw "boom"; } catch (e) { log += "c:" + e; } finally { log += "f"; }
	// log
	doc := program(`
		{"type":"VariableDeclaration","declarations":[
			{"type":"VariableDeclarator","id":{"type":"Identifier","name":"log"},
			 "init":{"type":"Literal","value":""}}
		],"kind":"var"},
		{"type":"TryStatement",
		 "block":{"type":"BlockStatement","body":[
			{"type":"ThrowStatement","argument":{"type":"Literal","value":"boom"}}]},
		 "handler":{"type":"CatchClause",
			"param":{"type":"Identifier","name":"e"},
			"body":{"type":"BlockStatement","body":[
				{"type":"ExpressionStatement","expression":
					{"type":"AssignmentExpression","operator":"+=",
					 "left":{"type":"Identifier","name":"log"},
					 "right":{"type":"BinaryExpression","operator":"+",
						"left":{"type":"Literal","value":"c:"},
						"right":{"type":"Identifier","name":"e"}}}}]}},
		 "finalizer":{"type":"BlockStatement","body":[
			{"type":"ExpressionStatement","expression":
				{"type":"AssignmentExpression","operator":"+=",
				 "left":{"type":"Identifier","name":"log"},
				 "right":{"type":"Literal","value":"f"}}}]}},
		{"type":"ExpressionStatement","expression":{"type":"Identifier","name":"log"}}
	`)
	value, _ := evalJSON(t, doc)
	if value != "c:boomf" {
		t.Errorf("try/catch/finally log = %q, want \"c:boomf\"", value)
	}
}

func TestNewPrototypeInstanceof(t *testing.T) {
	// function Point(x) { this.x = x; }
	// var p = new Point(7);
	// p instanceof Point
	doc := program(`
		{"type":"FunctionDeclaration","id":{"type":"Identifier","name":"Point"},
		 "params":[{"type":"Identifier","name":"x"}],
		 "body":{"type":"BlockStatement","body":[
			{"type":"ExpressionStatement","expression":
				{"type":"AssignmentExpression","operator":"=",
				 "left":{"type":"MemberExpression","computed":false,
					"object":{"type":"ThisExpression"},
					"property":{"type":"Identifier","name":"x"}},
				 "right":{"type":"Identifier","name":"x"}}}
		 ]}},
		{"type":"VariableDeclaration","declarations":[
			{"type":"VariableDeclarator","id":{"type":"Identifier","name":"p"},
			 "init":{"type":"NewExpression",
				"callee":{"type":"Identifier","name":"Point"},
				"arguments":[{"type":"Literal","value":7}]}}
		],"kind":"var"},
		{"type":"ExpressionStatement","expression":
			{"type":"LogicalExpression","operator":"&&",
			 "left":{"type":"BinaryExpression","operator":"===",
				"left":{"type":"MemberExpression","computed":false,
					"object":{"type":"Identifier","name":"p"},
					"property":{"type":"Identifier","name":"x"}},
				"right":{"type":"Literal","value":7}},
			 "right":{"type":"BinaryExpression","operator":"instanceof",
				"left":{"type":"Identifier","name":"p"},
				"right":{"type":"Identifier","name":"Point"}}}}
	`)
	value, _ := evalJSON(t, doc)
	if value != "true" {
		t.Errorf("p.x === 7 && p instanceof Point = %q, want \"true\"", value)
	}
}

func TestConsoleOutputCapture(t *testing.T) {
	doc := program(`
		{"type":"ExpressionStatement","expression":
			{"type":"CallExpression",
			 "callee":{"type":"MemberExpression","computed":false,
				"object":{"type":"Identifier","name":"console"},
				"property":{"type":"Identifier","name":"log"}},
			 "arguments":[{"type":"Literal","value":"hi"}]}}
	`)
	_, output := evalJSON(t, doc)
	if !strings.Contains(output, "hi") {
		t.Errorf("console.log output %q does not contain \"hi\"", output)
	}
}

func TestGlobalReadBack(t *testing.T) {
	engine := New()
	doc := program(`
		{"type":"VariableDeclaration","declarations":[
			{"type":"VariableDeclarator","id":{"type":"Identifier","name":"answer"},
			 "init":{"type":"Literal","value":42}}
		],"kind":"var"}
	`)
	if _, err := engine.EvalJSON(doc); err != nil {
		t.Fatalf("EvalJSON returned error: %v", err)
	}
	value, ok := engine.Global("answer")
	if !ok {
		t.Fatalf("Global(\"answer\") not found")
	}
	if value != "42" {
		t.Errorf("Global(\"answer\") = %q, want \"42\"", value)
	}
	if _, ok := engine.Global("neverDeclared"); ok {
		t.Errorf("Global(\"neverDeclared\") reported found")
	}
}

func TestBindHostFunc(t *testing.T) {
	engine := New()
	engine.BindHostFunc("double", 1, func(h *runtime.Heap, this runtime.ObjectId, args []runtime.Value) (runtime.Value, error) {
		n := 0.0
		if len(args) > 0 {
			n = runtime.ToNumberCoerced(h, args[0])
		}
		return runtime.Number(n * 2), nil
	})

	doc := program(`
		{"type":"ExpressionStatement","expression":
			{"type":"CallExpression","callee":{"type":"Identifier","name":"double"},
			 "arguments":[{"type":"Literal","value":21}]}}
	`)
	res, err := engine.EvalJSON(doc)
	if err != nil {
		t.Fatalf("EvalJSON returned error: %v", err)
	}
	if res.Value != "42" {
		t.Errorf("double(21) = %q, want \"42\"", res.Value)
	}
}
