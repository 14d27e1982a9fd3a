package estree

import (
	"fmt"

	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/tidwall/gjson"
)

func parseBlockStatement(node gjson.Result) (*ast.BlockStatement, error) {
	stmts, err := parseStatementList(node.Get("body"))
	if err != nil {
		return nil, err
	}
	return ast.NewBlockStatement(stmts, locOf(node)), nil
}

func parseStatementList(arr gjson.Result) ([]ast.Statement, error) {
	items := arr.Array()
	out := make([]ast.Statement, 0, len(items))
	for _, item := range items {
		s, err := parseStatement(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// parseStatement turns one ESTree statement node into its internal/ast
// counterpart. FunctionDeclaration and the Program root compute their own
// Variables/Functions hoist sets here rather than leaving that to the
// evaluator, since spec §6 has the parser collaborator (this package, for
// a JSON-supplied AST) own that computation.
func parseStatement(node gjson.Result) (ast.Statement, error) {
	typ := node.Get("type").String()
	loc := locOf(node)

	switch typ {
	case "BlockStatement":
		return parseBlockStatement(node)

	case "ExpressionStatement":
		expr, err := parseExpression(node.Get("expression"))
		if err != nil {
			return nil, err
		}
		return ast.NewExpressionStatement(expr, loc), nil

	case "EmptyStatement":
		return ast.NewEmptyStatement(loc), nil

	case "VariableDeclaration":
		decls, err := parseVariableDeclarators(node.Get("declarations"))
		if err != nil {
			return nil, err
		}
		return ast.NewVariableDeclaration(decls, loc), nil

	case "FunctionDeclaration":
		id := node.Get("id")
		if !id.Exists() || id.Type == gjson.Null {
			return nil, fmt.Errorf("estree: function declarations must be named")
		}
		name := ast.NewIdentifier(id.Get("name").String(), locOf(id))
		params, err := parseIdentifierList(node.Get("params"))
		if err != nil {
			return nil, err
		}
		body, err := parseBlockStatement(node.Get("body"))
		if err != nil {
			return nil, err
		}
		vars, funcs := collectHoists(body.Statements)
		return ast.NewFunctionDeclaration(name, params, body, vars, funcs, loc), nil

	case "IfStatement":
		test, err := parseExpression(node.Get("test"))
		if err != nil {
			return nil, err
		}
		cons, err := parseStatement(node.Get("consequent"))
		if err != nil {
			return nil, err
		}
		var alt ast.Statement
		if n := node.Get("alternate"); n.Exists() && n.Type != gjson.Null {
			alt, err = parseStatement(n)
			if err != nil {
				return nil, err
			}
		}
		return ast.NewIfStatement(test, cons, alt, loc), nil

	case "SwitchStatement":
		disc, err := parseExpression(node.Get("discriminant"))
		if err != nil {
			return nil, err
		}
		cases, err := parseSwitchCases(node.Get("cases"))
		if err != nil {
			return nil, err
		}
		return ast.NewSwitchStatement(disc, cases, loc), nil

	case "ForStatement":
		var init ast.Statement
		var err error
		if n := node.Get("init"); n.Exists() && n.Type != gjson.Null {
			init, err = parseForInit(n)
			if err != nil {
				return nil, err
			}
		}
		var test, update ast.Expression
		if n := node.Get("test"); n.Exists() && n.Type != gjson.Null {
			if test, err = parseExpression(n); err != nil {
				return nil, err
			}
		}
		if n := node.Get("update"); n.Exists() && n.Type != gjson.Null {
			if update, err = parseExpression(n); err != nil {
				return nil, err
			}
		}
		body, err := parseStatement(node.Get("body"))
		if err != nil {
			return nil, err
		}
		return ast.NewForStatement(init, test, update, body, loc), nil

	case "WhileStatement":
		test, err := parseExpression(node.Get("test"))
		if err != nil {
			return nil, err
		}
		body, err := parseStatement(node.Get("body"))
		if err != nil {
			return nil, err
		}
		return ast.NewWhileStatement(test, body, loc), nil

	case "DoWhileStatement":
		body, err := parseStatement(node.Get("body"))
		if err != nil {
			return nil, err
		}
		test, err := parseExpression(node.Get("test"))
		if err != nil {
			return nil, err
		}
		return ast.NewDoWhileStatement(test, body, loc), nil

	case "ForInStatement":
		left, err := parseForInTarget(node.Get("left"))
		if err != nil {
			return nil, err
		}
		obj, err := parseExpression(node.Get("right"))
		if err != nil {
			return nil, err
		}
		body, err := parseStatement(node.Get("body"))
		if err != nil {
			return nil, err
		}
		return ast.NewForInStatement(left, obj, body, loc), nil

	case "LabeledStatement":
		body, err := parseStatement(node.Get("body"))
		if err != nil {
			return nil, err
		}
		return ast.NewLabeledStatement(node.Get("label").Get("name").String(), body, loc), nil

	case "ReturnStatement":
		var arg ast.Expression
		if n := node.Get("argument"); n.Exists() && n.Type != gjson.Null {
			var err error
			if arg, err = parseExpression(n); err != nil {
				return nil, err
			}
		}
		return ast.NewReturnStatement(arg, loc), nil

	case "BreakStatement":
		return ast.NewBreakStatement(labelName(node), loc), nil

	case "ContinueStatement":
		return ast.NewContinueStatement(labelName(node), loc), nil

	case "ThrowStatement":
		arg, err := parseExpression(node.Get("argument"))
		if err != nil {
			return nil, err
		}
		return ast.NewThrowStatement(arg, loc), nil

	case "TryStatement":
		block, err := parseBlockStatement(node.Get("block"))
		if err != nil {
			return nil, err
		}
		var handler *ast.CatchClause
		if h := node.Get("handler"); h.Exists() && h.Type != gjson.Null {
			var param *ast.Identifier
			if p := h.Get("param"); p.Exists() && p.Type != gjson.Null {
				param = ast.NewIdentifier(p.Get("name").String(), locOf(p))
			}
			hbody, err := parseBlockStatement(h.Get("body"))
			if err != nil {
				return nil, err
			}
			handler = &ast.CatchClause{Param: param, Body: hbody}
		}
		var finalizer *ast.BlockStatement
		if f := node.Get("finalizer"); f.Exists() && f.Type != gjson.Null {
			finalizer, err = parseBlockStatement(f)
			if err != nil {
				return nil, err
			}
		}
		return ast.NewTryStatement(block, handler, finalizer, loc), nil

	default:
		return nil, fmt.Errorf("estree: unsupported statement type %q", typ)
	}
}

func labelName(node gjson.Result) string {
	if n := node.Get("label"); n.Exists() && n.Type != gjson.Null {
		return n.Get("name").String()
	}
	return ""
}

func parseVariableDeclarators(arr gjson.Result) ([]ast.VariableDeclarator, error) {
	items := arr.Array()
	out := make([]ast.VariableDeclarator, 0, len(items))
	for _, item := range items {
		id := item.Get("id")
		if id.Get("type").String() != "Identifier" {
			return nil, fmt.Errorf("estree: destructuring variable declarators are not supported")
		}
		name := ast.NewIdentifier(id.Get("name").String(), locOf(id))
		var init ast.Expression
		if n := item.Get("init"); n.Exists() && n.Type != gjson.Null {
			var err error
			if init, err = parseExpression(n); err != nil {
				return nil, err
			}
		}
		out = append(out, ast.VariableDeclarator{Name: name, Init: init})
	}
	return out, nil
}

// parseForInit accepts either a VariableDeclaration or a bare expression
// wrapped as an ExpressionStatement, matching ast.ForStatement.Init's
// documented shape.
func parseForInit(node gjson.Result) (ast.Statement, error) {
	if node.Get("type").String() == "VariableDeclaration" {
		return parseStatement(node)
	}
	expr, err := parseExpression(node)
	if err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr, locOf(node)), nil
}

func parseForInTarget(node gjson.Result) (ast.ForInTarget, error) {
	if node.Get("type").String() == "VariableDeclaration" {
		decls := node.Get("declarations").Array()
		if len(decls) != 1 {
			return ast.ForInTarget{}, fmt.Errorf("estree: for-in declaration must bind exactly one name")
		}
		return ast.ForInTarget{VarName: decls[0].Get("id").Get("name").String()}, nil
	}
	target, err := parseExpression(node)
	if err != nil {
		return ast.ForInTarget{}, err
	}
	return ast.ForInTarget{Target: target}, nil
}

func parseSwitchCases(arr gjson.Result) ([]ast.SwitchCase, error) {
	items := arr.Array()
	out := make([]ast.SwitchCase, 0, len(items))
	for _, item := range items {
		var test ast.Expression
		if n := item.Get("test"); n.Exists() && n.Type != gjson.Null {
			var err error
			if test, err = parseExpression(n); err != nil {
				return nil, err
			}
		}
		stmts, err := parseStatementList(item.Get("consequent"))
		if err != nil {
			return nil, err
		}
		out = append(out, ast.SwitchCase{Test: test, Statements: stmts})
	}
	return out, nil
}

// collectHoists walks stmts (and recursively into nested blocks and
// control-flow bodies that share the same function scope) collecting
// every `var` name and function declaration a function body or Program
// hoists to its top, the function-scoped counterpart to the evaluator's
// own block-scoped collectBlockHoists. It does not descend into nested
// function bodies — those hoist into their own scope, computed separately
// when that FunctionDeclaration/FunctionExpression node is parsed.
func collectHoists(stmts []ast.Statement) (vars []string, funcs []*ast.FunctionDeclaration) {
	var walk func(s ast.Statement)
	walk = func(s ast.Statement) {
		switch n := s.(type) {
		case *ast.VariableDeclaration:
			for _, d := range n.Declarations {
				vars = append(vars, d.Name.Name)
			}
		case *ast.FunctionDeclaration:
			funcs = append(funcs, n)
		case *ast.BlockStatement:
			for _, c := range n.Statements {
				walk(c)
			}
		case *ast.IfStatement:
			walk(n.Consequent)
			if n.Alternate != nil {
				walk(n.Alternate)
			}
		case *ast.ForStatement:
			if n.Init != nil {
				walk(n.Init)
			}
			walk(n.Body)
		case *ast.WhileStatement:
			walk(n.Body)
		case *ast.DoWhileStatement:
			walk(n.Body)
		case *ast.ForInStatement:
			if n.Left.VarName != "" {
				vars = append(vars, n.Left.VarName)
			}
			walk(n.Body)
		case *ast.LabeledStatement:
			walk(n.Body)
		case *ast.SwitchStatement:
			for _, c := range n.Cases {
				for _, cs := range c.Statements {
					walk(cs)
				}
			}
		case *ast.TryStatement:
			for _, c := range n.Block.Statements {
				walk(c)
			}
			if n.Handler != nil {
				for _, c := range n.Handler.Body.Statements {
					walk(c)
				}
			}
			if n.Finalizer != nil {
				for _, c := range n.Finalizer.Statements {
					walk(c)
				}
			}
		}
	}
	for _, s := range stmts {
		walk(s)
	}
	return vars, funcs
}
