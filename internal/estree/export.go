package estree

import (
	"fmt"

	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/tidwall/sjson"
)

// Export renders prog back to ESTree-shaped JSON, the reverse of Import.
// Used by cmd/jsi's --json-ast debug dump (piped through tidwall/pretty
// for display) and by this package's own round-trip test. Locations are
// dropped on export: nothing downstream of a dump needs them back, and a
// program built by hand (rather than imported) may not carry any.
func Export(prog *ast.Program) (string, error) {
	body, err := exportStatementList(prog.Body.Statements)
	if err != nil {
		return "", err
	}
	out, err := sjson.Set("{}", "type", "Program")
	if err != nil {
		return "", err
	}
	return sjson.SetRaw(out, "body", body)
}

func exportStatementList(stmts []ast.Statement) (string, error) {
	out := "[]"
	for i, s := range stmts {
		raw, err := exportStatement(s)
		if err != nil {
			return "", err
		}
		out, err = sjson.SetRaw(out, fmt.Sprintf("%d", i), raw)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

func exportExpressionList(exprs []ast.Expression) (string, error) {
	out := "[]"
	for i, e := range exprs {
		raw, err := exportExpression(e)
		if err != nil {
			return "", err
		}
		out, err = sjson.SetRaw(out, fmt.Sprintf("%d", i), raw)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

func exportStatement(s ast.Statement) (string, error) {
	switch n := s.(type) {
	case *ast.BlockStatement:
		body, err := exportStatementList(n.Statements)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "BlockStatement")
		return sjson.SetRaw(out, "body", body)

	case *ast.ExpressionStatement:
		expr, err := exportExpression(n.Expr)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "ExpressionStatement")
		return sjson.SetRaw(out, "expression", expr)

	case *ast.EmptyStatement:
		return sjson.Set("{}", "type", "EmptyStatement")

	case *ast.VariableDeclaration:
		out, _ := sjson.Set("{}", "type", "VariableDeclaration")
		out, _ = sjson.Set(out, "kind", "var")
		decls := "[]"
		for i, d := range n.Declarations {
			dec, err := sjson.Set("{}", "type", "VariableDeclarator")
			if err != nil {
				return "", err
			}
			id, err := exportExpression(d.Name)
			if err != nil {
				return "", err
			}
			dec, err = sjson.SetRaw(dec, "id", id)
			if err != nil {
				return "", err
			}
			if d.Init != nil {
				init, err := exportExpression(d.Init)
				if err != nil {
					return "", err
				}
				dec, err = sjson.SetRaw(dec, "init", init)
				if err != nil {
					return "", err
				}
			} else {
				dec, _ = sjson.Set(dec, "init", nil)
			}
			decls, err = sjson.SetRaw(decls, fmt.Sprintf("%d", i), dec)
			if err != nil {
				return "", err
			}
		}
		return sjson.SetRaw(out, "declarations", decls)

	case *ast.FunctionDeclaration:
		return exportFunction("FunctionDeclaration", n.Name, n.Params, n.Body)

	case *ast.IfStatement:
		test, err := exportExpression(n.Test)
		if err != nil {
			return "", err
		}
		cons, err := exportStatement(n.Consequent)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "IfStatement")
		out, _ = sjson.SetRaw(out, "test", test)
		out, err = sjson.SetRaw(out, "consequent", cons)
		if err != nil {
			return "", err
		}
		if n.Alternate != nil {
			alt, err := exportStatement(n.Alternate)
			if err != nil {
				return "", err
			}
			return sjson.SetRaw(out, "alternate", alt)
		}
		return sjson.Set(out, "alternate", nil)

	case *ast.SwitchStatement:
		disc, err := exportExpression(n.Discriminant)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "SwitchStatement")
		out, _ = sjson.SetRaw(out, "discriminant", disc)
		cases := "[]"
		for i, c := range n.Cases {
			cs, _ := sjson.Set("{}", "type", "SwitchCase")
			if c.Test != nil {
				t, err := exportExpression(c.Test)
				if err != nil {
					return "", err
				}
				cs, err = sjson.SetRaw(cs, "test", t)
				if err != nil {
					return "", err
				}
			} else {
				cs, _ = sjson.Set(cs, "test", nil)
			}
			stmts, err := exportStatementList(c.Statements)
			if err != nil {
				return "", err
			}
			cs, err = sjson.SetRaw(cs, "consequent", stmts)
			if err != nil {
				return "", err
			}
			cases, err = sjson.SetRaw(cases, fmt.Sprintf("%d", i), cs)
			if err != nil {
				return "", err
			}
		}
		return sjson.SetRaw(out, "cases", cases)

	case *ast.ForStatement:
		out, _ := sjson.Set("{}", "type", "ForStatement")
		var err error
		if n.Init != nil {
			init, err := exportStatement(n.Init)
			if err != nil {
				return "", err
			}
			out, err = sjson.SetRaw(out, "init", init)
			if err != nil {
				return "", err
			}
		} else {
			out, _ = sjson.Set(out, "init", nil)
		}
		if n.Test != nil {
			test, err := exportExpression(n.Test)
			if err != nil {
				return "", err
			}
			out, err = sjson.SetRaw(out, "test", test)
			if err != nil {
				return "", err
			}
		} else {
			out, _ = sjson.Set(out, "test", nil)
		}
		if n.Update != nil {
			upd, err := exportExpression(n.Update)
			if err != nil {
				return "", err
			}
			out, err = sjson.SetRaw(out, "update", upd)
			if err != nil {
				return "", err
			}
		} else {
			out, _ = sjson.Set(out, "update", nil)
		}
		body, err := exportStatement(n.Body)
		if err != nil {
			return "", err
		}
		return sjson.SetRaw(out, "body", body)

	case *ast.WhileStatement:
		test, err := exportExpression(n.Test)
		if err != nil {
			return "", err
		}
		body, err := exportStatement(n.Body)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "WhileStatement")
		out, _ = sjson.SetRaw(out, "test", test)
		return sjson.SetRaw(out, "body", body)

	case *ast.DoWhileStatement:
		body, err := exportStatement(n.Body)
		if err != nil {
			return "", err
		}
		test, err := exportExpression(n.Test)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "DoWhileStatement")
		out, _ = sjson.SetRaw(out, "body", body)
		return sjson.SetRaw(out, "test", test)

	case *ast.ForInStatement:
		out, _ := sjson.Set("{}", "type", "ForInStatement")
		var left string
		if n.Left.VarName != "" {
			decl, _ := sjson.Set("{}", "type", "VariableDeclaration")
			decl, _ = sjson.Set(decl, "kind", "var")
			id, _ := sjson.Set("{}", "type", "Identifier")
			id, _ = sjson.Set(id, "name", n.Left.VarName)
			dtor, _ := sjson.Set("{}", "type", "VariableDeclarator")
			dtor, _ = sjson.SetRaw(dtor, "id", id)
			dtor, _ = sjson.Set(dtor, "init", nil)
			decls, _ := sjson.SetRaw("[]", "0", dtor)
			left, _ = sjson.SetRaw(decl, "declarations", decls)
		} else {
			var err error
			left, err = exportExpression(n.Left.Target)
			if err != nil {
				return "", err
			}
		}
		out, err := sjson.SetRaw(out, "left", left)
		if err != nil {
			return "", err
		}
		right, err := exportExpression(n.Object)
		if err != nil {
			return "", err
		}
		out, _ = sjson.SetRaw(out, "right", right)
		body, err := exportStatement(n.Body)
		if err != nil {
			return "", err
		}
		return sjson.SetRaw(out, "body", body)

	case *ast.LabeledStatement:
		label, _ := sjson.Set("{}", "type", "Identifier")
		label, _ = sjson.Set(label, "name", n.Label)
		body, err := exportStatement(n.Body)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "LabeledStatement")
		out, _ = sjson.SetRaw(out, "label", label)
		return sjson.SetRaw(out, "body", body)

	case *ast.ReturnStatement:
		out, _ := sjson.Set("{}", "type", "ReturnStatement")
		if n.Argument != nil {
			arg, err := exportExpression(n.Argument)
			if err != nil {
				return "", err
			}
			return sjson.SetRaw(out, "argument", arg)
		}
		return sjson.Set(out, "argument", nil)

	case *ast.BreakStatement:
		return exportLabeledJump("BreakStatement", n.Label)

	case *ast.ContinueStatement:
		return exportLabeledJump("ContinueStatement", n.Label)

	case *ast.ThrowStatement:
		arg, err := exportExpression(n.Argument)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "ThrowStatement")
		return sjson.SetRaw(out, "argument", arg)

	case *ast.TryStatement:
		block, err := exportStatement(n.Block)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "TryStatement")
		out, err = sjson.SetRaw(out, "block", block)
		if err != nil {
			return "", err
		}
		if n.Handler != nil {
			h, _ := sjson.Set("{}", "type", "CatchClause")
			if n.Handler.Param != nil {
				param, err := exportExpression(n.Handler.Param)
				if err != nil {
					return "", err
				}
				h, _ = sjson.SetRaw(h, "param", param)
			} else {
				h, _ = sjson.Set(h, "param", nil)
			}
			hbody, err := exportStatement(n.Handler.Body)
			if err != nil {
				return "", err
			}
			h, _ = sjson.SetRaw(h, "body", hbody)
			out, err = sjson.SetRaw(out, "handler", h)
			if err != nil {
				return "", err
			}
		} else {
			out, _ = sjson.Set(out, "handler", nil)
		}
		if n.Finalizer != nil {
			fin, err := exportStatement(n.Finalizer)
			if err != nil {
				return "", err
			}
			return sjson.SetRaw(out, "finalizer", fin)
		}
		return sjson.Set(out, "finalizer", nil)

	default:
		return "", fmt.Errorf("estree: unsupported statement node %T", s)
	}
}

func exportLabeledJump(typ, label string) (string, error) {
	out, _ := sjson.Set("{}", "type", typ)
	if label == "" {
		return sjson.Set(out, "label", nil)
	}
	l, _ := sjson.Set("{}", "type", "Identifier")
	l, _ = sjson.Set(l, "name", label)
	return sjson.SetRaw(out, "label", l)
}

func exportFunction(typ string, name *ast.Identifier, params []*ast.Identifier, body *ast.BlockStatement) (string, error) {
	out, _ := sjson.Set("{}", "type", typ)
	var err error
	if name != nil {
		id, err := exportExpression(name)
		if err != nil {
			return "", err
		}
		out, err = sjson.SetRaw(out, "id", id)
		if err != nil {
			return "", err
		}
	} else {
		out, _ = sjson.Set(out, "id", nil)
	}
	paramList := "[]"
	for i, p := range params {
		raw, err := exportExpression(p)
		if err != nil {
			return "", err
		}
		paramList, err = sjson.SetRaw(paramList, fmt.Sprintf("%d", i), raw)
		if err != nil {
			return "", err
		}
	}
	out, err = sjson.SetRaw(out, "params", paramList)
	if err != nil {
		return "", err
	}
	b, err := exportStatement(body)
	if err != nil {
		return "", err
	}
	return sjson.SetRaw(out, "body", b)
}

func exportExpression(e ast.Expression) (string, error) {
	switch n := e.(type) {
	case *ast.Identifier:
		out, _ := sjson.Set("{}", "type", "Identifier")
		return sjson.Set(out, "name", n.Name)

	case *ast.NumberLiteral:
		out, _ := sjson.Set("{}", "type", "Literal")
		return sjson.Set(out, "value", n.Value)

	case *ast.StringLiteral:
		out, _ := sjson.Set("{}", "type", "Literal")
		return sjson.Set(out, "value", n.Value)

	case *ast.BooleanLiteral:
		out, _ := sjson.Set("{}", "type", "Literal")
		return sjson.Set(out, "value", n.Value)

	case *ast.NullLiteral:
		out, _ := sjson.Set("{}", "type", "Literal")
		return sjson.Set(out, "value", nil)

	case *ast.ThisExpression:
		return sjson.Set("{}", "type", "ThisExpression")

	case *ast.ArrayExpression:
		elems, err := exportExpressionList(n.Elements)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "ArrayExpression")
		return sjson.SetRaw(out, "elements", elems)

	case *ast.ObjectExpression:
		out, _ := sjson.Set("{}", "type", "ObjectExpression")
		props := "[]"
		for i, p := range n.Properties {
			prop, err := sjson.Set("{}", "type", "Property")
			if err != nil {
				return "", err
			}
			key, err := exportExpression(p.Key)
			if err != nil {
				return "", err
			}
			prop, _ = sjson.SetRaw(prop, "key", key)
			val, err := exportExpression(p.Value)
			if err != nil {
				return "", err
			}
			prop, _ = sjson.SetRaw(prop, "value", val)
			prop, _ = sjson.Set(prop, "computed", p.Computed)
			prop, _ = sjson.Set(prop, "kind", "init")
			props, err = sjson.SetRaw(props, fmt.Sprintf("%d", i), prop)
			if err != nil {
				return "", err
			}
		}
		return sjson.SetRaw(out, "properties", props)

	case *ast.FunctionExpression:
		return exportFunction("FunctionExpression", n.Name, n.Params, n.Body)

	case *ast.BinaryExpression:
		return exportBinaryLike("BinaryExpression", string(n.Operator), n.Left, n.Right)

	case *ast.LogicalExpression:
		return exportBinaryLike("LogicalExpression", string(n.Operator), n.Left, n.Right)

	case *ast.UnaryExpression:
		arg, err := exportExpression(n.Argument)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "UnaryExpression")
		out, _ = sjson.Set(out, "operator", string(n.Operator))
		out, _ = sjson.Set(out, "prefix", true)
		return sjson.SetRaw(out, "argument", arg)

	case *ast.UpdateExpression:
		arg, err := exportExpression(n.Argument)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "UpdateExpression")
		out, _ = sjson.Set(out, "operator", string(n.Operator))
		out, _ = sjson.Set(out, "prefix", n.Prefix)
		return sjson.SetRaw(out, "argument", arg)

	case *ast.AssignmentExpression:
		return exportBinaryLike("AssignmentExpression", string(n.Operator), n.Left, n.Right)

	case *ast.MemberExpression:
		obj, err := exportExpression(n.Object)
		if err != nil {
			return "", err
		}
		prop, err := exportExpression(n.Property)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "MemberExpression")
		out, _ = sjson.Set(out, "computed", n.Computed)
		out, _ = sjson.SetRaw(out, "object", obj)
		return sjson.SetRaw(out, "property", prop)

	case *ast.CallExpression:
		return exportCallLike("CallExpression", n.Callee, n.Arguments)

	case *ast.NewExpression:
		return exportCallLike("NewExpression", n.Callee, n.Arguments)

	case *ast.SequenceExpression:
		exprs, err := exportExpressionList(n.Expressions)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "SequenceExpression")
		return sjson.SetRaw(out, "expressions", exprs)

	case *ast.ConditionalExpression:
		test, err := exportExpression(n.Test)
		if err != nil {
			return "", err
		}
		cons, err := exportExpression(n.Consequent)
		if err != nil {
			return "", err
		}
		alt, err := exportExpression(n.Alternate)
		if err != nil {
			return "", err
		}
		out, _ := sjson.Set("{}", "type", "ConditionalExpression")
		out, _ = sjson.SetRaw(out, "test", test)
		out, _ = sjson.SetRaw(out, "consequent", cons)
		return sjson.SetRaw(out, "alternate", alt)

	default:
		return "", fmt.Errorf("estree: unsupported expression node %T", e)
	}
}

func exportBinaryLike(typ, op string, left, right ast.Expression) (string, error) {
	l, err := exportExpression(left)
	if err != nil {
		return "", err
	}
	r, err := exportExpression(right)
	if err != nil {
		return "", err
	}
	out, _ := sjson.Set("{}", "type", typ)
	out, _ = sjson.Set(out, "operator", op)
	out, _ = sjson.SetRaw(out, "left", l)
	return sjson.SetRaw(out, "right", r)
}

func exportCallLike(typ string, callee ast.Expression, args []ast.Expression) (string, error) {
	c, err := exportExpression(callee)
	if err != nil {
		return "", err
	}
	arglist, err := exportExpressionList(args)
	if err != nil {
		return "", err
	}
	out, _ := sjson.Set("{}", "type", typ)
	out, _ = sjson.SetRaw(out, "callee", c)
	return sjson.SetRaw(out, "arguments", arglist)
}
