package estree

import (
	"fmt"

	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/tidwall/gjson"
)

// parseExpression turns one ESTree expression node into its internal/ast
// counterpart. Operator strings (`+`, `&&`, `++`, `+=`, ...) are reused
// verbatim as the corresponding ast.BinaryOperator/LogicalOperator/
// UnaryOperator/UpdateOperator/AssignmentOperator values — ESTree and
// spec §4.3's operator table happen to use identical spellings, so no
// translation table is needed.
func parseExpression(node gjson.Result) (ast.Expression, error) {
	typ := node.Get("type").String()
	loc := locOf(node)

	switch typ {
	case "Identifier":
		return ast.NewIdentifier(node.Get("name").String(), loc), nil

	case "Literal":
		if node.Get("regex").Exists() {
			return nil, fmt.Errorf("estree: regex literals are not supported")
		}
		v := node.Get("value")
		switch v.Type {
		case gjson.Null:
			return ast.NewNullLiteral(loc), nil
		case gjson.True:
			return ast.NewBooleanLiteral(true, loc), nil
		case gjson.False:
			return ast.NewBooleanLiteral(false, loc), nil
		case gjson.Number:
			return ast.NewNumberLiteral(v.Float(), loc), nil
		case gjson.String:
			return ast.NewStringLiteral(v.String(), loc), nil
		default:
			return nil, fmt.Errorf("estree: unsupported literal value kind %v", v.Type)
		}

	case "ThisExpression":
		return ast.NewThisExpression(loc), nil

	case "ArrayExpression":
		elems, err := parseExpressionList(node.Get("elements"))
		if err != nil {
			return nil, err
		}
		return ast.NewArrayExpression(elems, loc), nil

	case "ObjectExpression":
		props, err := parseObjectProperties(node.Get("properties"))
		if err != nil {
			return nil, err
		}
		return ast.NewObjectExpression(props, loc), nil

	case "FunctionExpression":
		return parseFunctionExpression(node)

	case "BinaryExpression":
		left, err := parseExpression(node.Get("left"))
		if err != nil {
			return nil, err
		}
		right, err := parseExpression(node.Get("right"))
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpression(ast.BinaryOperator(node.Get("operator").String()), left, right, loc), nil

	case "LogicalExpression":
		left, err := parseExpression(node.Get("left"))
		if err != nil {
			return nil, err
		}
		right, err := parseExpression(node.Get("right"))
		if err != nil {
			return nil, err
		}
		return ast.NewLogicalExpression(ast.LogicalOperator(node.Get("operator").String()), left, right, loc), nil

	case "UnaryExpression":
		arg, err := parseExpression(node.Get("argument"))
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(ast.UnaryOperator(node.Get("operator").String()), arg, loc), nil

	case "UpdateExpression":
		arg, err := parseExpression(node.Get("argument"))
		if err != nil {
			return nil, err
		}
		return ast.NewUpdateExpression(ast.UpdateOperator(node.Get("operator").String()), arg, node.Get("prefix").Bool(), loc), nil

	case "AssignmentExpression":
		left, err := parseExpression(node.Get("left"))
		if err != nil {
			return nil, err
		}
		right, err := parseExpression(node.Get("right"))
		if err != nil {
			return nil, err
		}
		return ast.NewAssignmentExpression(ast.AssignmentOperator(node.Get("operator").String()), left, right, loc), nil

	case "MemberExpression":
		obj, err := parseExpression(node.Get("object"))
		if err != nil {
			return nil, err
		}
		prop, err := parseExpression(node.Get("property"))
		if err != nil {
			return nil, err
		}
		return ast.NewMemberExpression(obj, prop, node.Get("computed").Bool(), loc), nil

	case "CallExpression":
		callee, err := parseExpression(node.Get("callee"))
		if err != nil {
			return nil, err
		}
		args, err := parseExpressionList(node.Get("arguments"))
		if err != nil {
			return nil, err
		}
		return ast.NewCallExpression(callee, args, loc), nil

	case "NewExpression":
		callee, err := parseExpression(node.Get("callee"))
		if err != nil {
			return nil, err
		}
		args, err := parseExpressionList(node.Get("arguments"))
		if err != nil {
			return nil, err
		}
		return ast.NewNewExpression(callee, args, loc), nil

	case "SequenceExpression":
		exprs, err := parseExpressionList(node.Get("expressions"))
		if err != nil {
			return nil, err
		}
		return ast.NewSequenceExpression(exprs, loc), nil

	case "ConditionalExpression":
		test, err := parseExpression(node.Get("test"))
		if err != nil {
			return nil, err
		}
		cons, err := parseExpression(node.Get("consequent"))
		if err != nil {
			return nil, err
		}
		alt, err := parseExpression(node.Get("alternate"))
		if err != nil {
			return nil, err
		}
		return ast.NewConditionalExpression(test, cons, alt, loc), nil

	default:
		return nil, fmt.Errorf("estree: unsupported expression type %q", typ)
	}
}

func parseExpressionList(arr gjson.Result) ([]ast.Expression, error) {
	items := arr.Array()
	out := make([]ast.Expression, 0, len(items))
	for _, item := range items {
		// A JSON `null` entry is a sparse-array elision; there is no
		// dedicated AST node for that, so it is treated as `null`.
		if item.Type == gjson.Null {
			out = append(out, ast.NewNullLiteral(nil))
			continue
		}
		e, err := parseExpression(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func parseObjectProperties(arr gjson.Result) ([]ast.ObjectProperty, error) {
	items := arr.Array()
	out := make([]ast.ObjectProperty, 0, len(items))
	for _, item := range items {
		if kind := item.Get("kind").String(); kind != "" && kind != "init" {
			return nil, fmt.Errorf("estree: object getter/setter properties are not supported")
		}
		key, err := parseExpression(item.Get("key"))
		if err != nil {
			return nil, err
		}
		value, err := parseExpression(item.Get("value"))
		if err != nil {
			return nil, err
		}
		out = append(out, ast.ObjectProperty{Key: key, Value: value, Computed: item.Get("computed").Bool()})
	}
	return out, nil
}

func parseIdentifierList(arr gjson.Result) ([]*ast.Identifier, error) {
	items := arr.Array()
	out := make([]*ast.Identifier, 0, len(items))
	for _, item := range items {
		if item.Get("type").String() != "Identifier" {
			return nil, fmt.Errorf("estree: destructuring/rest parameters are not supported")
		}
		out = append(out, ast.NewIdentifier(item.Get("name").String(), locOf(item)))
	}
	return out, nil
}

func parseFunctionExpression(node gjson.Result) (*ast.FunctionExpression, error) {
	var name *ast.Identifier
	if id := node.Get("id"); id.Exists() && id.Type != gjson.Null {
		name = ast.NewIdentifier(id.Get("name").String(), locOf(id))
	}
	params, err := parseIdentifierList(node.Get("params"))
	if err != nil {
		return nil, err
	}
	body, err := parseBlockStatement(node.Get("body"))
	if err != nil {
		return nil, err
	}
	vars, funcs := collectHoists(body.Statements)
	return ast.NewFunctionExpression(name, params, body, vars, funcs, locOf(node)), nil
}
