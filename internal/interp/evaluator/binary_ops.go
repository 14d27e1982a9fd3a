package evaluator

import (
	"github.com/cwbudde/go-jsi/internal/ast"
	"github.com/cwbudde/go-jsi/internal/interp/exception"
	"github.com/cwbudde/go-jsi/internal/interp/runtime"
)

// toPrimitiveString and toPrimitiveNumber delegate to runtime.Stringify /
// runtime.ToNumberCoerced, kept as Evaluator methods only so call sites
// elsewhere in this package read uniformly with the rest of the
// evaluation rules.
func (e *Evaluator) toPrimitiveString(h *runtime.Heap, v runtime.Value) string {
	return runtime.Stringify(h, v)
}

func (e *Evaluator) toPrimitiveNumber(h *runtime.Heap, v runtime.Value) float64 {
	return runtime.ToNumberCoerced(h, v)
}

func (e *Evaluator) evalBinary(h *runtime.Heap, expr *ast.BinaryExpression) (runtime.Interpreted, error) {
	left, err := e.evalValue(h, expr.Left)
	if err != nil {
		return runtime.VOID, err
	}
	right, err := e.evalValue(h, expr.Right)
	if err != nil {
		return runtime.VOID, err
	}
	v, err := applyBinaryOp(h, expr.Operator, left, right)
	if err != nil {
		return runtime.VOID, err
	}
	return runtime.Val(v), nil
}

// applyBinaryOp is the full operator table (spec §4.3): `+` prefers string
// concatenation whenever either operand is a string (object operands are
// first reduced via runtime.Stringify/ToNumberCoerced); comparisons and
// the remaining arithmetic operators coerce to number; bitwise operators
// mask the shift count to 5 bits and coerce via Int32/Uint32; `in` and
// `instanceof` inspect the heap directly. Exposed at package level (not
// just as an Evaluator method) so evalAssignment's compound forms can
// reuse it with operand values already in hand.
func applyBinaryOp(h *runtime.Heap, op ast.BinaryOperator, left, right runtime.Value) (runtime.Value, error) {
	str := func(v runtime.Value) string { return runtime.Stringify(h, v) }
	num := func(v runtime.Value) float64 { return runtime.ToNumberCoerced(h, v) }

	switch op {
	case ast.OpAdd:
		if left.Kind == runtime.KindString || right.Kind == runtime.KindString {
			return runtime.String(str(left) + str(right)), nil
		}
		if left.IsRef() || right.IsRef() {
			lo, ro := left.IsRef() && isStringyRef(h, left), right.IsRef() && isStringyRef(h, right)
			if lo || ro {
				return runtime.String(str(left) + str(right)), nil
			}
		}
		return runtime.Number(num(left) + num(right)), nil
	case ast.OpSub:
		return runtime.Number(num(left) - num(right)), nil
	case ast.OpMul:
		return runtime.Number(num(left) * num(right)), nil
	case ast.OpDiv:
		return runtime.Number(num(left) / num(right)), nil
	case ast.OpMod:
		return runtime.Number(jsMod(num(left), num(right))), nil
	case ast.OpLess:
		return compareOp(left, right, num, str, func(a, b float64) bool { return a < b }, func(a, b string) bool { return a < b }), nil
	case ast.OpGreater:
		return compareOp(left, right, num, str, func(a, b float64) bool { return a > b }, func(a, b string) bool { return a > b }), nil
	case ast.OpLessEq:
		return compareOp(left, right, num, str, func(a, b float64) bool { return a <= b }, func(a, b string) bool { return a <= b }), nil
	case ast.OpGreaterEq:
		return compareOp(left, right, num, str, func(a, b float64) bool { return a >= b }, func(a, b string) bool { return a >= b }), nil
	case ast.OpStrictEq:
		return runtime.Bool(runtime.StrictEquals(left, right)), nil
	case ast.OpStrictNeq:
		return runtime.Bool(!runtime.StrictEquals(left, right)), nil
	case ast.OpLooseEq:
		return runtime.Bool(looseEquals(h, left, right)), nil
	case ast.OpLooseNeq:
		return runtime.Bool(!looseEquals(h, left, right)), nil
	case ast.OpBitAnd:
		return runtime.Number(float64(left.ToInt32() & right.ToInt32())), nil
	case ast.OpBitOr:
		return runtime.Number(float64(left.ToInt32() | right.ToInt32())), nil
	case ast.OpBitXor:
		return runtime.Number(float64(left.ToInt32() ^ right.ToInt32())), nil
	case ast.OpShl:
		return runtime.Number(float64(left.ToInt32() << (right.ToUint32() & 31))), nil
	case ast.OpShr:
		return runtime.Number(float64(left.ToInt32() >> (right.ToUint32() & 31))), nil
	case ast.OpUShr:
		return runtime.Number(float64(left.ToUint32() >> (right.ToUint32() & 31))), nil
	case ast.OpIn:
		if !right.IsRef() {
			return runtime.Value{}, exception.NewType(h.CurrentLoc, "cannot use 'in' operator on a non-object")
		}
		return runtime.Bool(runtime.HasProperty(h, right.Ref, left.ToPrimitiveString())), nil
	case ast.OpInstance:
		return instanceOf(h, left, right)
	default:
		return runtime.Value{}, exception.NewInternal("evaluator: unknown binary operator %q", op)
	}
}

// isStringyRef reports whether a Ref value already behaves like a string
// for `+`'s mixed-operand rule (a boxed String payload).
func isStringyRef(h *runtime.Heap, v runtime.Value) bool {
	return h.Get(v.Ref).Payload.Kind == runtime.PayloadString
}

func jsMod(a, b float64) float64 {
	if b == 0 {
		return runtime.Undefined().ToNumber() // NaN
	}
	r := a - b*float64(int64(a/b))
	return r
}

func compareOp(left, right runtime.Value, num func(runtime.Value) float64, str func(runtime.Value) string, numCmp func(a, b float64) bool, strCmp func(a, b string) bool) runtime.Value {
	if left.Kind == runtime.KindString && right.Kind == runtime.KindString {
		return runtime.Bool(strCmp(left.Str, right.Str))
	}
	ln, rn := num(left), num(right)
	if isNaN(ln) || isNaN(rn) {
		return runtime.Bool(false)
	}
	return runtime.Bool(numCmp(ln, rn))
}

func isNaN(f float64) bool { return f != f }

// looseEquals implements `==` (spec §4.3): equal kinds defer to strict
// equality; null and undefined are loosely equal only to each other;
// a number/string pair compares by coercing the string to a number;
// a boolean operand is first coerced to number.
func looseEquals(h *runtime.Heap, a, b runtime.Value) bool {
	if a.Kind == b.Kind {
		return runtime.StrictEquals(a, b)
	}
	if a.IsNullish() && b.IsNullish() {
		return true
	}
	if a.IsNullish() || b.IsNullish() {
		return false
	}
	if a.Kind == runtime.KindBoolean {
		return looseEquals(h, runtime.Number(a.ToNumber()), b)
	}
	if b.Kind == runtime.KindBoolean {
		return looseEquals(h, a, runtime.Number(b.ToNumber()))
	}
	if a.Kind == runtime.KindNumber && b.Kind == runtime.KindString {
		return a.Num == b.ToNumber()
	}
	if a.Kind == runtime.KindString && b.Kind == runtime.KindNumber {
		return a.ToNumber() == b.Num
	}
	return false
}

// instanceOf walks callee.prototype against value's own prototype chain
// (spec §4.3 instanceof).
func instanceOf(h *runtime.Heap, value, callee runtime.Value) (runtime.Value, error) {
	if !callee.IsRef() || !h.Get(callee.Ref).IsCallable() {
		return runtime.Value{}, exception.NewType(h.CurrentLoc, "right-hand side of instanceof is not callable")
	}
	if !value.IsRef() {
		return runtime.Bool(false), nil
	}
	protoVal, ok := h.Get(callee.Ref).GetOwn("prototype")
	if !ok || !protoVal.IsRef() {
		return runtime.Bool(false), nil
	}
	cur := h.Get(value.Ref).Proto
	for cur != runtime.NullID {
		if cur == protoVal.Ref {
			return runtime.Bool(true), nil
		}
		cur = h.Get(cur).Proto
	}
	return runtime.Bool(false), nil
}

func (e *Evaluator) evalLogical(h *runtime.Heap, expr *ast.LogicalExpression) (runtime.Interpreted, error) {
	left, err := e.evalValue(h, expr.Left)
	if err != nil {
		return runtime.VOID, err
	}
	switch expr.Operator {
	case ast.OpAnd:
		if !left.ToBoolean() {
			return runtime.Val(left), nil
		}
	case ast.OpOr:
		if left.ToBoolean() {
			return runtime.Val(left), nil
		}
	}
	right, err := e.evalValue(h, expr.Right)
	if err != nil {
		return runtime.VOID, err
	}
	return runtime.Val(right), nil
}

func (e *Evaluator) evalUnary(h *runtime.Heap, expr *ast.UnaryExpression) (runtime.Interpreted, error) {
	if expr.Operator == ast.OpTypeof {
		return e.evalTypeof(h, expr.Argument)
	}
	if expr.Operator == ast.OpDelete {
		return e.evalDelete(h, expr.Argument)
	}

	v, err := e.evalValue(h, expr.Argument)
	if err != nil {
		return runtime.VOID, err
	}
	switch expr.Operator {
	case ast.OpNot:
		return runtime.Val(runtime.Bool(!v.ToBoolean())), nil
	case ast.OpPlus:
		return runtime.Val(runtime.Number(e.toPrimitiveNumber(h, v))), nil
	case ast.OpNeg:
		return runtime.Val(runtime.Number(-e.toPrimitiveNumber(h, v))), nil
	case ast.OpBitNot:
		return runtime.Val(runtime.Number(float64(^v.ToInt32()))), nil
	case ast.OpVoid:
		return runtime.Val(runtime.Undefined()), nil
	default:
		return runtime.VOID, exception.NewInternal("evaluator: unknown unary operator %q", expr.Operator)
	}
}

// evalTypeof never raises a ReferenceError for an unresolved identifier
// (spec §4.3 Typeof); neither does a plain read, since no rule here turns
// the global-lookup fallback into an error. It evaluates its own Interpreted so a
// Member lvalue pointing at a still-undefined global reads as
// "undefined" instead of failing.
func (e *Evaluator) evalTypeof(h *runtime.Heap, arg ast.Expression) (runtime.Interpreted, error) {
	r, err := e.EvalExpression(h, arg)
	if err != nil {
		return runtime.VOID, err
	}
	v := r.ToValue(h)
	return runtime.Val(runtime.String(e.typeNameOf(h, v))), nil
}

func (e *Evaluator) typeNameOf(h *runtime.Heap, v runtime.Value) string {
	if v.Kind != runtime.KindRef {
		return v.TypeName()
	}
	if h.Get(v.Ref).IsCallable() {
		return "function"
	}
	return "object"
}

// evalDelete deletes a member property and reports JSObject.Delete's
// outcome (false for a non-configurable property); it returns true for
// any operand that is not a member expression (including a bare identifier, which the
// language never allows delete to remove), per spec §4.3's decision that
// delete on a non-member operand reports success without effect.
func (e *Evaluator) evalDelete(h *runtime.Heap, arg ast.Expression) (runtime.Interpreted, error) {
	member, ok := arg.(*ast.MemberExpression)
	if !ok {
		return runtime.Val(runtime.Bool(true)), nil
	}
	r, err := e.evalMember(h, member)
	if err != nil {
		return runtime.VOID, err
	}
	of, name := r.Member()
	return runtime.Val(runtime.Bool(h.Get(of).Delete(name))), nil
}

// evalUpdate implements `++`/`--`, prefix or postfix (spec §4.3 Update):
// the result is the operand's new value when prefixed, its old value
// when postfixed.
func (e *Evaluator) evalUpdate(h *runtime.Heap, expr *ast.UpdateExpression) (runtime.Interpreted, error) {
	target, err := e.EvalExpression(h, expr.Argument)
	if err != nil {
		return runtime.VOID, err
	}
	old := e.toPrimitiveNumber(h, target.ToValue(h))
	delta := 1.0
	if expr.Operator == ast.OpDec {
		delta = -1.0
	}
	updated := runtime.Number(old + delta)
	assignMember(h, target, updated)
	if expr.Prefix {
		return runtime.Val(updated), nil
	}
	return runtime.Val(runtime.Number(old)), nil
}
