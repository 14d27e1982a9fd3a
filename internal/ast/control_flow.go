package ast

import "github.com/cwbudde/go-jsi/internal/token"

// IfStatement is `if (Test) Consequent [else Alternate]`. Alternate is nil
// when there is no else-branch.
type IfStatement struct {
	base
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

func (i *IfStatement) statementNode() {}

func NewIfStatement(test Expression, cons, alt Statement, loc *token.Location) *IfStatement {
	return &IfStatement{base: base{Location: loc}, Test: test, Consequent: cons, Alternate: alt}
}

// SwitchCase is one `case Test:` (Test != nil) or `default:` (Test == nil)
// arm of a SwitchStatement.
type SwitchCase struct {
	Test       Expression
	Statements []Statement
}

// SwitchStatement evaluates Discriminant once, scans Cases in order using
// strict equality against each non-default Test, and falls through from
// the first match (or the default) honoring unlabeled break (spec §4.3).
type SwitchStatement struct {
	base
	Discriminant Expression
	Cases        []SwitchCase
}

func (s *SwitchStatement) statementNode() {}

func NewSwitchStatement(disc Expression, cases []SwitchCase, loc *token.Location) *SwitchStatement {
	return &SwitchStatement{base: base{Location: loc}, Discriminant: disc, Cases: cases}
}

// ForStatement is a C-style `for (Init; Test; Update) Body`. Init may be a
// *VariableDeclaration, an Expression wrapped in *ExpressionStatement, or
// nil. Test and Update may be nil.
type ForStatement struct {
	base
	Init   Statement
	Test   Expression
	Update Expression
	Body   Statement
}

func (f *ForStatement) statementNode() {}

func NewForStatement(init Statement, test, update Expression, body Statement, loc *token.Location) *ForStatement {
	return &ForStatement{base: base{Location: loc}, Init: init, Test: test, Update: update, Body: body}
}

// WhileStatement is `while (Test) Body`.
type WhileStatement struct {
	base
	Test Expression
	Body Statement
}

func (w *WhileStatement) statementNode() {}

func NewWhileStatement(test Expression, body Statement, loc *token.Location) *WhileStatement {
	return &WhileStatement{base: base{Location: loc}, Test: test, Body: body}
}

// DoWhileStatement is `do Body while (Test);` — Body always runs once
// before Test is first evaluated.
type DoWhileStatement struct {
	base
	Test Expression
	Body Statement
}

func (d *DoWhileStatement) statementNode() {}

func NewDoWhileStatement(test Expression, body Statement, loc *token.Location) *DoWhileStatement {
	return &DoWhileStatement{base: base{Location: loc}, Test: test, Body: body}
}

// ForInTarget is either a fresh `var x` binding (VarName != "") or an
// existing lvalue Expression assigned on each iteration.
type ForInTarget struct {
	VarName string
	Target  Expression
}

// ForInStatement is `for (Target in Object) Body`; Object is coerced to
// an object and its enumerable own keys (including inherited ones,
// deduplicated) are walked in the order fixed by spec §9.
type ForInStatement struct {
	base
	Left   ForInTarget
	Object Expression
	Body   Statement
}

func (f *ForInStatement) statementNode() {}

func NewForInStatement(left ForInTarget, obj Expression, body Statement, loc *token.Location) *ForInStatement {
	return &ForInStatement{base: base{Location: loc}, Left: left, Object: obj, Body: body}
}

// LabeledStatement attaches Label to Body so that a `break Label` or
// `continue Label` targeting it can be resolved by the evaluator's frame
// stack (spec §4.3).
type LabeledStatement struct {
	base
	Label string
	Body  Statement
}

func (l *LabeledStatement) statementNode() {}

func NewLabeledStatement(label string, body Statement, loc *token.Location) *LabeledStatement {
	return &LabeledStatement{base: base{Location: loc}, Label: label, Body: body}
}

// CatchClause is the `catch (Param) { Body }` portion of a TryStatement.
// Param is nil for a parameterless catch.
type CatchClause struct {
	Param *Identifier
	Body  *BlockStatement
}

// TryStatement is `try { Block } [catch (Param) { Handler }] [finally {
// Finalizer }]`. Handler catches UserThrown exceptions and typed
// diagnostics (the latter materialized as Error objects); Jump
// exceptions pass through untouched (spec §4.3). Finalizer, when present,
// always runs, and an exception it raises supersedes whatever was
// pending.
type TryStatement struct {
	base
	Block     *BlockStatement
	Handler   *CatchClause // nil if there is no catch
	Finalizer *BlockStatement // nil if there is no finally
}

func (t *TryStatement) statementNode() {}

func NewTryStatement(block *BlockStatement, handler *CatchClause, finalizer *BlockStatement, loc *token.Location) *TryStatement {
	return &TryStatement{base: base{Location: loc}, Block: block, Handler: handler, Finalizer: finalizer}
}
