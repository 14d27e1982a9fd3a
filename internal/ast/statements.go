package ast

import "github.com/cwbudde/go-jsi/internal/token"

// BlockStatement is `{ statements... }`. Entering one allocates a new
// scope whose parent is the enclosing scope (spec §4.3 Block).
type BlockStatement struct {
	base
	Statements []Statement
}

func (b *BlockStatement) statementNode() {}

func NewBlockStatement(stmts []Statement, loc *token.Location) *BlockStatement {
	return &BlockStatement{base: base{Location: loc}, Statements: stmts}
}

// ExpressionStatement evaluates Expr for its side effect; in REPL mode its
// value becomes the enclosing block's value (spec §4.3 Block).
type ExpressionStatement struct {
	base
	Expr Expression
}

func (e *ExpressionStatement) statementNode() {}

func NewExpressionStatement(expr Expression, loc *token.Location) *ExpressionStatement {
	return &ExpressionStatement{base: base{Location: loc}, Expr: expr}
}

// EmptyStatement is a bare `;`.
type EmptyStatement struct{ base }

func (e *EmptyStatement) statementNode() {}

func NewEmptyStatement(loc *token.Location) *EmptyStatement {
	return &EmptyStatement{base{Location: loc}}
}

// VariableDeclarator is one `name = init` clause of a `var` statement;
// Init is nil when the declarator has no initializer.
type VariableDeclarator struct {
	Name *Identifier
	Init Expression
}

// VariableDeclaration is `var a = 1, b, c = 3;`. The bindings themselves
// are hoisted ahead of time (spec §4.3); evaluating the declaration only
// runs the initializers, in source order, against the already-hoisted
// bindings.
type VariableDeclaration struct {
	base
	Declarations []VariableDeclarator
}

func (v *VariableDeclaration) statementNode() {}

func NewVariableDeclaration(decls []VariableDeclarator, loc *token.Location) *VariableDeclaration {
	return &VariableDeclaration{base: base{Location: loc}, Declarations: decls}
}

// ReturnStatement raises a Jump(Return) with the evaluated Argument, or
// Jump(Return(undefined)) if Argument is nil.
type ReturnStatement struct {
	base
	Argument Expression
}

func (r *ReturnStatement) statementNode() {}

func NewReturnStatement(arg Expression, loc *token.Location) *ReturnStatement {
	return &ReturnStatement{base: base{Location: loc}, Argument: arg}
}

// BreakStatement raises a Jump(Break(Label)); Label is "" for an
// unlabeled break.
type BreakStatement struct {
	base
	Label string
}

func (b *BreakStatement) statementNode() {}

func NewBreakStatement(label string, loc *token.Location) *BreakStatement {
	return &BreakStatement{base: base{Location: loc}, Label: label}
}

// ContinueStatement raises a Jump(Continue(Label)); Label is "" for an
// unlabeled continue.
type ContinueStatement struct {
	base
	Label string
}

func (c *ContinueStatement) statementNode() {}

func NewContinueStatement(label string, loc *token.Location) *ContinueStatement {
	return &ContinueStatement{base: base{Location: loc}, Label: label}
}

// ThrowStatement raises a UserThrown exception carrying Argument's value.
type ThrowStatement struct {
	base
	Argument Expression
}

func (t *ThrowStatement) statementNode() {}

func NewThrowStatement(arg Expression, loc *token.Location) *ThrowStatement {
	return &ThrowStatement{base: base{Location: loc}, Argument: arg}
}
