// Package ast defines the typed Abstract Syntax Tree the evaluator walks.
// Nodes are produced either by an out-of-process parser or by the
// internal/estree JSON importer; the evaluator never constructs them.
package ast

import "github.com/cwbudde/go-jsi/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	// Loc returns the node's source span, or nil if the producer didn't
	// record one.
	Loc() *token.Location
}

// Expression is any node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that is executed for effect.
type Statement interface {
	Node
	statementNode()
}

// base is embedded by every concrete node to satisfy Loc() without
// repeating the field and method on each type.
type base struct {
	Location *token.Location
}

func (b *base) Loc() *token.Location { return b.Location }

// NewBase lets the estree importer (or a hand-built test fixture) attach a
// location to a node without reaching into the unexported field directly
// from another package — every constructor below takes one as its last
// positional argument instead, but fixtures that build nodes with &T{}
// literals still need this for post-hoc attachment.
func NewBase(loc *token.Location) base { return base{Location: loc} }

// Program is the root of the tree. Variables and Functions are the
// pre-computed hoisting sets the parser collaborator is responsible for
// supplying (spec §6): the evaluator trusts them rather than re-deriving
// them by walking Body itself.
type Program struct {
	base
	Body      *BlockStatement
	Variables []string
	Functions []*FunctionDeclaration
}

func (p *Program) statementNode() {}

// Identifier names a variable, property, parameter, or label.
type Identifier struct {
	base
	Name string
}

func (i *Identifier) expressionNode() {}

// NewIdentifier builds an Identifier with an optional location.
func NewIdentifier(name string, loc *token.Location) *Identifier {
	return &Identifier{base: base{Location: loc}, Name: name}
}
