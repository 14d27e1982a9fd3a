package ast

import "github.com/cwbudde/go-jsi/internal/token"

// NumberLiteral is a numeric literal; the value is always stored as the
// language's single numeric type (float64), matching spec §3's Value.
type NumberLiteral struct {
	base
	Value float64
}

func (n *NumberLiteral) expressionNode() {}

func NewNumberLiteral(v float64, loc *token.Location) *NumberLiteral {
	return &NumberLiteral{base: base{Location: loc}, Value: v}
}

// StringLiteral is a string literal.
type StringLiteral struct {
	base
	Value string
}

func (s *StringLiteral) expressionNode() {}

func NewStringLiteral(v string, loc *token.Location) *StringLiteral {
	return &StringLiteral{base: base{Location: loc}, Value: v}
}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	base
	Value bool
}

func (b *BooleanLiteral) expressionNode() {}

func NewBooleanLiteral(v bool, loc *token.Location) *BooleanLiteral {
	return &BooleanLiteral{base: base{Location: loc}, Value: v}
}

// NullLiteral is the `null` literal.
type NullLiteral struct {
	base
}

func (n *NullLiteral) expressionNode() {}

func NewNullLiteral(loc *token.Location) *NullLiteral {
	return &NullLiteral{base: base{Location: loc}}
}
