// Package token defines the source-position types attached to every AST
// node. The interpreter has no lexer of its own (internal/estree imports a
// program as an already-parsed ESTree JSON tree, spec §6), but diagnostics
// and stack traces still need a place to point at, so the position shape
// mirrors what the teacher's own lexer.Position carries.
package token

import "fmt"

// Position is one point in source text, 1-based Line/Column to match the
// column numbers a user's editor reports.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	if p.Line == 0 {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is the span a node covers, Start inclusive through End
// exclusive. The estree importer fills both from each node's `loc` field;
// a hand-built fixture may leave End zero.
type Location struct {
	Start Position
	End   Position
}

func (l Location) String() string {
	return l.Start.String()
}
