// Package ast's node set mirrors the subset of ESTree the evaluator
// understands: it is deliberately smaller than a full ECMAScript grammar
// (no classes, generators, destructuring, or template literals) because
// spec.md scopes those out. internal/estree maps a full ESTree JSON
// document down onto these types, rejecting anything outside this subset
// with a plain Go error whose "estree: ..." message names the offending
// construct; the error is not a typed diagnostic and carries no JSON path
// to the node.
package ast
