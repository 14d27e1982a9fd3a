// Package estree imports a program from ESTree-shaped JSON into
// internal/ast, and exports an internal/ast tree back to that same JSON
// shape. The interpreter has no parser of its own (spec §1, §6): a host
// embedding this package is expected to parse source text with whatever
// tool it already has (a browser's own parser, Acorn/Esprima under
// Node.js, the teacher's own lexer/parser pair translated to ESTree) and
// hand this package the resulting AST as JSON.
//
// Import walks the JSON with gjson rather than unmarshaling into
// interface{} first, avoiding an allocation pass over every node twice.
// Export goes the other way with sjson, used by cmd/jsi's --json-ast
// debug dump and by the package's own round-trip test.
package estree
