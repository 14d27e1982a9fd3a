// Package runtime provides the heap-resident value types for the jsinterp
// evaluator: Value, ObjectId, Property/PropertyMap, JSObject, and Heap
// itself. It is the data half of the interpreter; internal/interp/evaluator
// is the behavior half and is the only package allowed to know how an AST
// node turns into a heap mutation.
package runtime
