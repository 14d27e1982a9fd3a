// Package builtins installs the fixed set of global objects and prototype
// methods a fresh Heap needs before a program can run: the well-known
// prototypes (Object, Function, Array, String, Boolean, Number, Error),
// the Math and JSON objects, the global Array/Object/String/Number/Boolean
// constructors, and the console object (spec §6 embedding API, SPEC_FULL.md
// §4's supplemented console built-in). Bootstrap is the one entry point;
// everything else here is a HostFunc registered somewhere on one of those
// objects.
package builtins
