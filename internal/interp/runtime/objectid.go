package runtime

// ObjectId is an opaque arena index (spec §3). Indices are stable for the
// life of the Heap; the arena only ever grows.
type ObjectId uint32

const (
	// NullID is the null reference. It is never dereferenced; Heap.Get
	// panics if asked to resolve it, matching invariant 1 in spec §3.
	NullID ObjectId = 0
	// GlobalID is the global object, fixed at heap creation (invariant 3).
	GlobalID ObjectId = 1
)
