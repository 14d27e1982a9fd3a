package runtime

// NewArrayObject allocates a new Array instance over elems, prototyped on
// h.ArrayProto.
func (h *Heap) NewArrayObject(elems []Value) ObjectId {
	obj := NewObject(h.ArrayProto)
	obj.Payload = Payload{Kind: PayloadArray, Array: elems}
	return h.Alloc(obj)
}

// NewPlainObject allocates a new object prototyped on h.ObjectProto, the
// allocation behind every `{}` literal.
func (h *Heap) NewPlainObject() ObjectId {
	return h.Alloc(NewObject(h.ObjectProto))
}

// NewBoxedString allocates a String-payload object prototyped on
// h.StringProto. BoxPrimitive uses it to autobox every string receiver
// of a member access or method call; built-ins such as split() return
// plain string Values, not boxed ones.
func (h *Heap) NewBoxedString(s string) ObjectId {
	obj := NewObject(h.StringProto)
	obj.Payload = Payload{Kind: PayloadString, Str: s}
	return h.Alloc(obj)
}

// NewErrorObject allocates an Error instance of the given class
// ("TypeError", "ReferenceError", "SyntaxError", "RangeError", "Error")
// with a `message` own property and a `name` own property, the shape
// spec §4.4 requires when a typed diagnostic is materialized for a user
// catch handler.
func (h *Heap) NewErrorObject(class, message string) ObjectId {
	obj := NewObject(h.ErrorProto)
	obj.Payload = Payload{Kind: PayloadError, ErrorClass: class}
	obj.SetOwnProperty("name", String(class))
	obj.SetOwnProperty("message", String(message))
	return h.Alloc(obj)
}

// NewHostFunction allocates a callable object wrapping a native Go
// function (spec §6, "Host functions are registered by allocating an
// object with a HostFn payload").
func (h *Heap) NewHostFunction(name string, arity int, fn HostFunc) ObjectId {
	obj := NewObject(h.FunctionProto)
	obj.Payload = Payload{Kind: PayloadHostFn, HostFn: fn}
	obj.SetHidden("name", String(name))
	obj.SetHidden("length", Number(float64(arity)))
	return h.Alloc(obj)
}

// DefineGlobal binds name to v as an own property of the global object,
// the primitive BindHostFunc and builtins.Bootstrap both build on.
func (h *Heap) DefineGlobal(name string, v Value) {
	h.Global().SetOwnProperty(name, v)
}
