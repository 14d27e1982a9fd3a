package runtime

// Access is the WRITE/ENUM/CONF bitset from spec §3.
type Access uint8

const (
	AccessWrite Access = 1 << iota
	AccessEnum
	AccessConf
)

// DefaultAccess is what Object.set_property grants a newly created
// property: writable, enumerable, configurable.
const DefaultAccess = AccessWrite | AccessEnum | AccessConf

func (a Access) Writable() bool     { return a&AccessWrite != 0 }
func (a Access) Enumerable() bool   { return a&AccessEnum != 0 }
func (a Access) Configurable() bool { return a&AccessConf != 0 }

// Property is a (Content, Access) pair (spec §3). A plain property holds
// Value directly; bookkeeping slots such as [[saved_scope]] and [[this]]
// are not represented as Properties at all — they live in JSObject.Internal,
// which is never visited by property enumeration, lookup-by-name-on-
// proto-chain, or delete (see object.go).
type Property struct {
	Value  Value
	Access Access
}

// NewProperty creates a property with the default access bits.
func NewProperty(v Value) Property {
	return Property{Value: v, Access: DefaultAccess}
}

// PropertyMap is an insertion-ordered string->Property map. Plain
// map[string]Property doesn't preserve iteration order, and for-in
// enumeration order is an observable, spec-mandated property (spec §9),
// so we keep an explicit key order alongside the map.
type PropertyMap struct {
	entries map[string]Property
	order   []string
}

// NewPropertyMap creates an empty, insertion-ordered property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{entries: make(map[string]Property)}
}

// Get returns the property with the given name and whether it exists.
func (m *PropertyMap) Get(name string) (Property, bool) {
	p, ok := m.entries[name]
	return p, ok
}

// Has reports whether name is an own property.
func (m *PropertyMap) Has(name string) bool {
	_, ok := m.entries[name]
	return ok
}

// Set creates or overwrites the property named name, preserving its
// original position in iteration order if it already existed.
func (m *PropertyMap) Set(name string, p Property) {
	if _, exists := m.entries[name]; !exists {
		m.order = append(m.order, name)
	}
	m.entries[name] = p
}

// Delete removes name unconditionally. Callers are responsible for
// checking AccessConf first (see JSObject.Delete).
func (m *PropertyMap) Delete(name string) {
	if _, exists := m.entries[name]; !exists {
		return
	}
	delete(m.entries, name)
	for i, k := range m.order {
		if k == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Keys returns own property names in insertion order.
func (m *PropertyMap) Keys() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of own properties.
func (m *PropertyMap) Len() int { return len(m.order) }
