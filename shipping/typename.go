package shipping

import "reflect"

// ── TypeNames ─────────────────────────────────────────────────────────────────
// A registry from type tag to display string. Labels print names from here
// instead of whatever a runtime happens to call a type, so output stays the
// same across toolchains and callers can relabel types ("double" for float64).
//
// There is no shared registry to mutate: relabelling means building your own
// with NewTypeNames and passing it through WithTypeNames.

// TypeNames maps types to the names printed in labels. The zero value is an
// empty registry ready to use. Safe for concurrent reads once registration
// is done.
type TypeNames struct {
	m map[reflect.Type]string
}

// builtinNames backs every construct built without WithTypeNames. It is
// written only here, during package initialization.
var builtinNames = NewTypeNames()

// NewTypeNames returns a registry seeded with the predeclared Go types.
// byte and rune are aliases, so they print as uint8 and int32.
func NewTypeNames() *TypeNames {
	n := &TypeNames{}
	Register[bool](n, "bool")
	Register[string](n, "string")
	Register[int](n, "int")
	Register[int8](n, "int8")
	Register[int16](n, "int16")
	Register[int32](n, "int32")
	Register[int64](n, "int64")
	Register[uint](n, "uint")
	Register[uint8](n, "uint8")
	Register[uint16](n, "uint16")
	Register[uint32](n, "uint32")
	Register[uint64](n, "uint64")
	Register[uintptr](n, "uintptr")
	Register[float32](n, "float32")
	Register[float64](n, "float64")
	Register[complex64](n, "complex64")
	Register[complex128](n, "complex128")
	return n
}

// Register binds display to T, replacing any earlier name. n must be
// non-nil; unlike Name, there is nowhere to record a name on a nil registry.
func Register[T any](n *TypeNames, display string) {
	if n.m == nil {
		n.m = make(map[reflect.Type]string)
	}
	n.m[reflect.TypeFor[T]()] = display
}

// NameOf returns the display name of T.
func NameOf[T any](n *TypeNames) string {
	return n.Name(reflect.TypeFor[T]())
}

// Name returns the registered name of t, or its Go spelling when t was never
// registered. A nil registry behaves like an empty one.
func (n *TypeNames) Name(t reflect.Type) string {
	if n != nil {
		if name, ok := n.m[t]; ok {
			return name
		}
	}
	return t.String()
}
