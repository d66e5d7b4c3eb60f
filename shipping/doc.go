// Package shipping demonstrates type-driven specialization with Go generics.
//
// Three constructs each have a generic form and one or more specialized
// forms picked from the type argument alone:
//
//	Container[T]   string → book, *U → fragile, anything else → generic
//	Crate[T, N]    bounded append-only list whose capacity is part of its type
//	Dispatch[T]    float64 → temperature-controlled, anything else → generic
//
// Go has no template specialization, so each construct resolves its variant
// from the static type T (never from the runtime value) in most-specific-first
// order. Type names come from a TypeNames registry so output does not depend
// on how a toolchain spells types.
package shipping
