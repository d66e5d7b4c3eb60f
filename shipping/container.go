package shipping

import (
	"fmt"
	"reflect"
)

// Variant identifies which specialization a construct resolved to.
type Variant int

const (
	VariantGeneric Variant = iota
	VariantBook            // T is exactly string
	VariantFragile         // T is a pointer *U
)

func (v Variant) String() string {
	switch v {
	case VariantBook:
		return "book"
	case VariantFragile:
		return "fragile"
	default:
		return "generic"
	}
}

// ── Container[T] ──────────────────────────────────────────────────────────────
// Holds exactly one value. The label depends only on T:
//
//	string → Book package: "<value>"
//	*U     → Fragile package for pointer to type: <U>
//	other  → Generic package containing: <T>
//
// The match is on the exact type, so `type Title string` is generic, not a
// book. A fragile container names the pointee type and never dereferences,
// frees or writes through the pointer; the caller owns what it points to.

// Container wraps a single value of type T. The zero value holds T's zero
// value and prints to os.Stdout.
type Container[T any] struct {
	value T
	cfg   config
}

// NewContainer wraps v.
func NewContainer[T any](v T, opts ...Option) *Container[T] {
	return &Container[T]{value: v, cfg: newConfig(opts)}
}

// resolve picks the variant from T alone, most specific first, along with
// the type the label names: T itself, or U for *U.
func (c *Container[T]) resolve() (Variant, reflect.Type) {
	t := reflect.TypeFor[T]()
	switch {
	case isExactly[string, T]():
		return VariantBook, t
	case t.Kind() == reflect.Pointer:
		return VariantFragile, t.Elem()
	default:
		return VariantGeneric, t
	}
}

// Variant reports which specialization T selected.
func (c *Container[T]) Variant() Variant {
	v, _ := c.resolve()
	return v
}

// Value returns the wrapped value.
func (c *Container[T]) Value() T { return c.value }

// Label returns the description line without a trailing newline.
func (c *Container[T]) Label() string {
	variant, subject := c.resolve()
	switch variant {
	case VariantBook:
		return `Book package: "` + any(c.value).(string) + `"`
	case VariantFragile:
		return "Fragile package for pointer to type: " + c.cfg.typeNames().Name(subject)
	default:
		return "Generic package containing: " + c.cfg.typeNames().Name(subject)
	}
}

// Describe prints the label.
func (c *Container[T]) Describe() {
	fmt.Fprintln(c.cfg.writer(), c.Label())
}
