package shipping

import (
	"fmt"
	"strconv"
)

// ── Dispatch[T] ───────────────────────────────────────────────────────────────
// A free function with one specialization. The branch is chosen from T, not
// from the value: an `any` holding 22.5 is shipped generically. The choice is
// therefore fixed per instantiation:
//
//	float64 → Shipping temperature-controlled item: 22.5°C
//	other   → Shipping item of type: <T>
//
// Defined types such as `type Celsius float64` do not match float64 and are
// shipped generically, as is float32.

// Dispatch prints one shipping line for item. It keeps no state between calls
// and never retains item.
func Dispatch[T any](item T, opts ...Option) {
	cfg := newConfig(opts)
	fmt.Fprintln(cfg.writer(), DispatchLabel(item, cfg.typeNames()))
}

// DispatchLabel returns the line Dispatch would print, without the newline.
// A nil registry prints Go type spellings.
func DispatchLabel[T any](item T, names *TypeNames) string {
	if isExactly[float64, T]() {
		v := any(item).(float64)
		return "Shipping temperature-controlled item: " + strconv.FormatFloat(v, 'g', -1, 64) + "°C"
	}
	return "Shipping item of type: " + NameOf[T](names)
}

// isExactly reports whether T is the type Want. Asserting on *T rather than T
// keeps the check static: an interface T never matches the type it holds.
func isExactly[Want, T any]() bool {
	_, ok := any((*T)(nil)).(*Want)
	return ok
}
