package shipping

import (
	"errors"
	"fmt"
	"iter"
)

// ErrCrateFull is returned by Append when every slot is taken.
var ErrCrateFull = errors.New("crate is full")

// ── Capacity ──────────────────────────────────────────────────────────────────
// Go has no constant type parameters (no Crate[T, 5]). A capacity is instead
// a type whose zero value reports the slot count, so the bound still lives in
// the static type: Crate[string, Cap5] and Crate[string, Cap8] are different
// types and cannot be assigned to each other.

// Capacity is satisfied by marker types that report a fixed slot count.
type Capacity interface {
	Slots() int
}

type (
	Cap1  struct{}
	Cap2  struct{}
	Cap3  struct{}
	Cap4  struct{}
	Cap5  struct{}
	Cap6  struct{}
	Cap7  struct{}
	Cap8  struct{}
	Cap16 struct{}
)

func (Cap1) Slots() int  { return 1 }
func (Cap2) Slots() int  { return 2 }
func (Cap3) Slots() int  { return 3 }
func (Cap4) Slots() int  { return 4 }
func (Cap5) Slots() int  { return 5 }
func (Cap6) Slots() int  { return 6 }
func (Cap7) Slots() int  { return 7 }
func (Cap8) Slots() int  { return 8 }
func (Cap16) Slots() int { return 16 }

// ── Crate[T, N] ───────────────────────────────────────────────────────────────

// Crate is an append-only list holding at most N.Slots() items.
//
// Storage is allocated on the first Add, sized from N, and never grows. Items
// past count are unused zero values. Overflow is a normal outcome, not a
// fault: Add reports it with false and a printed line, and leaves the
// contents untouched. The zero value is an empty crate printing to os.Stdout.
//
//	var c shipping.Crate[string, shipping.Cap5]
//	c.Add("Clean Code") // true
//	c.Display()
type Crate[T any, N Capacity] struct {
	items []T
	count int
	cfg   config
}

// NewCrate returns an empty crate with N's capacity.
func NewCrate[T any, N Capacity](opts ...Option) *Crate[T, N] {
	return &Crate[T, N]{cfg: newConfig(opts)}
}

// slots is the capacity carried by N; negative counts mean zero.
func (c *Crate[T, N]) slots() int {
	var n N
	return max(n.Slots(), 0)
}

// Add stores item and returns true, or returns false without changing the
// crate when it is full. Either way one line is printed.
func (c *Crate[T, N]) Add(item T) bool {
	if c.count < c.slots() {
		if c.items == nil {
			c.items = make([]T, c.slots())
		}
		c.items[c.count] = item
		c.count++
		fmt.Fprintf(c.cfg.writer(), "Added item to box: \"%v\"\n", item)
		return true
	}
	fmt.Fprintf(c.cfg.writer(), "Box is full. Cannot add item: \"%v\"\n", item)
	c.cfg.logf("[crate] rejected item %v: capacity %d reached", item, c.slots())
	return false
}

// Append is Add with overflow reported as an error wrapping ErrCrateFull.
func (c *Crate[T, N]) Append(item T) error {
	if !c.Add(item) {
		return fmt.Errorf("append %v: %w", item, ErrCrateFull)
	}
	return nil
}

// Display prints a header and then every stored item in insertion order.
func (c *Crate[T, N]) Display() {
	w := c.cfg.writer()
	fmt.Fprintln(w, "Box contents:")
	for _, item := range c.items[:c.count] {
		fmt.Fprintf(w, " - %v\n", item)
	}
}

func (c *Crate[T, N]) Len() int   { return c.count }
func (c *Crate[T, N]) Cap() int   { return c.slots() }
func (c *Crate[T, N]) Full() bool { return c.count >= c.slots() }

// Items returns a copy of the stored items.
func (c *Crate[T, N]) Items() []T {
	out := make([]T, c.count)
	copy(out, c.items[:c.count])
	return out
}

// All yields position and item for every stored item, oldest first.
func (c *Crate[T, N]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range c.items[:c.count] {
			if !yield(i, item) {
				return
			}
		}
	}
}
