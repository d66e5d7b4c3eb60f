package main

import (
	"io"
	"log"
	"os"

	"github.com/marcodamonte/specialization/shipping"
)

// Walks through every specialization once, in a fixed order.
//
// Run:
//
//	go run .
//
// Set SHIPPING_DEBUG=1 to log crate rejections to stderr. Stdout is the same
// either way.
func main() {
	var logger *log.Logger
	if os.Getenv("SHIPPING_DEBUG") != "" {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	run(os.Stdout, logger)
}

func run(w io.Writer, logger *log.Logger) {
	opts := []shipping.Option{shipping.WithOutput(w), shipping.WithLogger(logger)}

	// ── Container[T] ─────────────────────────────────────────────────────────
	shipping.NewContainer(42, opts...).Describe()
	shipping.NewContainer("C++ Primer", opts...).Describe()

	tempSensitive := 3.14
	shipping.NewContainer(&tempSensitive, opts...).Describe()

	// ── Crate[T, N] ──────────────────────────────────────────────────────────
	library := shipping.NewCrate[string, shipping.Cap5](opts...)
	library.Add("The Pragmatic Programmer")
	library.Add("Clean Code")
	library.Display()

	// ── Dispatch[T] ──────────────────────────────────────────────────────────
	shipping.Dispatch(42, opts...)
	shipping.Dispatch("string", opts...)
	shipping.Dispatch(22.5, opts...)
}
