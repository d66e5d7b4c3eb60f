package shipping

import (
	"io"
	"testing"
)

// BenchmarkCrateAddFull measures the rejected path on a full crate.
func BenchmarkCrateAddFull(b *testing.B) {
	c := NewCrate[int, Cap1](WithOutput(io.Discard))
	c.Add(0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Add(i)
	}
}

func BenchmarkDispatchLabelGeneric(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = DispatchLabel(i, nil)
	}
}

func BenchmarkDispatchLabelTemperature(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = DispatchLabel(22.5, nil)
	}
}
