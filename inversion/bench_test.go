package inversion

import (
	"testing"

	"github.com/puetzmi/quadmom/moments"
)

func BenchmarkWheeler(b *testing.B) {
	w := NewWheeler(nil)
	mom := moments.Set{1, 1, 2, 4, 10, 26, 76, 232}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := w.Invert(mom); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWheelerAdaptive(b *testing.B) {
	w := NewWheelerAdaptive(nil)
	mom := moments.Set{1, 2, 5, 14, 41, 122}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := w.Invert(mom); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProductDifference(b *testing.B) {
	p := NewProductDifference(nil)
	mom := moments.Set{1, 1, 2, 4, 10, 26, 76, 232}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.Invert(mom); err != nil {
			b.Fatal(err)
		}
	}
}
