package domain

import (
	"fmt"
	"testing"
)

func benchVendor(n int) *Vendor {
	v := NewVendor("bench")
	for i := 0; i < n; i++ {
		v.Add(NewItem(categories[i%len(categories)], float64(i%6), n-i))
	}
	return v
}

// Compare runs with benchstat (see tools.go)
func BenchmarkVendor_GetBestByCategory(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		v := benchVendor(n)
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = v.GetBestByCategory(CategoryDecor)
			}
		})
	}
}

func BenchmarkVendor_SwapByNewest(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		left, right := benchVendor(n), benchVendor(n)
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, ok := left.SwapByNewest(right); !ok {
					b.Fatal("swap rejected")
				}
			}
		})
	}
}
