package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-helpers/arr"
)

func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i % 1000
	}
	return items
}

func BenchmarkUnique(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Unique(items)
	}
}

func BenchmarkIntersection(b *testing.B) {
	a, other := makeInts(10_000), makeInts(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Intersection(a, other)
	}
}

func BenchmarkChunk(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Chunk(items, 64)
	}
}

func BenchmarkShuffle(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Shuffle(items)
	}
}

func BenchmarkRange(b *testing.B) {
	seq, _ := arr.Range(0, 10_000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range seq {
		}
	}
}
