package arr

import (
	"github.com/samber/mo"

	"github.com/hasbyte1/go-helpers/random"
)

// Shuffle returns a uniformly random permutation of items drawn from the
// process-wide source. items is not modified.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(random.Default(), items)
}

// ShuffleWith is [Shuffle] with an explicit source (Fisher–Yates).
func ShuffleWith[T any](src random.Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns one uniformly chosen element, or mo.None when items is empty.
func Sample[T any](items []T) mo.Option[T] {
	return SampleWith(random.Default(), items)
}

// SampleWith is [Sample] with an explicit source.
func SampleWith[T any](src random.Source, items []T) mo.Option[T] {
	if len(items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(items[src.IntN(len(items))])
}
