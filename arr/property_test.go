package arr_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hasbyte1/go-helpers/arr"
)

func newProperties() *gopter.Properties {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	return gopter.NewProperties(params)
}

func TestUniqueProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("every element appears exactly once", prop.ForAll(
		func(xs []int) bool {
			counts := map[int]int{}
			for _, x := range arr.Unique(xs) {
				counts[x]++
			}
			for _, c := range counts {
				if c != 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-5, 5)),
	))

	properties.Property("same set of elements as the input", prop.ForAll(
		func(xs []int) bool {
			u := arr.Unique(xs)
			for _, x := range xs {
				if !slices.Contains(u, x) {
					return false
				}
			}
			for _, x := range u {
				if !slices.Contains(xs, x) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-5, 5)),
	))

	properties.TestingRun(t)
}

func TestChunkProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("concatenated chunks reproduce the input", prop.ForAll(
		func(xs []int, size int) bool {
			chunks, err := arr.Chunk(xs, size)
			if err != nil {
				return false
			}
			return slices.Equal(arr.Collapse(chunks), xs)
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(1, 10),
	))

	properties.Property("all chunks but the last have exactly size elements", prop.ForAll(
		func(xs []int, size int) bool {
			chunks, _ := arr.Chunk(xs, size)
			for i, c := range chunks {
				last := i == len(chunks)-1
				if !last && len(c) != size {
					return false
				}
				if last && (len(c) == 0 || len(c) > size) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

func TestIntersectionDifferenceProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("intersection and difference are disjoint", prop.ForAll(
		func(a, b []int) bool {
			diff := arr.Difference(a, b)
			for _, x := range arr.Intersection(a, b) {
				if slices.Contains(diff, x) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 8)),
		gen.SliceOf(gen.IntRange(0, 8)),
	))

	properties.Property("intersection and difference partition a", prop.ForAll(
		func(a, b []int) bool {
			union := append(arr.Intersection(a, b), arr.Difference(a, b)...)
			if len(union) != len(a) {
				return false
			}
			for _, x := range a {
				if !slices.Contains(union, x) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 8)),
		gen.SliceOf(gen.IntRange(0, 8)),
	))

	properties.TestingRun(t)
}

func TestShuffleProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("shuffle is a permutation and leaves input intact", prop.ForAll(
		func(xs []int) bool {
			orig := slices.Clone(xs)
			out := arr.Shuffle(xs)
			if !slices.Equal(xs, orig) {
				return false
			}
			a, b := slices.Clone(out), slices.Clone(orig)
			slices.Sort(a)
			slices.Sort(b)
			return slices.Equal(a, b)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
