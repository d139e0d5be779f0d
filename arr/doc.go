// Package arr provides standalone generic helpers for Go slices: set-like
// operations, chunking and flattening, grouping, randomisation and lazy
// numeric ranges.
//
// All helpers operate on plain []T values and never modify their input;
// every result is a freshly allocated slice:
//
//	arr.Unique([]int{3, 1, 3, 2, 1})                  // → [3 1 2]
//	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)   // → [[1 2] [3 4] [5]]
//	arr.Difference([]int{1, 2, 2, 3}, []int{2})       // → [1 3]
//
// # Absent values
//
// Helpers that may have nothing to return use [mo.Option] instead of a
// sentinel zero value:
//
//	if v, ok := arr.Sample(items).Get(); ok { ... }
//
// # Dynamic values
//
// [Flatten] and [Compact] work on []any, the shape produced by decoding JSON
// or YAML into interface values. [IsFalsy] documents exactly which values
// Compact removes.
//
// # Ranges
//
// [Range] returns an [iter.Seq]; nothing is allocated until it is ranged over
// and every range statement restarts it from the beginning:
//
//	seq, _ := arr.Range(0, 10, 2)
//	slices.Collect(seq) // → [0 2 4 6 8]
package arr
