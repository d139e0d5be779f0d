package arr

import (
	"reflect"

	"github.com/samber/lo"
)

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns the distinct elements of items in order of first occurrence.
func Unique[T comparable](items []T) []T {
	return lo.Uniq(items)
}

// Intersection returns the elements of a that are also present in b.
// The order and duplicates of a are preserved.
func Intersection[T comparable](a, b []T) []T {
	set := toSet(b)
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; found {
			out = append(out, item)
		}
	}
	return out
}

// Difference returns the elements of a that are not present in b.
// The order and duplicates of a are preserved.
func Difference[T comparable](a, b []T) []T {
	set := toSet(b)
	out := make([]T, 0)
	for _, item := range a {
		if _, found := set[item]; !found {
			out = append(out, item)
		}
	}
	return out
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size. The last group may
// contain fewer than size elements. Each group is a copy, so writes to a
// chunk never reach items.
//
// Returns [ErrInvalidChunkSize] when size <= 0.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Flatten splices nested []any values into their parent up to depth levels.
// Sequences nested deeper than depth are kept as elements. A depth of zero or
// less returns a shallow copy.
//
//	Flatten([]any{1, []any{2, []any{3}}}, 1) // → [1 2 [3]]
//	Flatten([]any{1, []any{2, []any{3}}}, 2) // → [1 2 3]
func Flatten(items []any, depth int) []any {
	if depth <= 0 {
		out := make([]any, len(items))
		copy(out, items)
		return out
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		if nested, ok := item.([]any); ok {
			out = append(out, Flatten(nested, depth-1)...)
			continue
		}
		out = append(out, item)
	}
	return out
}

// Collapse concatenates a slice of slices into a single flat slice.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Compaction
// ─────────────────────────────────────────────────────────────────────────────

// Compact returns items without the values for which [IsFalsy] reports true.
func Compact(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if !IsFalsy(item) {
			out = append(out, item)
		}
	}
	return out
}

// CompactOf returns items without zero values of T.
func CompactOf[T comparable](items []T) []T {
	return lo.Compact(items)
}

// IsFalsy reports whether v is one of the values Compact removes:
//
//   - nil, or a nil pointer, map, slice, func, channel or interface
//   - false
//   - the empty string
//   - zero of any numeric kind, including -0
//
// Named types are judged by their underlying kind. NaN, empty but non-nil
// slices and maps, and zero-valued structs are not falsy.
func IsFalsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() == 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
