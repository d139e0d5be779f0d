package arr

import (
	"fmt"
	"iter"
)

// Groups is the result of [GroupBy]: a mapping from stringified key to the
// elements sharing that key. Keys enumerate in order of first occurrence.
type Groups[T any] struct {
	keys  []string
	items map[string][]T
}

// GroupBy partitions items by the key fn extracts. Keys are stringified with
// fmt.Sprint, so 1 and "1" land in the same group. Element order within a
// group follows items.
//
//	g := arr.GroupBy([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//	g.Keys()       // → [false true]
//	g.Get("true")  // → [2 4], true
func GroupBy[T any, K comparable](items []T, fn func(T) K) *Groups[T] {
	g := &Groups[T]{items: make(map[string][]T)}
	for _, item := range items {
		key := fmt.Sprint(fn(item))
		if _, ok := g.items[key]; !ok {
			g.keys = append(g.keys, key)
		}
		g.items[key] = append(g.items[key], item)
	}
	return g
}

// Len returns the number of distinct keys.
func (g *Groups[T]) Len() int { return len(g.keys) }

// Keys returns the keys in order of first occurrence.
func (g *Groups[T]) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the elements grouped under key.
func (g *Groups[T]) Get(key string) ([]T, bool) {
	items, ok := g.items[key]
	return items, ok
}

// All yields each key with its elements in order of first occurrence.
func (g *Groups[T]) All() iter.Seq2[string, []T] {
	return func(yield func(string, []T) bool) {
		for _, key := range g.keys {
			if !yield(key, g.items[key]) {
				return
			}
		}
	}
}

// Map returns the groups as a plain map. The map is new; the element slices
// are shared with g.
func (g *Groups[T]) Map() map[string][]T {
	out := make(map[string][]T, len(g.items))
	for k, v := range g.items {
		out[k] = v
	}
	return out
}
