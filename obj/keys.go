package obj

import (
	"slices"

	"github.com/samber/lo"
)

// Pick returns a new map holding only the given keys of m that exist.
func Pick[V any](m map[string]V, keys ...string) map[string]V {
	return lo.PickByKeys(m, keys)
}

// Omit returns a shallow copy of m without the given keys.
func Omit[V any](m map[string]V, keys ...string) map[string]V {
	return lo.OmitByKeys(m, keys)
}

// IsEmptyObject reports whether m has no keys. A nil map is empty.
func IsEmptyObject[V any](m map[string]V) bool {
	return len(m) == 0
}

// Invert swaps the keys and values of m. When several keys share a value the
// lexicographically greatest key wins, so the result does not depend on map
// iteration order.
//
//	Invert(map[string]string{"a": "x", "b": "x", "c": "y"}) // → {"x": "b", "y": "c"}
func Invert(m map[string]string) map[string]string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	out := make(map[string]string, len(m))
	for _, k := range keys {
		out[m[k]] = k
	}
	return out
}
