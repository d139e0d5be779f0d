package obj

import (
	"strconv"
	"strings"
)

// Lookup returns the value at the dot-notation path and whether it exists.
// Map segments select keys; numeric segments select elements of []any.
// A key that is present with a nil value counts as existing.
//
//	Lookup(m, "user.roles.0") // first element of m["user"]["roles"]
func Lookup(m map[string]any, path string) (any, bool) {
	var current any = m
	for _, seg := range strings.Split(path, ".") {
		next, ok := child(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Get returns the value at the dot-notation path, or def[0] (nil when not
// given) as soon as a segment is missing.
//
//	Get(m, "user.address.city")         // "London"
//	Get(m, "user.missing", "default")   // "default"
func Get(m map[string]any, path string, def ...any) any {
	if v, ok := Lookup(m, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation path exists in m.
func Has(m map[string]any, path string) bool {
	_, ok := Lookup(m, path)
	return ok
}

// Set writes value at the dot-notation path, modifying m in place. Missing
// intermediate segments, and segments holding anything other than a map or
// []any, are replaced with new maps. Numeric segments address existing
// elements of a []any; Set leaves m unchanged when such an index is out of
// range, since a slice stored in its parent cannot grow in place.
//
// m must not be nil.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	last := len(segments) - 1
	var current any = m
	for _, seg := range segments[:last] {
		if current = descend(current, seg); current == nil {
			return
		}
	}
	switch c := current.(type) {
	case map[string]any:
		c[segments[last]] = value
	case []any:
		if i, ok := index(c, segments[last]); ok {
			c[i] = value
		}
	}
}

// Dot flattens nested maps into a single-level map keyed by dot paths.
// Slices are kept as leaf values.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}}) // → {"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			dotFlatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

func child(container any, seg string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	case []any:
		if i, ok := index(c, seg); ok {
			return c[i], true
		}
	}
	return nil, false
}

// descend returns the container stored under seg, replacing a missing or
// scalar slot with a new map. It returns nil when seg cannot address a slot.
func descend(container any, seg string) any {
	switch c := container.(type) {
	case map[string]any:
		if next := c[seg]; writable(next) {
			return next
		}
		next := make(map[string]any)
		c[seg] = next
		return next
	case []any:
		i, ok := index(c, seg)
		if !ok {
			return nil
		}
		if writable(c[i]) {
			return c[i]
		}
		next := make(map[string]any)
		c[i] = next
		return next
	}
	return nil
}

func writable(v any) bool {
	switch c := v.(type) {
	case map[string]any:
		return c != nil
	case []any:
		return true
	}
	return false
}

func index(s []any, seg string) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= len(s) {
		return 0, false
	}
	return i, true
}
