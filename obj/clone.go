package obj

import (
	"reflect"
	"time"
)

var timePtrType = reflect.TypeFor[*time.Time]()

// DeepClone returns a copy of v that shares no map, slice or array storage
// with it. *time.Time values are copied to a new pointer holding the same
// instant; other pointers, structs and scalars are returned as they are.
//
// A container reachable along several paths is cloned once and the copy is
// shared the same way, so shared sub-structures and cycles survive cloning.
func DeepClone(v any) any {
	if v == nil {
		return nil
	}
	c := cloner{seen: make(map[ref]reflect.Value)}
	return c.value(reflect.ValueOf(v)).Interface()
}

// ref identifies a container by type and backing storage. Slices also key on
// length so that s[:2] and s[:3] stay distinct.
type ref struct {
	typ reflect.Type
	ptr uintptr
	len int
}

type cloner struct {
	seen map[ref]reflect.Value
}

func (c *cloner) value(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(c.value(rv.Elem()))
		return out

	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		key := ref{typ: rv.Type(), ptr: rv.Pointer()}
		if done, ok := c.seen[key]; ok {
			return done
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		c.seen[key] = out
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), c.value(iter.Value()))
		}
		return out

	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		key := ref{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}
		if done, ok := c.seen[key]; ok {
			return done
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		c.seen[key] = out
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(c.value(rv.Index(i)))
		}
		return out

	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(c.value(rv.Index(i)))
		}
		return out

	case reflect.Pointer:
		if rv.Type() == timePtrType && !rv.IsNil() {
			t := *(rv.Interface().(*time.Time))
			return reflect.ValueOf(&t)
		}
	}
	return rv
}

// DeepMerge returns a new record holding target's entries overlaid with
// source's. When both sides hold a map[string]any under the same key the two
// are merged recursively; otherwise the source value wins. Neither input is
// modified and the result shares no container storage with them.
func DeepMerge(target, source map[string]any) map[string]any {
	out := make(map[string]any, len(target)+len(source))
	for k, v := range target {
		out[k] = DeepClone(v)
	}
	for k, sv := range source {
		sm, srcIsMap := sv.(map[string]any)
		tm, dstIsMap := out[k].(map[string]any)
		if srcIsMap && dstIsMap {
			out[k] = DeepMerge(tm, sm)
			continue
		}
		out[k] = DeepClone(sv)
	}
	return out
}
