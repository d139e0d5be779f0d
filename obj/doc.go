// Package obj provides structural helpers for dynamic records, the
// map[string]any / []any trees produced by decoding JSON or YAML.
//
// # Copying and merging
//
// [DeepClone] copies every map, slice and array it reaches, so the result can
// be modified freely. [DeepMerge] combines two records into a new one without
// touching either input.
//
//	defaults := map[string]any{"db": map[string]any{"host": "localhost", "port": 5432}}
//	override := map[string]any{"db": map[string]any{"host": "db.internal"}}
//	cfg := obj.DeepMerge(defaults, override)
//	// → {"db": {"host": "db.internal", "port": 5432}}
//
// # Dot paths
//
// [Get], [Lookup], [Has] and [Set] address nested values with dot-separated
// paths. Numeric segments index into []any:
//
//	obj.Get(cfg, "db.host")               // "db.internal"
//	obj.Get(cfg, "db.user", "postgres")   // "postgres"
//	obj.Set(cfg, "cache.ttl", 60)         // creates the "cache" map
//
// Set is the one helper that mutates its argument.
package obj
