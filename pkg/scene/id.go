package scene

import "hash/fnv"

// ID derives a stable shape identity from a caller-chosen key.
//
// The key stands in for a call-site fingerprint: pick one distinct string per
// shape-building call site (for example "toolbar/clear") and reuse it on
// every rebuild so interaction tracking can re-locate the shape across
// frames. Uniqueness within a scene is a caller obligation; two live shapes
// sharing an id make hit testing and click routing ambiguous (first match
// wins, silently).
func ID(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}

// IndexedID derives a stable identity for shapes built in a loop by folding
// a per-iteration index into the key's hash.
//
// A call site reused across loop iterations with plain ID collides silently;
// passing the loop index here is the caller's responsibility, not something
// the framework can detect.
func IndexedID(key string, index uint64) uint64 {
	return ID(key) ^ index
}
