// Package gestures resolves raw pointer events against a scene.
//
// The engine is a single-threaded, synchronous state machine: each call to
// Dispatch hit-tests the current view, updates long-lived drag/hover state
// keyed by shape identity (never by list position, since the scene is
// rebuilt every frame), invokes shape callbacks, and reports whether the
// host needs to re-render.
package gestures
