// Package scene provides the retained shape model for salt applications.
//
// A scene is an ordered list of shapes rebuilt from scratch every frame.
// Shapes carry a caller-stable identity so interaction tracking survives
// rebuilds, and optional click/hover/drag callbacks closing over application
// state. Shapes without any callback are transparent to hit testing, so
// purely decorative geometry never intercepts gestures.
//
// The view renders to an SVG markup string; it never rasterizes.
package scene
