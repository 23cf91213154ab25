package scene

import (
	"fmt"
	"strings"

	"github.com/cyypherus/salt/pkg/graphics"
)

// RectShape is an axis-aligned rectangle with optional rounded corners.
type RectShape struct {
	X            float64
	Y            float64
	Width        float64
	Height       float64
	CornerRadius float64
	Fill         graphics.Color
	Stroke       graphics.Color
	StrokeWidth  float64
}

// RectIn returns a rectangle shape filling the given placement rect.
func RectIn(r graphics.Rect) RectShape {
	return RectShape{
		X:      r.Left,
		Y:      r.Top,
		Width:  r.Width(),
		Height: r.Height(),
	}
}

// Contains reports whether the point lies within the rectangle, bounds
// inclusive. Corner rounding is ignored for hit testing.
func (s RectShape) Contains(x, y float64) bool {
	return x >= s.X && x <= s.X+s.Width && y >= s.Y && y <= s.Y+s.Height
}

func (s RectShape) writeSVG(b *strings.Builder) {
	fmt.Fprintf(b,
		`<rect x="%v" y="%v" width="%v" height="%v" rx="%v" ry="%v" fill="%s" stroke="%s" stroke-width="%v" />`,
		s.X, s.Y, s.Width, s.Height, s.CornerRadius, s.CornerRadius,
		s.Fill.SVG(), s.Stroke.SVG(), s.StrokeWidth)
}
