package scene

import (
	"fmt"
	"strings"

	"github.com/cyypherus/salt/pkg/graphics"
)

// CircleShape is a circle centered at (CX, CY).
type CircleShape struct {
	CX          float64
	CY          float64
	R           float64
	Fill        graphics.Color
	Stroke      graphics.Color
	StrokeWidth float64
}

// Contains reports whether the point lies within the circle, boundary
// inclusive.
func (s CircleShape) Contains(x, y float64) bool {
	dx := x - s.CX
	dy := y - s.CY
	return dx*dx+dy*dy <= s.R*s.R
}

func (s CircleShape) writeSVG(b *strings.Builder) {
	fmt.Fprintf(b,
		`<circle cx="%v" cy="%v" r="%v" fill="%s" stroke="%s" stroke-width="%v" />`,
		s.CX, s.CY, s.R, s.Fill.SVG(), s.Stroke.SVG(), s.StrokeWidth)
}
