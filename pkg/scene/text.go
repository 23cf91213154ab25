package scene

import (
	"fmt"
	"strings"

	"github.com/cyypherus/salt/pkg/graphics"
)

// TextAnchor controls how text is horizontally anchored on its x coordinate.
type TextAnchor int

const (
	// AnchorStart grows the text rightward from x.
	AnchorStart TextAnchor = iota
	// AnchorMiddle centers the text on x.
	AnchorMiddle
	// AnchorEnd grows the text leftward from x.
	AnchorEnd
)

// String returns the SVG text-anchor attribute value.
func (a TextAnchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// TextShape is a run of text with its baseline at (X, Y).
type TextShape struct {
	X          float64
	Y          float64
	Text       string
	FontFamily string
	FontSize   float64
	Fill       graphics.Color
	Anchor     TextAnchor
}

// Hit testing uses the deterministic size estimate from pkg/graphics, not
// real font metrics, so results never depend on which fonts are registered.
// The box spans one estimated line height upward from the baseline.
func (s TextShape) Contains(x, y float64) bool {
	size := s.effectiveFontSize()
	textWidth := graphics.EstimateTextWidth(s.Text, size)
	textHeight := graphics.EstimateTextHeight(size)

	var left, right float64
	switch s.Anchor {
	case AnchorMiddle:
		left, right = s.X-textWidth/2, s.X+textWidth/2
	case AnchorEnd:
		left, right = s.X-textWidth, s.X
	default:
		left, right = s.X, s.X+textWidth
	}

	return x >= left && x <= right && y >= s.Y-textHeight && y <= s.Y
}

func (s TextShape) writeSVG(b *strings.Builder) {
	family := s.FontFamily
	if family == "" {
		family = "sans-serif"
	}
	fmt.Fprintf(b,
		`<text x="%v" y="%v" font-family="%s" font-size="%v" fill="%s" text-anchor="%s">%s</text>`,
		s.X, s.Y, family, s.effectiveFontSize(), s.Fill.SVG(), s.Anchor, s.Text)
}

func (s TextShape) effectiveFontSize() float64 {
	if s.FontSize <= 0 {
		return 12
	}
	return s.FontSize
}
