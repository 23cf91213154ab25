package scene

import (
	"strings"
	"testing"

	"github.com/cyypherus/salt/pkg/graphics"
)

func TestHitTestTopmostWins(t *testing.T) {
	var v View[testState]
	v.Push(clickable(Shape[testState]{ID: 1, Geometry: RectShape{X: 0, Y: 0, Width: 100, Height: 100}}))
	v.Push(clickable(Shape[testState]{ID: 2, Geometry: RectShape{X: 25, Y: 25, Width: 50, Height: 50}}))

	index, id, ok := v.HitTest(50, 50)
	if !ok {
		t.Fatal("expected a hit in the overlap region")
	}
	if id != 2 || index != 1 {
		t.Errorf("HitTest = (index %d, id %d), want topmost (index 1, id 2)", index, id)
	}

	// Outside the top shape but inside the bottom one.
	index, id, ok = v.HitTest(10, 10)
	if !ok || id != 1 || index != 0 {
		t.Errorf("HitTest(10,10) = (%d, %d, %v), want (0, 1, true)", index, id, ok)
	}
}

func TestHitTestSkipsDecorativeShapes(t *testing.T) {
	var v View[testState]
	v.Push(clickable(Shape[testState]{ID: 1, Geometry: RectShape{X: 0, Y: 0, Width: 100, Height: 100}}))
	// Decorative overlay on top of the interactive shape.
	v.Push(Shape[testState]{ID: 2, Geometry: RectShape{X: 0, Y: 0, Width: 100, Height: 100}})

	_, id, ok := v.HitTest(50, 50)
	if !ok || id != 1 {
		t.Errorf("decorative shape intercepted the hit: got (id %d, ok %v), want id 1", id, ok)
	}
}

func TestHitTestAllDecorative(t *testing.T) {
	var v View[testState]
	v.Push(Shape[testState]{ID: 1, Geometry: RectShape{Width: 100, Height: 100}})
	v.Push(Shape[testState]{ID: 2, Geometry: CircleShape{CX: 50, CY: 50, R: 50}})

	for _, p := range []graphics.Offset{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 99, Y: 99}} {
		if _, _, ok := v.HitTest(p.X, p.Y); ok {
			t.Errorf("scene with only non-interactive shapes hit at (%v, %v)", p.X, p.Y)
		}
	}
}

func TestClearRoundTrip(t *testing.T) {
	var v View[testState]
	v.Push(clickable(Shape[testState]{ID: 1, Geometry: RectShape{X: 10, Y: 10, Width: 50, Height: 20}}))

	if _, _, ok := v.HitTest(20, 20); !ok {
		t.Fatal("expected hit before clear")
	}
	v.Clear()
	if v.Len() != 0 {
		t.Errorf("Len after clear = %d, want 0", v.Len())
	}
	if _, _, ok := v.HitTest(20, 20); ok {
		t.Error("hit inside former geometry after clear")
	}
}

func TestFindByID(t *testing.T) {
	var v View[testState]
	v.Push(Shape[testState]{ID: 7, Geometry: RectShape{}})
	v.Push(Shape[testState]{ID: 9, Geometry: RectShape{}})

	if index, ok := v.FindByID(9); !ok || index != 1 {
		t.Errorf("FindByID(9) = (%d, %v), want (1, true)", index, ok)
	}
	if _, ok := v.FindByID(42); ok {
		t.Error("FindByID of absent id must report not found")
	}
}

func TestRenderEmptyScene(t *testing.T) {
	var v View[testState]
	got := v.Render(graphics.Dimensions{Width: 800, Height: 600})

	const want = `<svg xmlns="http://www.w3.org/2000/svg" width="100%" height="100%" viewBox="0 0 800 600"></svg>`
	if got != want {
		t.Errorf("empty render = %q, want %q", got, want)
	}
}

func TestRenderRect(t *testing.T) {
	var v View[testState]
	v.Push(Shape[testState]{ID: 1, Geometry: RectShape{
		X: 10, Y: 20, Width: 50, Height: 30,
		CornerRadius: 5,
		Fill:         graphics.ColorWhite,
		Stroke:       graphics.ColorBlack,
		StrokeWidth:  2,
	}})
	got := v.Render(graphics.Dimensions{Width: 100, Height: 100})

	const wantElem = `<rect x="10" y="20" width="50" height="30" rx="5" ry="5" fill="#ffffffff" stroke="#000000ff" stroke-width="2" />`
	if !strings.Contains(got, wantElem) {
		t.Errorf("render = %q, want it to contain %q", got, wantElem)
	}
}

func TestRenderCircle(t *testing.T) {
	var v View[testState]
	v.Push(Shape[testState]{ID: 1, Geometry: CircleShape{
		CX: 40, CY: 50, R: 5,
		Fill: graphics.ColorRed, Stroke: graphics.ColorTransparent, StrokeWidth: 1,
	}})
	got := v.Render(graphics.Dimensions{Width: 100, Height: 100})

	const wantElem = `<circle cx="40" cy="50" r="5" fill="#ff0000ff" stroke="#00000000" stroke-width="1" />`
	if !strings.Contains(got, wantElem) {
		t.Errorf("render = %q, want it to contain %q", got, wantElem)
	}
}

func TestRenderText(t *testing.T) {
	var v View[testState]
	v.Push(Shape[testState]{ID: 1, Geometry: TextShape{
		X: 400, Y: 80, Text: "Counter: 3",
		FontFamily: "Arial", FontSize: 32,
		Fill:   graphics.ColorBlack,
		Anchor: AnchorMiddle,
	}})
	got := v.Render(graphics.Dimensions{Width: 800, Height: 600})

	const wantElem = `<text x="400" y="80" font-family="Arial" font-size="32" fill="#000000ff" text-anchor="middle">Counter: 3</text>`
	if !strings.Contains(got, wantElem) {
		t.Errorf("render = %q, want it to contain %q", got, wantElem)
	}
}

func TestRenderTextDefaults(t *testing.T) {
	var v View[testState]
	v.Push(Shape[testState]{ID: 1, Geometry: TextShape{X: 1, Y: 2, Text: "x"}})
	got := v.Render(graphics.Dimensions{Width: 10, Height: 10})

	if !strings.Contains(got, `font-family="sans-serif"`) {
		t.Errorf("render = %q, want default sans-serif family", got)
	}
	if !strings.Contains(got, `font-size="12"`) {
		t.Errorf("render = %q, want default font size 12", got)
	}
}

func TestRenderPath(t *testing.T) {
	path := NewPath().MoveTo(0, 0).LineTo(10, 0).CubicTo(15, 0, 20, 5, 20, 10).Close()
	path.Fill = graphics.ColorTransparent
	path.Stroke = graphics.ColorBlack
	path.StrokeWidth = 2

	var v View[testState]
	v.Push(Shape[testState]{ID: 1, Geometry: path})
	got := v.Render(graphics.Dimensions{Width: 100, Height: 100})

	const wantElem = `<path d="M 0,0 L 10,0 C 15,0 20,5 20,10 Z" fill="#00000000" stroke="#000000ff" stroke-width="2" />`
	if !strings.Contains(got, wantElem) {
		t.Errorf("render = %q, want it to contain %q", got, wantElem)
	}
}

func TestRenderPreservesInsertionOrder(t *testing.T) {
	var v View[testState]
	v.Push(Shape[testState]{ID: 1, Geometry: RectShape{X: 1}})
	v.Push(Shape[testState]{ID: 2, Geometry: RectShape{X: 2}})
	got := v.Render(graphics.Dimensions{Width: 10, Height: 10})

	first := strings.Index(got, `x="1"`)
	second := strings.Index(got, `x="2"`)
	if first == -1 || second == -1 || first > second {
		t.Errorf("shapes out of paint order in %q", got)
	}
}

func TestRenderIsPure(t *testing.T) {
	var v View[testState]
	v.Push(clickable(Shape[testState]{ID: 1, Geometry: RectShape{Width: 10, Height: 10}}))

	a := v.Render(graphics.Dimensions{Width: 50, Height: 50})
	b := v.Render(graphics.Dimensions{Width: 50, Height: 50})
	if a != b {
		t.Error("repeated renders of the same view must be identical")
	}
	if _, _, ok := v.HitTest(5, 5); !ok {
		t.Error("render must not disturb hit testing")
	}
}

func TestIDDerivation(t *testing.T) {
	if ID("a") == ID("b") {
		t.Error("distinct keys should produce distinct ids")
	}
	if ID("toolbar/clear") != ID("toolbar/clear") {
		t.Error("same key must produce the same id across calls")
	}
	if IndexedID("swatch", 0) == IndexedID("swatch", 1) {
		t.Error("distinct indexes must disambiguate a shared key")
	}
	if IndexedID("swatch", 0) != ID("swatch") {
		t.Error("index 0 must match the plain key hash")
	}
}
