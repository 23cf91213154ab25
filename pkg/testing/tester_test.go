package testing

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cyypherus/salt/pkg/app"
	"github.com/cyypherus/salt/pkg/graphics"
	"github.com/cyypherus/salt/pkg/scene"
)

type tapState struct {
	taps int
}

func buildTapper(ctx *app.Context[tapState], state *tapState, _ graphics.Dimensions) {
	ctx.View.Push(scene.Shape[tapState]{
		ID:       scene.ID("tapper"),
		Geometry: scene.RectShape{X: 0, Y: 0, Width: 100, Height: 100},
		OnClick:  func(s *tapState) { s.taps++ },
	})
	ctx.View.Push(scene.Shape[tapState]{
		ID: scene.ID("tapper/label"),
		Geometry: scene.TextShape{
			X: 50, Y: 130,
			Text:     "taps: " + strconv.Itoa(state.taps),
			FontSize: 14,
			Fill:     graphics.ColorBlack,
			Anchor:   scene.AnchorMiddle,
		},
	})
}

func TestPumpRendersCurrentState(t *testing.T) {
	tester := NewTester(t, &tapState{taps: 2}, buildTapper)
	svg := tester.Pump()

	if !strings.Contains(svg, ">taps: 2</text>") {
		t.Errorf("render = %q, want the current tap count", svg)
	}
	if tester.LastSVG() != svg {
		t.Error("LastSVG must return the most recent render")
	}
	if tester.RenderCount() != 1 {
		t.Errorf("render count = %d, want 1", tester.RenderCount())
	}
}

func TestTapAtFiresClickAndRerenders(t *testing.T) {
	state := &tapState{}
	tester := NewTester(t, state, buildTapper)
	tester.Pump()

	tester.TapAt(graphics.Offset{X: 50, Y: 50})

	if state.taps != 1 {
		t.Errorf("taps = %d, want 1", state.taps)
	}
	if !strings.Contains(tester.LastSVG(), ">taps: 1</text>") {
		t.Errorf("last render is stale: %q", tester.LastSVG())
	}
	// Initial pump, then one re-render per press and release.
	if tester.RenderCount() != 3 {
		t.Errorf("render count = %d, want 3", tester.RenderCount())
	}
}

func TestMissSendsNoRedraw(t *testing.T) {
	tester := NewTester(t, &tapState{}, buildTapper)
	tester.Pump()

	if tester.SendPointerDown(graphics.Offset{X: 500, Y: 500}) {
		t.Error("press over empty space must not report a redraw")
	}
	if tester.RenderCount() != 1 {
		t.Errorf("render count = %d, want no re-render after a miss", tester.RenderCount())
	}
}

func TestSendClick(t *testing.T) {
	state := &tapState{}
	tester := NewTester(t, state, buildTapper)
	tester.Pump()

	if !tester.SendClick(graphics.Offset{X: 10, Y: 10}) {
		t.Error("combined click on the shape must report a redraw")
	}
	if state.taps != 1 {
		t.Errorf("taps = %d, want 1", state.taps)
	}
}

func TestSetSize(t *testing.T) {
	tester := NewTester(t, &tapState{}, buildTapper)
	tester.SetSize(1024, 768)

	if !strings.Contains(tester.Pump(), `viewBox="0 0 1024 768"`) {
		t.Errorf("render = %q, want the configured size", tester.LastSVG())
	}
}

type strokeState struct {
	points []graphics.Offset
}

func buildStrokeRecorder(ctx *app.Context[strokeState], _ *strokeState, _ graphics.Dimensions) {
	ctx.View.Push(scene.Shape[strokeState]{
		ID:       scene.ID("surface"),
		Geometry: scene.RectShape{X: 0, Y: 0, Width: 400, Height: 400},
		OnDrag: func(s *strokeState, phase scene.DragPhase, _, current graphics.Offset) {
			if phase != scene.DragEnd {
				s.points = append(s.points, current)
			}
		},
	})
}

func TestDragFromInterpolatesMoves(t *testing.T) {
	state := &strokeState{}
	tester := NewTester(t, state, buildStrokeRecorder)
	tester.Pump()
	// Settle hover on the surface so every move reports drag motion.
	tester.SendPointerMove(graphics.Offset{X: 100, Y: 100})

	tester.DragFrom(graphics.Offset{X: 100, Y: 100}, graphics.Offset{X: 80, Y: 0}, 4)

	want := []graphics.Offset{
		{X: 100, Y: 100},
		{X: 120, Y: 100},
		{X: 140, Y: 100},
		{X: 160, Y: 100},
		{X: 180, Y: 100},
	}
	if len(state.points) != len(want) {
		t.Fatalf("recorded %d points, want %d: %v", len(state.points), len(want), state.points)
	}
	for i := range want {
		if state.points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, state.points[i], want[i])
		}
	}
}
