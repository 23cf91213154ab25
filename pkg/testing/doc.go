// Package testing provides an application test harness for salt.
//
// Create a tester around an initial state and a build function, then drive
// pointer events against it. The tester honors the host contract: after any
// event that reports a needed redraw, it re-renders the view, so gesture
// tests exercise real per-frame scene rebuilds.
//
//	func TestButton(t *testing.T) {
//	    state := appState{}
//	    tester := salttest.NewTester(t, &state, buildView)
//	    tester.Pump()
//
//	    tester.TapAt(graphics.Offset{X: 20, Y: 20})
//	    if state.clicks != 1 {
//	        t.Errorf("clicks = %d, want 1", state.clicks)
//	    }
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import salttest "github.com/cyypherus/salt/pkg/testing"
package testing
