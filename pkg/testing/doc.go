// Package testing provides helpers for testing widget paint output and
// input handling without a host window.
//
// # Capturing paint
//
// CaptureCanvas records every canvas call as a DisplayOp:
//
//	canvas := vktest.NewCaptureCanvas(graphics.Size{Width: 100, Height: 30})
//	button.Paint(canvas)
//	circles := canvas.Filter("drawCircle")
//
// Snapshots of the recorded ops can be compared against golden files:
//
//	canvas.Snapshot().MatchesFile(t, "testdata/button.json")
//
// Update golden files with:
//
//	VISUALKIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Simulating input
//
// Pointer delivers enter, down, move, up and leave events with consistent
// IDs and deltas; PressKeys delivers navigation keys:
//
//	p := vktest.NewPointer(button)
//	p.Click(graphics.Offset{X: 10, Y: 10})
//
// # Frame timing
//
// Loop.Frame reads the animation clock; a FakeClock makes its deltas exact:
//
//	clock := vktest.InstallFakeClock(t)
//	loop.Frame()
//	clock.Advance(30 * time.Millisecond)
//	loop.Frame()
//
// The package name shadows the standard testing package, so tests import it
// as vktest:
//
//	import vktest "github.com/go-drift/visualkit/pkg/testing"
package testing
