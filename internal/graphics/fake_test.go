package graphics

import (
	"fmt"
	"testing"

	"github.com/tinyrange/gfx/internal/raylib"
)

// fakeRaylib records every native call as a formatted string.
type fakeRaylib struct {
	calls []string

	shouldClose []bool // successive WindowShouldClose results; true once exhausted
	monitor     int32
	refreshRate int32

	// updateCamera mutates the camera in UpdateCamera; nil leaves it unchanged.
	updateCamera func(*raylib.Camera3D)
}

var _ raylib.Raylib = (*fakeRaylib)(nil)

func (f *fakeRaylib) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeRaylib) InitWindow(width, height int32, title *byte) {
	f.record("InitWindow(%d, %d, %q)", width, height, raylib.GoString(title))
}

func (f *fakeRaylib) CloseWindow() { f.record("CloseWindow()") }

func (f *fakeRaylib) WindowShouldClose() bool {
	f.record("WindowShouldClose()")
	if len(f.shouldClose) == 0 {
		return true
	}
	v := f.shouldClose[0]
	f.shouldClose = f.shouldClose[1:]
	return v
}

func (f *fakeRaylib) BeginDrawing() { f.record("BeginDrawing()") }

func (f *fakeRaylib) EndDrawing() { f.record("EndDrawing()") }

func (f *fakeRaylib) BeginMode3D(c raylib.Camera3D) { f.record("BeginMode3D(%v)", c) }

func (f *fakeRaylib) EndMode3D() { f.record("EndMode3D()") }

func (f *fakeRaylib) ClearBackground(c raylib.Color) { f.record("ClearBackground(%v)", c) }

func (f *fakeRaylib) DrawText(text *byte, x, y, size int32, c raylib.Color) {
	f.record("DrawText(%q, %d, %d, %d, %v)", raylib.GoString(text), x, y, size, c)
}

func (f *fakeRaylib) DrawGrid(slices int32, spacing float32) {
	f.record("DrawGrid(%d, %v)", slices, spacing)
}

func (f *fakeRaylib) DrawCube(p raylib.Vector3, w, h, l float32, c raylib.Color) {
	f.record("DrawCube(%v, %v, %v, %v, %v)", p, w, h, l, c)
}

func (f *fakeRaylib) DrawCubeWires(p raylib.Vector3, w, h, l float32, c raylib.Color) {
	f.record("DrawCubeWires(%v, %v, %v, %v, %v)", p, w, h, l, c)
}

func (f *fakeRaylib) UpdateCamera(c *raylib.Camera3D, mode int32) {
	f.record("UpdateCamera(%d)", mode)
	if f.updateCamera != nil {
		f.updateCamera(c)
	}
}

func (f *fakeRaylib) EnableCursor() { f.record("EnableCursor()") }

func (f *fakeRaylib) DisableCursor() { f.record("DisableCursor()") }

func (f *fakeRaylib) SetTargetFPS(fps int32) { f.record("SetTargetFPS(%d)", fps) }

func (f *fakeRaylib) GetCurrentMonitor() int32 {
	f.record("GetCurrentMonitor()")
	return f.monitor
}

func (f *fakeRaylib) GetMonitorRefreshRate(monitor int32) int32 {
	f.record("GetMonitorRefreshRate(%d)", monitor)
	return f.refreshRate
}

func (f *fakeRaylib) TakeScreenshot(name *byte) {
	f.record("TakeScreenshot(%q)", raylib.GoString(name))
}

func (f *fakeRaylib) SetTraceLogLevel(level int32) { f.record("SetTraceLogLevel(%d)", level) }

// reset drops the calls recorded so far.
func (f *fakeRaylib) reset() {
	f.calls = nil
}

func (f *fakeRaylib) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeRaylib) wantCalls(t *testing.T, want ...string) {
	t.Helper()
	if len(f.calls) != len(want) {
		t.Fatalf("native calls = %q, want %q", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("native calls = %q, want %q", f.calls, want)
		}
	}
}

// openWindow opens a window on a fresh fake and closes it when the test ends.
func openWindow(t *testing.T, width, height int, title string) (Window, *fakeRaylib) {
	t.Helper()
	f := &fakeRaylib{}
	w, err := InitWindow(f, width, height, title)
	if err != nil {
		t.Fatalf("InitWindow() error = %v", err)
	}
	t.Cleanup(func() {
		if !w.handle().closed {
			w.Close()
		}
	})
	f.reset()
	return w, f
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
