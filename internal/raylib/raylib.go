package raylib

import "unsafe"

const (
	// CameraCustom leaves the camera untouched by UpdateCamera.
	CameraCustom = 0
	// CameraFree moves the camera freely with mouse and keyboard.
	CameraFree = 1
	// CameraOrbital rotates the camera around its target.
	CameraOrbital = 2
	// CameraFirstPerson moves the camera on the world plane, looking around with the mouse.
	CameraFirstPerson = 3
	// CameraThirdPerson follows the target from behind.
	CameraThirdPerson = 4

	// CameraPerspective selects a perspective projection.
	CameraPerspective = 0
	// CameraOrthographic selects an orthographic projection.
	CameraOrthographic = 1
)

// Trace log levels understood by SetTraceLogLevel.
const (
	LogAll = iota
	LogTrace
	LogDebug
	LogInfo
	LogWarning
	LogError
	LogFatal
	LogNone
)

// Color mirrors the C Color struct: four unsigned bytes.
type Color struct {
	R, G, B, A uint8
}

// Vector3 mirrors the C Vector3 struct.
type Vector3 struct {
	X, Y, Z float32
}

// Camera3D mirrors the C Camera3D struct. Projection holds one of the
// CameraPerspective/CameraOrthographic values but is not guaranteed to.
type Camera3D struct {
	Position   Vector3
	Target     Vector3
	Up         Vector3
	Fovy       float32
	Projection int32
}

// Raylib describes the subset of raylib entry points used by this module.
//
// Implementations call straight into the native library and perform no
// validation. Strings are NUL-terminated byte pointers that must stay alive
// for the duration of the call. All methods must be called from the thread
// that called InitWindow.
type Raylib interface {
	// InitWindow opens the window and initializes the process-wide graphics context.
	InitWindow(width, height int32, title *byte)

	// CloseWindow closes the window and releases the graphics context.
	CloseWindow()

	// WindowShouldClose reports whether the user asked to close the window.
	WindowShouldClose() bool

	// BeginDrawing sets up the canvas to start a frame.
	BeginDrawing()

	// EndDrawing ends the frame and swaps buffers.
	EndDrawing()

	// BeginMode3D switches drawing to 3D using the given camera.
	BeginMode3D(camera Camera3D)

	// EndMode3D returns to the default 2D orthographic mode.
	EndMode3D()

	// ClearBackground fills the frame with a solid color.
	ClearBackground(color Color)

	// DrawText draws text with the default font.
	DrawText(text *byte, posX, posY, fontSize int32, color Color)

	// DrawGrid draws a grid centered at (0, 0, 0).
	DrawGrid(slices int32, spacing float32)

	// DrawCube draws a solid cube.
	DrawCube(position Vector3, width, height, length float32, color Color)

	// DrawCubeWires draws a cube outline.
	DrawCubeWires(position Vector3, width, height, length float32, color Color)

	// UpdateCamera updates the camera in place for the selected mode,
	// polling keyboard and mouse internally.
	UpdateCamera(camera *Camera3D, mode int32)

	// EnableCursor shows and releases the cursor.
	EnableCursor()

	// DisableCursor hides and captures the cursor.
	DisableCursor()

	// SetTargetFPS caps the frame rate.
	SetTargetFPS(fps int32)

	// GetCurrentMonitor returns the index of the monitor the window is on.
	GetCurrentMonitor() int32

	// GetMonitorRefreshRate returns the refresh rate of a monitor in Hz.
	GetMonitorRefreshRate(monitor int32) int32

	// TakeScreenshot saves the current framebuffer to a PNG file.
	TakeScreenshot(fileName *byte)

	// SetTraceLogLevel sets the minimum level raylib logs at.
	SetTraceLogLevel(level int32)
}

// GoString copies a NUL-terminated C string into a Go string.
func GoString(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	var bytes []byte
	for p := ptr; *p != 0; p = (*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + 1)) {
		bytes = append(bytes, *p)
	}
	return string(bytes)
}
