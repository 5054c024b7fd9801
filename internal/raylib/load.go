package raylib

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ErrUnsupportedABI is returned by Load on architectures whose by-value
// struct passing convention is not implemented.
var ErrUnsupportedABI = errors.New("raylib: by-value struct arguments not supported on this architecture")

// library binds the raylib entry points of a shared library loaded at runtime.
// Entry points taking structs by value go through the architecture-specific
// abiFuncs.
type library struct {
	abiFuncs

	initWindow            func(int32, int32, *byte)
	closeWindow           func()
	windowShouldClose     func() bool
	beginDrawing          func()
	endDrawing            func()
	endMode3D             func()
	clearBackground       func(uint32)
	drawText              func(*byte, int32, int32, int32, uint32)
	drawGrid              func(int32, float32)
	updateCamera          func(*Camera3D, int32)
	enableCursor          func()
	disableCursor         func()
	setTargetFPS          func(int32)
	getCurrentMonitor     func() int32
	getMonitorRefreshRate func(int32) int32
	takeScreenshot        func(*byte)
	setTraceLogLevel      func(int32)
}

// Load opens the raylib shared library at path and binds its entry points.
// An empty path loads the platform's default library name from the system
// search path.
func Load(path string) (Raylib, error) {
	if !abiSupported {
		return nil, ErrUnsupportedABI
	}
	if path == "" {
		path = defaultLibrary
	}
	handle, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("raylib: open %s: %w", path, err)
	}
	register := func(dst interface{}, name string) {
		purego.RegisterLibFunc(dst, handle, name)
	}

	rl := &library{}
	register(&rl.initWindow, "InitWindow")
	register(&rl.closeWindow, "CloseWindow")
	register(&rl.windowShouldClose, "WindowShouldClose")
	register(&rl.beginDrawing, "BeginDrawing")
	register(&rl.endDrawing, "EndDrawing")
	register(&rl.endMode3D, "EndMode3D")
	register(&rl.clearBackground, "ClearBackground")
	register(&rl.drawText, "DrawText")
	register(&rl.drawGrid, "DrawGrid")
	register(&rl.updateCamera, "UpdateCamera")
	register(&rl.enableCursor, "EnableCursor")
	register(&rl.disableCursor, "DisableCursor")
	register(&rl.setTargetFPS, "SetTargetFPS")
	register(&rl.getCurrentMonitor, "GetCurrentMonitor")
	register(&rl.getMonitorRefreshRate, "GetMonitorRefreshRate")
	register(&rl.takeScreenshot, "TakeScreenshot")
	register(&rl.setTraceLogLevel, "SetTraceLogLevel")
	rl.abiFuncs.register(register)
	return rl, nil
}

// packColor returns the bytes of c in memory order as a single integer
// register value, which is how every supported ABI passes a 4-byte struct.
func packColor(c Color) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

func (rl *library) InitWindow(width, height int32, title *byte) {
	rl.initWindow(width, height, title)
}

func (rl *library) CloseWindow() {
	rl.closeWindow()
}

func (rl *library) WindowShouldClose() bool {
	return rl.windowShouldClose()
}

func (rl *library) BeginDrawing() {
	rl.beginDrawing()
}

func (rl *library) EndDrawing() {
	rl.endDrawing()
}

func (rl *library) EndMode3D() {
	rl.endMode3D()
}

func (rl *library) ClearBackground(color Color) {
	rl.clearBackground(packColor(color))
}

func (rl *library) DrawText(text *byte, posX, posY, fontSize int32, color Color) {
	rl.drawText(text, posX, posY, fontSize, packColor(color))
}

func (rl *library) DrawGrid(slices int32, spacing float32) {
	rl.drawGrid(slices, spacing)
}

func (rl *library) UpdateCamera(camera *Camera3D, mode int32) {
	rl.updateCamera(camera, mode)
}

func (rl *library) EnableCursor() {
	rl.enableCursor()
}

func (rl *library) DisableCursor() {
	rl.disableCursor()
}

func (rl *library) SetTargetFPS(fps int32) {
	rl.setTargetFPS(fps)
}

func (rl *library) GetCurrentMonitor() int32 {
	return rl.getCurrentMonitor()
}

func (rl *library) GetMonitorRefreshRate(monitor int32) int32 {
	return rl.getMonitorRefreshRate(monitor)
}

func (rl *library) TakeScreenshot(fileName *byte) {
	rl.takeScreenshot(fileName)
}

func (rl *library) SetTraceLogLevel(level int32) {
	rl.setTraceLogLevel(level)
}

// cameraWords copies the camera into pointer-sized words in memory order.
func cameraWords(c *Camera3D) [cameraWordCount]uintptr {
	var words [cameraWordCount]uintptr
	*(*Camera3D)(unsafe.Pointer(&words[0])) = *c
	return words
}

const cameraWordCount = (unsafe.Sizeof(Camera3D{}) + unsafe.Sizeof(uintptr(0)) - 1) / unsafe.Sizeof(uintptr(0))
