// Package bundled provides a raylib.Raylib backed by the copy of raylib
// compiled into the binary by raylib-go.
package bundled

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tinyrange/gfx/internal/raylib"
)

type bundled struct{}

// New returns the compiled-in raylib binding.
func New() raylib.Raylib {
	return bundled{}
}

func toRGBA(c raylib.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toVector3(v raylib.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func fromVector3(v rl.Vector3) raylib.Vector3 {
	return raylib.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func toCamera(c raylib.Camera3D) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(c.Position),
		Target:     toVector3(c.Target),
		Up:         toVector3(c.Up),
		Fovy:       c.Fovy,
		Projection: rl.CameraProjection(c.Projection),
	}
}

func fromCamera(c rl.Camera3D) raylib.Camera3D {
	return raylib.Camera3D{
		Position:   fromVector3(c.Position),
		Target:     fromVector3(c.Target),
		Up:         fromVector3(c.Up),
		Fovy:       c.Fovy,
		Projection: int32(c.Projection),
	}
}

func (bundled) InitWindow(width, height int32, title *byte) {
	rl.InitWindow(width, height, raylib.GoString(title))
}

func (bundled) CloseWindow() { rl.CloseWindow() }

func (bundled) WindowShouldClose() bool { return rl.WindowShouldClose() }

func (bundled) BeginDrawing() { rl.BeginDrawing() }

func (bundled) EndDrawing() { rl.EndDrawing() }

func (bundled) BeginMode3D(camera raylib.Camera3D) { rl.BeginMode3D(toCamera(camera)) }

func (bundled) EndMode3D() { rl.EndMode3D() }

func (bundled) ClearBackground(c raylib.Color) { rl.ClearBackground(toRGBA(c)) }

func (bundled) DrawText(text *byte, posX, posY, fontSize int32, c raylib.Color) {
	rl.DrawText(raylib.GoString(text), posX, posY, fontSize, toRGBA(c))
}

func (bundled) DrawGrid(slices int32, spacing float32) { rl.DrawGrid(slices, spacing) }

func (bundled) DrawCube(position raylib.Vector3, width, height, length float32, c raylib.Color) {
	rl.DrawCube(toVector3(position), width, height, length, toRGBA(c))
}

func (bundled) DrawCubeWires(position raylib.Vector3, width, height, length float32, c raylib.Color) {
	rl.DrawCubeWires(toVector3(position), width, height, length, toRGBA(c))
}

func (bundled) UpdateCamera(camera *raylib.Camera3D, mode int32) {
	cam := toCamera(*camera)
	rl.UpdateCamera(&cam, rl.CameraMode(mode))
	*camera = fromCamera(cam)
}

func (bundled) EnableCursor() { rl.EnableCursor() }

func (bundled) DisableCursor() { rl.DisableCursor() }

func (bundled) SetTargetFPS(fps int32) { rl.SetTargetFPS(fps) }

func (bundled) GetCurrentMonitor() int32 { return int32(rl.GetCurrentMonitor()) }

func (bundled) GetMonitorRefreshRate(monitor int32) int32 {
	return int32(rl.GetMonitorRefreshRate(int(monitor)))
}

func (bundled) TakeScreenshot(fileName *byte) { rl.TakeScreenshot(raylib.GoString(fileName)) }

func (bundled) SetTraceLogLevel(level int32) { rl.SetTraceLogLevel(rl.TraceLogLevel(level)) }
