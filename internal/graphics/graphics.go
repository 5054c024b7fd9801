// Package graphics is a safe layer over raylib.
//
// A Window owns the process-wide graphics context. Frames are drawn through
// a Pen obtained from Window.BeginDrawing, and 3D drawing happens through a
// Pen3D obtained from Pen.BeginMode3D. Each scope is released by its End
// method (or by the enclosing scope's End/Close), innermost first:
//
//	win, err := graphics.InitWindow(rl, 800, 600, "demo")
//	if err != nil {
//		return err
//	}
//	defer win.Close()
//
//	for !win.ShouldClose() {
//		err := win.Draw(func(pen graphics.Pen) error {
//			pen.ClearBackground(graphics.ColorRayWhite)
//			return pen.DrawText("hello", 10, 10, 20, graphics.ColorBlack)
//		})
//		if err != nil {
//			return err
//		}
//	}
//
// Strings are checked for NUL bytes before they reach raylib, and enum values
// read back from raylib are decoded into typed errors instead of being
// trusted. Nothing in this package is safe for concurrent use; every call
// must come from the goroutine that opened the window.
package graphics

import (
	"strings"

	"golang.org/x/image/math/f32"
)

// Vector types share their memory layout with raylib's.
type (
	Vector2 = f32.Vec2
	Vector3 = f32.Vec3
	Vector4 = f32.Vec4
)

// cString validates s and returns a NUL-terminated copy.
func cString(field, s string) ([]byte, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, &StringError{Field: field, Offset: i}
	}
	b := append([]byte(s), 0)
	return b, nil
}
