//go:build arm64

package raylib

// AAPCS64: a Vector3 is a homogeneous float aggregate and takes one float
// register per member. Camera3D is larger than 16 bytes and not homogeneous,
// so the caller passes a pointer to a copy.
type abiFuncs struct {
	beginMode3D   func(camera *Camera3D)
	drawCube      func(x, y, z, width, height, length float32, color uint32)
	drawCubeWires func(x, y, z, width, height, length float32, color uint32)
}

const abiSupported = true

func (a *abiFuncs) register(register func(dst interface{}, name string)) {
	register(&a.beginMode3D, "BeginMode3D")
	register(&a.drawCube, "DrawCube")
	register(&a.drawCubeWires, "DrawCubeWires")
}

func (a *abiFuncs) BeginMode3D(camera Camera3D) {
	a.beginMode3D(&camera)
}

func (a *abiFuncs) DrawCube(position Vector3, width, height, length float32, color Color) {
	a.drawCube(position.X, position.Y, position.Z, width, height, length, packColor(color))
}

func (a *abiFuncs) DrawCubeWires(position Vector3, width, height, length float32, color Color) {
	a.drawCubeWires(position.X, position.Y, position.Z, width, height, length, packColor(color))
}
