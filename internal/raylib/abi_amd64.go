//go:build amd64 && !windows

package raylib

// System V AMD64: a Vector3 is two SSE eightbytes, {X, Y} packed in one
// register and Z in the next. Camera3D is larger than 16 bytes and is copied
// onto the stack, which purego only reaches once the six integer registers
// are taken.
type abiFuncs struct {
	beginMode3D   func(r0, r1, r2, r3, r4, r5 uintptr, s0, s1, s2, s3, s4, s5 uintptr)
	drawCube      func(xy float64, z, width, height, length float32, color uint32)
	drawCubeWires func(xy float64, z, width, height, length float32, color uint32)
}

const abiSupported = true

func (a *abiFuncs) register(register func(dst interface{}, name string)) {
	register(&a.beginMode3D, "BeginMode3D")
	register(&a.drawCube, "DrawCube")
	register(&a.drawCubeWires, "DrawCubeWires")
}

func (a *abiFuncs) BeginMode3D(camera Camera3D) {
	w := cameraWords(&camera)
	a.beginMode3D(0, 0, 0, 0, 0, 0, w[0], w[1], w[2], w[3], w[4], w[5])
}

func (a *abiFuncs) DrawCube(position Vector3, width, height, length float32, color Color) {
	a.drawCube(packXY(position), position.Z, width, height, length, packColor(color))
}

func (a *abiFuncs) DrawCubeWires(position Vector3, width, height, length float32, color Color) {
	a.drawCubeWires(packXY(position), position.Z, width, height, length, packColor(color))
}
