package raylib

// Microsoft x64: structs of 1, 2, 4 or 8 bytes travel in a register, every
// other size is passed as a pointer to a caller-owned copy.
type abiFuncs struct {
	beginMode3D   func(camera *Camera3D)
	drawCube      func(position *Vector3, width, height, length float32, color uint32)
	drawCubeWires func(position *Vector3, width, height, length float32, color uint32)
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
	a.drawCube(&position, width, height, length, packColor(color))
}

func (a *abiFuncs) DrawCubeWires(position Vector3, width, height, length float32, color Color) {
	a.drawCubeWires(&position, width, height, length, packColor(color))
}
