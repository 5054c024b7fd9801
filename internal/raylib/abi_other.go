//go:build !amd64 && !arm64

package raylib

type abiFuncs struct{}

const abiSupported = false

func (a *abiFuncs) register(func(dst interface{}, name string)) {}

func (a *abiFuncs) BeginMode3D(Camera3D) {}

func (a *abiFuncs) DrawCube(Vector3, float32, float32, float32, Color) {}

func (a *abiFuncs) DrawCubeWires(Vector3, float32, float32, float32, Color) {}
