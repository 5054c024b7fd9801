package graphics

import (
	"fmt"

	"github.com/tinyrange/gfx/internal/raylib"
)

// Projection is a camera projection kind.
type Projection int32

const (
	Perspective  Projection = raylib.CameraPerspective
	Orthographic Projection = raylib.CameraOrthographic
)

// ParseProjection decodes a raw raylib projection value.
func ParseProjection(v int32) (Projection, error) {
	switch p := Projection(v); p {
	case Perspective, Orthographic:
		return p, nil
	default:
		return 0, &InvalidEnumError{Kind: "camera projection", Value: v}
	}
}

// Raw returns the raylib value of p.
func (p Projection) Raw() int32 {
	return int32(p)
}

func (p Projection) String() string {
	switch p {
	case Perspective:
		return "Perspective"
	case Orthographic:
		return "Orthographic"
	default:
		return fmt.Sprintf("Projection(%d)", int32(p))
	}
}

// CameraMode selects the navigation raylib applies in Camera3D.Update.
type CameraMode int32

const (
	CameraCustom      CameraMode = raylib.CameraCustom
	CameraFree        CameraMode = raylib.CameraFree
	CameraOrbital     CameraMode = raylib.CameraOrbital
	CameraFirstPerson CameraMode = raylib.CameraFirstPerson
	CameraThirdPerson CameraMode = raylib.CameraThirdPerson
)

// ParseCameraMode decodes a raw raylib camera mode value.
func ParseCameraMode(v int32) (CameraMode, error) {
	switch m := CameraMode(v); m {
	case CameraCustom, CameraFree, CameraOrbital, CameraFirstPerson, CameraThirdPerson:
		return m, nil
	default:
		return 0, &InvalidEnumError{Kind: "camera mode", Value: v}
	}
}

// Raw returns the raylib value of m.
func (m CameraMode) Raw() int32 {
	return int32(m)
}

func (m CameraMode) String() string {
	switch m {
	case CameraCustom:
		return "Custom"
	case CameraFree:
		return "Free"
	case CameraOrbital:
		return "Orbital"
	case CameraFirstPerson:
		return "FirstPerson"
	case CameraThirdPerson:
		return "ThirdPerson"
	default:
		return fmt.Sprintf("CameraMode(%d)", int32(m))
	}
}

// Camera3D is a 3D viewpoint. It is a plain value; copies are independent.
type Camera3D struct {
	Position   Vector3
	Target     Vector3
	Up         Vector3
	Fovy       float32 // vertical field of view in degrees
	Projection Projection
}

// Update lets raylib move the camera for one frame according to mode, using
// the keyboard and mouse state of w. The camera is overwritten with the
// result. If mode or the camera's projection is not a known value, or raylib
// hands back a projection it does not define, c is left unchanged and an
// *InvalidEnumError is returned.
func (c *Camera3D) Update(w Window, mode CameraMode) error {
	if w == nil {
		panic("graphics: Camera3D.Update without a Window")
	}
	win := w.handle()
	win.mustBeOpen("Camera3D.Update")
	if _, err := ParseCameraMode(mode.Raw()); err != nil {
		return err
	}
	nc, err := c.native()
	if err != nil {
		return err
	}
	win.native.UpdateCamera(&nc, mode.Raw())
	updated, err := cameraFromNative(nc)
	if err != nil {
		Logger().Warn("camera update rejected", "err", err)
		return err
	}
	*c = updated
	return nil
}

func (c Camera3D) native() (raylib.Camera3D, error) {
	if _, err := ParseProjection(c.Projection.Raw()); err != nil {
		return raylib.Camera3D{}, err
	}
	return raylib.Camera3D{
		Position:   vectorToNative(c.Position),
		Target:     vectorToNative(c.Target),
		Up:         vectorToNative(c.Up),
		Fovy:       c.Fovy,
		Projection: c.Projection.Raw(),
	}, nil
}

func cameraFromNative(nc raylib.Camera3D) (Camera3D, error) {
	p, err := ParseProjection(nc.Projection)
	if err != nil {
		return Camera3D{}, err
	}
	return Camera3D{
		Position:   vectorFromNative(nc.Position),
		Target:     vectorFromNative(nc.Target),
		Up:         vectorFromNative(nc.Up),
		Fovy:       nc.Fovy,
		Projection: p,
	}, nil
}

func vectorToNative(v Vector3) raylib.Vector3 {
	return raylib.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func vectorFromNative(v raylib.Vector3) Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}
