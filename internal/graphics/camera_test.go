package graphics

import (
	"errors"
	"testing"

	"github.com/tinyrange/gfx/internal/raylib"
)

func TestParseProjection(t *testing.T) {
	for _, p := range []Projection{Perspective, Orthographic} {
		got, err := ParseProjection(p.Raw())
		if err != nil || got != p {
			t.Errorf("ParseProjection(%d) = %v, %v; want %v", p.Raw(), got, err, p)
		}
	}
	for _, v := range []int32{-1, 2, 5, 999} {
		_, err := ParseProjection(v)
		var ee *InvalidEnumError
		if !errors.As(err, &ee) || ee.Value != v || ee.Kind != "camera projection" {
			t.Errorf("ParseProjection(%d) error = %v, want invalid camera projection", v, err)
		}
		if !errors.Is(err, ErrInvalidEnum) {
			t.Errorf("ParseProjection(%d) error does not match ErrInvalidEnum", v)
		}
	}
}

func TestParseCameraMode(t *testing.T) {
	tests := []struct {
		raw  int32
		want CameraMode
		name string
	}{
		{0, CameraCustom, "Custom"},
		{1, CameraFree, "Free"},
		{2, CameraOrbital, "Orbital"},
		{3, CameraFirstPerson, "FirstPerson"},
		{4, CameraThirdPerson, "ThirdPerson"},
	}
	for _, tt := range tests {
		got, err := ParseCameraMode(tt.raw)
		if err != nil || got != tt.want {
			t.Errorf("ParseCameraMode(%d) = %v, %v; want %v", tt.raw, got, err, tt.want)
		}
		if back, _ := ParseCameraMode(got.Raw()); back != got {
			t.Errorf("ParseCameraMode(%v.Raw()) = %v", got, back)
		}
		if got.String() != tt.name {
			t.Errorf("CameraMode(%d).String() = %q, want %q", tt.raw, got.String(), tt.name)
		}
	}
	for _, v := range []int32{-1, 5, 999} {
		_, err := ParseCameraMode(v)
		var ee *InvalidEnumError
		if !errors.As(err, &ee) || ee.Value != v || ee.Kind != "camera mode" {
			t.Errorf("ParseCameraMode(%d) error = %v, want invalid camera mode", v, err)
		}
	}
}

func TestInvalidEnumErrorMessage(t *testing.T) {
	_, err := ParseProjection(999)
	if got, want := err.Error(), "invalid camera projection value: 999"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func testCamera() Camera3D {
	return Camera3D{
		Position:   Vector3{10, 10, 10},
		Target:     Vector3{0, 0, 0},
		Up:         Vector3{0, 1, 0},
		Fovy:       45,
		Projection: Perspective,
	}
}

func TestCameraUpdateIdentity(t *testing.T) {
	w, f := openWindow(t, 800, 450, "cube")
	cam := testCamera()
	if err := cam.Update(w, CameraFree); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if cam != testCamera() {
		t.Errorf("Update() = %+v, want %+v", cam, testCamera())
	}
	f.wantCalls(t, "UpdateCamera(1)")
}

func TestCameraUpdateReadsBack(t *testing.T) {
	w, f := openWindow(t, 800, 450, "cube")
	f.updateCamera = func(c *raylib.Camera3D) {
		c.Position.X += 1
		c.Fovy = 60
		c.Projection = raylib.CameraOrthographic
	}
	cam := testCamera()
	if err := cam.Update(w, CameraOrbital); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	want := testCamera()
	want.Position[0] = 11
	want.Fovy = 60
	want.Projection = Orthographic
	if cam != want {
		t.Errorf("Update() = %+v, want %+v", cam, want)
	}
}

func TestCameraUpdateRejectsNativeProjection(t *testing.T) {
	w, f := openWindow(t, 800, 450, "cube")
	f.updateCamera = func(c *raylib.Camera3D) {
		c.Position.X = -3
		c.Projection = 999
	}
	cam := testCamera()
	err := cam.Update(w, CameraFree)
	var ee *InvalidEnumError
	if !errors.As(err, &ee) || ee.Value != 999 {
		t.Fatalf("Update() error = %v, want invalid projection 999", err)
	}
	if cam != testCamera() {
		t.Errorf("camera changed to %+v after failed Update", cam)
	}
}

func TestCameraUpdateRejectsInvalidInput(t *testing.T) {
	w, f := openWindow(t, 800, 450, "cube")

	cam := testCamera()
	if err := cam.Update(w, CameraMode(9)); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("Update(9) error = %v, want %v", err, ErrInvalidEnum)
	}
	cam.Projection = Projection(3)
	if err := cam.Update(w, CameraFree); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("Update() with projection 3 error = %v, want %v", err, ErrInvalidEnum)
	}
	if len(f.calls) != 0 {
		t.Errorf("native calls = %q, want none", f.calls)
	}
}

func TestCameraUpdateOnClosedWindowPanics(t *testing.T) {
	w, _ := openWindow(t, 800, 450, "cube")
	w.Close()
	cam := testCamera()
	mustPanic(t, "Update", func() { cam.Update(w, CameraFree) })
}

func TestProjectionString(t *testing.T) {
	if got := Perspective.String(); got != "Perspective" {
		t.Errorf("Perspective.String() = %q", got)
	}
	if got := Projection(8).String(); got != "Projection(8)" {
		t.Errorf("Projection(8).String() = %q", got)
	}
}
