package raylib

import (
	"math"
	"testing"
	"unsafe"
)

func TestPackColor(t *testing.T) {
	tests := []struct {
		color Color
		want  uint32
	}{
		{Color{0, 0, 0, 0}, 0},
		{Color{0, 121, 241, 255}, 0xfff17900},
		{Color{230, 41, 55, 255}, 0xff3729e6},
		{Color{1, 2, 3, 4}, 0x04030201},
	}
	for _, tt := range tests {
		if got := packColor(tt.color); got != tt.want {
			t.Errorf("packColor(%v) = %#08x, want %#08x", tt.color, got, tt.want)
		}
	}
}

func TestPackColorMatchesMemoryLayout(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 40}
	if got, want := packColor(c), *(*uint32)(unsafe.Pointer(&c)); got != want {
		t.Errorf("packColor(%v) = %#08x, in-memory word %#08x", c, got, want)
	}
}

func TestPackXY(t *testing.T) {
	v := Vector3{X: 1.5, Y: -2.25, Z: 99}
	bits := math.Float64bits(packXY(v))
	if x := math.Float32frombits(uint32(bits)); x != v.X {
		t.Errorf("low half = %v, want %v", x, v.X)
	}
	if y := math.Float32frombits(uint32(bits >> 32)); y != v.Y {
		t.Errorf("high half = %v, want %v", y, v.Y)
	}
}

func TestCameraLayout(t *testing.T) {
	if got := unsafe.Sizeof(Camera3D{}); got != 44 {
		t.Fatalf("sizeof(Camera3D) = %d, want 44", got)
	}
	if got := unsafe.Offsetof(Camera3D{}.Projection); got != 40 {
		t.Errorf("offsetof(Projection) = %d, want 40", got)
	}
}

func TestCameraWords(t *testing.T) {
	cam := Camera3D{
		Position:   Vector3{10, 10, 10},
		Target:     Vector3{0, 0, 0},
		Up:         Vector3{0, 1, 0},
		Fovy:       45,
		Projection: CameraOrthographic,
	}
	words := cameraWords(&cam)
	back := *(*Camera3D)(unsafe.Pointer(&words[0]))
	if back != cam {
		t.Errorf("cameraWords round trip = %+v, want %+v", back, cam)
	}
}

func TestGoString(t *testing.T) {
	b := []byte("zappy\x00tail")
	if got := GoString(&b[0]); got != "zappy" {
		t.Errorf("GoString() = %q, want %q", got, "zappy")
	}
	if got := GoString(nil); got != "" {
		t.Errorf("GoString(nil) = %q, want empty", got)
	}
}

func TestLoadMissingLibrary(t *testing.T) {
	if !abiSupported {
		t.Skip("runtime loading unsupported on this architecture")
	}
	if _, err := Load("/nonexistent/libraylib-missing.so"); err == nil {
		t.Fatal("Load() of a missing library succeeded")
	}
}
