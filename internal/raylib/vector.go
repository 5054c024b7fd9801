package raylib

import "math"

// packXY returns X and Y laid out as the low and high halves of one 64-bit
// float register.
func packXY(v Vector3) float64 {
	return math.Float64frombits(uint64(math.Float32bits(v.X)) | uint64(math.Float32bits(v.Y))<<32)
}
