package graphics

import "github.com/tinyrange/gfx/internal/raylib"

// Monitor identifies a display by raylib's monitor index.
type Monitor struct {
	id     int
	native raylib.Raylib
}

// ID returns the monitor index.
func (m Monitor) ID() int {
	return m.id
}

// RefreshRate returns the monitor's refresh rate in Hz. The index is passed
// to raylib as is.
func (m Monitor) RefreshRate() int {
	return int(m.native.GetMonitorRefreshRate(int32(m.id)))
}
