package graphics

// Pen3D is 3D drawing mode within a frame. It is only obtained from
// Pen.BeginMode3D and cannot outlive that Pen.
type Pen3D interface {
	// DrawGrid draws a ground grid of slices×slices cells centered at the
	// origin.
	DrawGrid(slices int32, spacing float32)

	// DrawCube draws a solid cube centered at position.
	DrawCube(position Vector3, width, height, length float32, c Color)

	// DrawCubeWires draws the edges of a cube centered at position.
	DrawCubeWires(position Vector3, width, height, length float32, c Color)

	// End leaves 3D mode and gives drawing back to the enclosing Pen.
	End() error

	mode3D() *pen3D
}

type pen3D struct {
	pen   *pen
	ended bool
}

var _ Pen3D = (*pen3D)(nil)

func (p *pen3D) mode3D() *pen3D {
	return p
}

func (p *pen3D) isEnded() bool {
	return p.ended || p.pen == nil
}

func (p *pen3D) mustBeUsable(op string) {
	if p.isEnded() {
		panic("graphics: Pen3D." + op + " after End")
	}
}

func (p *pen3D) DrawGrid(slices int32, spacing float32) {
	p.mustBeUsable("DrawGrid")
	p.pen.w.native.DrawGrid(slices, spacing)
}

func (p *pen3D) DrawCube(position Vector3, width, height, length float32, c Color) {
	p.mustBeUsable("DrawCube")
	p.pen.w.native.DrawCube(vectorToNative(position), width, height, length, c.native())
}

func (p *pen3D) DrawCubeWires(position Vector3, width, height, length float32, c Color) {
	p.mustBeUsable("DrawCubeWires")
	p.pen.w.native.DrawCubeWires(vectorToNative(position), width, height, length, c.native())
}

func (p *pen3D) End() error {
	if p.isEnded() {
		return ErrScopeEnded
	}
	p.end()
	return nil
}

func (p *pen3D) end() {
	p.pen.w.native.EndMode3D()
	p.ended = true
	p.pen.mode = nil
}
