package graphics

import (
	"fmt"
	"runtime"
)

// Pen is an open frame. It is only obtained from Window.BeginDrawing and
// stays usable until End. While a Pen3D borrowed from it is live, the Pen's
// own drawing methods panic.
type Pen interface {
	// ClearBackground fills the frame with c.
	ClearBackground(c Color)

	// DrawText draws text with its top-left corner at (x, y). Text
	// containing a NUL byte is rejected before anything is drawn.
	DrawText(text string, x, y, fontSize int32, c Color) error

	// BeginMode3D switches the frame to 3D drawing through a snapshot of
	// camera. The returned Pen3D must be ended before the Pen; Pen.End does
	// so if it was not.
	BeginMode3D(camera Camera3D) (Pen3D, error)

	// Mode3D runs fn in 3D mode and leaves 3D mode when fn returns or panics.
	Mode3D(camera Camera3D, fn func(Pen3D) error) error

	// End leaves 3D mode if it is still active, then ends and presents the
	// frame.
	End() error

	scope() *pen
}

type pen struct {
	w     *window
	mode  *pen3D
	ended bool
}

var _ Pen = (*pen)(nil)

func (p *pen) scope() *pen {
	return p
}

// isEnded also covers a pen that BeginDrawing never handed out.
func (p *pen) isEnded() bool {
	return p.ended || p.w == nil
}

func (p *pen) mustBeUsable(op string) {
	switch {
	case p.isEnded():
		panic("graphics: Pen." + op + " after End")
	case p.mode != nil:
		panic("graphics: Pen." + op + " while 3D mode is active")
	}
}

func (p *pen) ClearBackground(c Color) {
	p.mustBeUsable("ClearBackground")
	p.w.native.ClearBackground(c.native())
}

func (p *pen) DrawText(text string, x, y, fontSize int32, c Color) error {
	p.mustBeUsable("DrawText")
	ctext, err := cString("text", text)
	if err != nil {
		return fmt.Errorf("draw text: %w", err)
	}
	p.w.native.DrawText(&ctext[0], x, y, fontSize, c.native())
	runtime.KeepAlive(ctext)
	return nil
}

func (p *pen) BeginMode3D(camera Camera3D) (Pen3D, error) {
	if p.isEnded() {
		return nil, ErrScopeEnded
	}
	if p.mode != nil {
		return nil, ErrMode3DActive
	}
	nc, err := camera.native()
	if err != nil {
		return nil, fmt.Errorf("begin 3D mode: %w", err)
	}
	p.w.native.BeginMode3D(nc)
	p.mode = &pen3D{pen: p}
	return p.mode, nil
}

func (p *pen) Mode3D(camera Camera3D, fn func(Pen3D) error) error {
	p3, err := p.BeginMode3D(camera)
	if err != nil {
		return err
	}
	defer func() {
		if p3 := p3.mode3D(); !p3.ended {
			p3.end()
		}
	}()
	return fn(p3)
}

func (p *pen) End() error {
	if p.isEnded() {
		return ErrScopeEnded
	}
	p.end()
	return nil
}

func (p *pen) end() {
	if p.mode != nil {
		Logger().Debug("ending 3D mode left open by caller")
		p.mode.end()
	}
	p.w.native.EndDrawing()
	p.ended = true
	p.w.pen = nil
}
