package graphics

import (
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/tinyrange/gfx/internal/raylib"
)

// raylib keeps a single implicit context per process.
var windowOpen atomic.Bool

// Window owns the native window and graphics context. Windows are only
// obtained from InitWindow.
type Window interface {
	// Title returns the title the window was opened with.
	Title() string

	// ShouldClose reports whether the user asked to close the window. It is
	// always true once the window is closed.
	ShouldClose() bool

	// BeginDrawing starts a frame. The frame is presented by Pen.End.
	BeginDrawing() (Pen, error)

	// Draw runs fn inside a frame and ends the frame when fn returns or panics.
	Draw(fn func(Pen) error) error

	// Loop draws frames with fn until the window should close or fn fails.
	Loop(fn func(Pen) error) error

	// EnableCursor shows and releases the OS cursor.
	EnableCursor()

	// DisableCursor hides and captures the OS cursor.
	DisableCursor()

	// SetTargetFPS caps the frame rate. It is advisory.
	SetTargetFPS(fps int)

	// CurrentMonitor returns the monitor the window is on.
	CurrentMonitor() Monitor

	// TakeScreenshot saves the last presented frame as a PNG file.
	TakeScreenshot(fileName string) error

	// Close ends any open frame, then closes the window. It returns
	// ErrWindowClosed if the window was already closed. Close must be called
	// from the goroutine that called InitWindow, which stays locked to its OS
	// thread until then.
	Close() error

	handle() *window
}

type window struct {
	native raylib.Raylib
	title  string
	pen    *pen
	closed bool
}

var _ Window = (*window)(nil)

// InitWindow opens a width×height window titled title and returns its
// owning handle. The calling goroutine is locked to its OS thread until
// Close. Only one Window may be open at a time.
func InitWindow(native raylib.Raylib, width, height int, title string) (Window, error) {
	ctitle, err := cString("title", title)
	if err != nil {
		return nil, fmt.Errorf("init window: %w", err)
	}
	if width < 0 || height < 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return nil, fmt.Errorf("init window: %w: %dx%d", ErrInvalidSize, width, height)
	}
	if !windowOpen.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("init window: %w", ErrWindowAlreadyOpen)
	}

	runtime.LockOSThread()
	native.SetTraceLogLevel(traceLogLevel())
	native.InitWindow(int32(width), int32(height), &ctitle[0])
	runtime.KeepAlive(ctitle)

	Logger().Info("window opened", "width", width, "height", height, "title", title)
	return &window{native: native, title: title}, nil
}

func (w *window) handle() *window {
	return w
}

// isClosed also covers a window that InitWindow never opened.
func (w *window) isClosed() bool {
	return w.closed || w.native == nil
}

func (w *window) Close() error {
	if w.isClosed() {
		return ErrWindowClosed
	}
	if w.pen != nil {
		Logger().Warn("closing window with an open frame", "title", w.title)
		w.pen.end()
	}
	w.native.CloseWindow()
	w.closed = true
	windowOpen.Store(false)
	runtime.UnlockOSThread()

	Logger().Info("window closed", "title", w.title)
	return nil
}

func (w *window) mustBeOpen(op string) {
	if w.isClosed() {
		panic("graphics: " + op + " on closed window")
	}
}

func (w *window) Title() string {
	return w.title
}

func (w *window) ShouldClose() bool {
	if w.isClosed() {
		return true
	}
	return w.native.WindowShouldClose()
}

func (w *window) BeginDrawing() (Pen, error) {
	if w.isClosed() {
		return nil, ErrWindowClosed
	}
	if w.pen != nil {
		return nil, ErrFrameActive
	}
	w.native.BeginDrawing()
	w.pen = &pen{w: w}
	return w.pen, nil
}

func (w *window) Draw(fn func(Pen) error) error {
	p, err := w.BeginDrawing()
	if err != nil {
		return err
	}
	defer func() {
		if p := p.scope(); !p.ended {
			p.end()
		}
	}()
	return fn(p)
}

func (w *window) Loop(fn func(Pen) error) error {
	for !w.ShouldClose() {
		if err := w.Draw(fn); err != nil {
			return err
		}
	}
	return nil
}

func (w *window) EnableCursor() {
	w.mustBeOpen("EnableCursor")
	w.native.EnableCursor()
}

func (w *window) DisableCursor() {
	w.mustBeOpen("DisableCursor")
	w.native.DisableCursor()
}

func (w *window) SetTargetFPS(fps int) {
	w.mustBeOpen("SetTargetFPS")
	fps = min(max(fps, math.MinInt32), math.MaxInt32)
	w.native.SetTargetFPS(int32(fps))
}

func (w *window) CurrentMonitor() Monitor {
	w.mustBeOpen("CurrentMonitor")
	return Monitor{id: int(w.native.GetCurrentMonitor()), native: w.native}
}

func (w *window) TakeScreenshot(fileName string) error {
	w.mustBeOpen("TakeScreenshot")
	cname, err := cString("file name", fileName)
	if err != nil {
		return fmt.Errorf("take screenshot: %w", err)
	}
	w.native.TakeScreenshot(&cname[0])
	runtime.KeepAlive(cname)
	Logger().Debug("screenshot taken", "file", fileName)
	return nil
}
