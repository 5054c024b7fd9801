package graphics

import (
	"errors"
	"fmt"
)

var (
	// ErrEmbeddedNul is returned when a string passed to the native layer
	// contains a NUL byte.
	ErrEmbeddedNul = errors.New("string contains embedded NUL")

	// ErrInvalidEnum is matched by every *InvalidEnumError.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrInvalidSize is returned when window dimensions are negative or do
	// not fit a C int.
	ErrInvalidSize = errors.New("invalid window size")

	// ErrWindowAlreadyOpen is returned by InitWindow while another Window
	// is still open in this process.
	ErrWindowAlreadyOpen = errors.New("window already open")

	// ErrWindowClosed is returned when closing a Window twice or opening a
	// frame on a closed Window.
	ErrWindowClosed = errors.New("window closed")

	// ErrFrameActive is returned by BeginDrawing while a Pen is still live.
	ErrFrameActive = errors.New("frame already active")

	// ErrMode3DActive is returned by BeginMode3D while a Pen3D is still live.
	ErrMode3DActive = errors.New("3D mode already active")

	// ErrScopeEnded is returned when ending a Pen or Pen3D twice.
	ErrScopeEnded = errors.New("scope already ended")
)

// StringError reports a string rejected before it reached the native layer.
type StringError struct {
	Field  string // "title", "text", ...
	Offset int    // byte offset of the first NUL
}

func (e *StringError) Error() string {
	return fmt.Sprintf("%s: NUL byte at offset %d", e.Field, e.Offset)
}

func (e *StringError) Unwrap() error {
	return ErrEmbeddedNul
}

// InvalidEnumError reports a numeric value outside a known enumeration,
// either read back from the native layer or supplied by the caller.
type InvalidEnumError struct {
	Kind  string // "camera projection" or "camera mode"
	Value int32
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s value: %d", e.Kind, e.Value)
}

func (e *InvalidEnumError) Unwrap() error {
	return ErrInvalidEnum
}
