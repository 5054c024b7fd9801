// Package backend selects the raylib binding the demos run against.
package backend

import (
	"log/slog"

	"github.com/tinyrange/gfx/internal/raylib"
	"github.com/tinyrange/gfx/internal/raylib/bundled"
)

// Open returns the raylib compiled into the binary when library is empty,
// and otherwise loads the shared library at that path.
func Open(library string) (raylib.Raylib, error) {
	if library == "" {
		slog.Debug("using built-in raylib")
		return bundled.New(), nil
	}
	rl, err := raylib.Load(library)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded raylib", "library", library)
	return rl, nil
}
