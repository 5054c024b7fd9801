//go:build !darwin && !linux && !freebsd && !windows

package raylib

import (
	"errors"
	"runtime"
)

const defaultLibrary = "libraylib.so"

func open(string) (uintptr, error) {
	return 0, errors.New("runtime loading not supported on " + runtime.GOOS)
}
