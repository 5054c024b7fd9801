//go:build windows

package raylib

import "golang.org/x/sys/windows"

const defaultLibrary = "raylib.dll"

func open(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}
