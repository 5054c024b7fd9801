// Package config holds the settings shared by the demo programs.
package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
)

// LibraryEnv names the environment variable that selects a raylib shared
// library when -lib is not given.
const LibraryEnv = "RAYLIB_LIBRARY"

// Config holds the demo settings. The zero value runs against the raylib
// compiled into the binary with logging at Info.
type Config struct {
	// Library is the path of a raylib shared library to load at runtime.
	// Empty selects the compiled-in raylib.
	Library string

	// Screenshot, when set, saves the first frame to this file and exits.
	Screenshot string

	LogLevel slog.Level
}

// Parse reads flags from args. getenv supplies defaults from the
// environment; pass os.Getenv. Usage and flag errors are written to output.
func Parse(name string, args []string, getenv func(string) string, output io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Library, "lib", getenv(LibraryEnv), "path of a raylib shared library to load instead of the built-in one")
	fs.StringVar(&cfg.Screenshot, "screenshot", "", "save the first frame to `file` and exit")
	fs.TextVar(&cfg.LogLevel, "log-level", slog.LevelInfo, "minimum log `level` (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config: unexpected arguments %q", fs.Args())
	}
	return cfg, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
