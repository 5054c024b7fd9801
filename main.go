package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tinyrange/gfx/internal/backend"
	"github.com/tinyrange/gfx/internal/config"
	"github.com/tinyrange/gfx/internal/graphics"
	"github.com/tinyrange/gfx/internal/raylib"
)

const (
	width  = 800
	height = 600
)

// errScreenshotTaken stops the loop after the first frame in screenshot mode.
var errScreenshotTaken = errors.New("screenshot taken")

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)
	graphics.SetLogger(logger)

	rl, err := backend.Open(cfg.Library)
	if err != nil {
		log.Fatalf("open raylib: %v", err)
	}

	if err := run(rl, cfg); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(rl raylib.Raylib, cfg config.Config) error {
	win, err := graphics.InitWindow(rl, width, height, "zappy")
	if err != nil {
		return err
	}
	defer closeWindow(win)

	monitor := win.CurrentMonitor()
	fps := monitor.RefreshRate()
	slog.Info("Monitor", "id", monitor.ID(), "refresh_rate", fps)
	win.SetTargetFPS(fps)

	textX, textY, fontSize := textPlacement(width, height)

	err = win.Loop(func(pen graphics.Pen) error {
		pen.ClearBackground(graphics.ColorRed)
		if err := pen.DrawText("urmom", textX, textY, fontSize, graphics.ColorBlue); err != nil {
			return err
		}
		if cfg.Screenshot == "" {
			return nil
		}
		// raylib reads back the last presented frame.
		if err := pen.End(); err != nil {
			return err
		}
		if err := win.TakeScreenshot(cfg.Screenshot); err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		return errScreenshotTaken
	})
	if errors.Is(err, errScreenshotTaken) {
		slog.Info("Screenshot", "file", cfg.Screenshot)
		return nil
	}
	return err
}

// textPlacement returns the position and size of the greeting for a
// w×h window.
func textPlacement(w, h int32) (x, y, size int32) {
	x = w/2 - int32(2.5*float32(h)/16)
	y = h/2 - h/16
	size = h / 8
	return x, y, size
}

// closeWindow closes win and logs a failure, for use with defer.
func closeWindow(win graphics.Window) {
	if err := win.Close(); err != nil {
		slog.Warn("Close window", "err", err)
	}
}
