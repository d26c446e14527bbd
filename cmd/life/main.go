//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"conway/internal/app"
	"conway/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	if err := opts.Validate(); err != nil {
		app.NewLogger("error", "text", os.Stderr).Error("Invalid options.", "error", err)
		os.Exit(2)
	}
	logger := opts.Logger(os.Stderr)

	cfg, err := opts.Resolve()
	if err == nil {
		err = cfg.ValidateWindow()
	}
	if err != nil {
		logger.Error("Failed to load configuration.", "error", err)
		os.Exit(2)
	}

	ctrl := app.NewController(cfg, logger)
	game := app.New(ctrl)
	w, h := cfg.WindowSize()

	ebiten.SetWindowTitle(ctrl.Title())
	ebiten.SetTPS(config.MaxTPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("Game loop failed.", "error", err)
		os.Exit(1)
	}
}
