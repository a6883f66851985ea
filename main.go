package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/chazu/hexgarden/pkg/config"
	"github.com/chazu/hexgarden/pkg/logging"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hexgarden:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Setup(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closeLog()

	app, err := NewApp(cfg, logger)
	if err != nil {
		return err
	}
	return wails.Run(&options.App{
		Title:            "hexgarden",
		Width:            int(cfg.Interaction.Width),
		Height:           int(cfg.Interaction.Height),
		AssetServer:      &assetserver.Options{Assets: assets},
		BackgroundColour: &options.RGBA{R: 17, G: 17, B: 17, A: 255},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind:             []interface{}{app},
	})
}
