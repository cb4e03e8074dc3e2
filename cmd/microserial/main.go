// Command microserial starts the MicroSerial application shell: it
// negotiates a graphics backend and holds the GPU device until interrupted.
//
// Usage:
//
//	microserial [--force-software] [--headless-detect] [--verbose] [--config path]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/microserial/microserial"
	"github.com/microserial/microserial/backend"
	_ "github.com/microserial/microserial/backend/rust"
	"github.com/microserial/microserial/internal/app"
	"github.com/microserial/microserial/internal/settings"
	"github.com/microserial/microserial/renderer"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	level := slog.LevelInfo
	if cli.verbose {
		level = slog.LevelDebug
	}
	microserial.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := microserial.Logger()
	log.Debug("microserial: starting", "prober", backend.DefaultName(), "probers", backend.Available())

	var args []string
	if cli.forceSoftware {
		args = append(args, renderer.FlagForceSoftware)
	}
	if cli.headless {
		args = append(args, renderer.FlagHeadless)
	}
	launch := renderer.Parse(args, renderer.OSEnvironment(), runtime.GOOS)

	prefs, err := settings.Load(cli.configPath)
	if err != nil {
		log.Warn("settings: using defaults", "err", err)
	}
	if prefs.ForceSoftware {
		launch.EnableForceSoftware()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	host := &app.DeviceHost{
		Open: openDevice,
		Ready: func(sel *renderer.Selection) {
			log.Info("microserial: renderer ready",
				"attempt", sel.AttemptLabel,
				"renderer", sel.Options.Renderer,
				"acceleration", sel.Options.HardwareAcceleration.String(),
				"adapter", sel.Options.Adapter.Name)
			for _, line := range (renderer.HeadlessReport{Diagnostics: sel.Diagnostics}).Lines() {
				log.Debug("microserial: " + line)
			}
		},
	}

	if err := app.Run(ctx, launch, host); err != nil {
		fmt.Fprintf(os.Stderr, "microserial: %v\n", err)
		return 1
	}
	return 0
}
