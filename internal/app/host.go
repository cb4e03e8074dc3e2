package app

import (
	"context"
	"fmt"

	"github.com/microserial/microserial"
	"github.com/microserial/microserial/backend"
	"github.com/microserial/microserial/renderer"
)

// Device is an open GPU device held for the lifetime of the host.
type Device interface {
	Close() error
}

// DeviceOpener opens a GPU device for an adapter request.
type DeviceOpener func(req backend.AdapterRequest) (Device, error)

// DeviceHost is the headless stand-in for the application window. It opens
// a GPU device for hardware selections, which is the step that can fail
// after a successful adapter probe, then waits for ctx to be cancelled.
type DeviceHost struct {
	// Open creates the device. Hardware selections fail with
	// ErrNoDeviceOpener when it is nil.
	Open DeviceOpener

	// Ready is called once the renderer is usable.
	Ready func(sel *renderer.Selection)
}

// Run implements Host.
func (h *DeviceHost) Run(ctx context.Context, sel *renderer.Selection) error {
	log := microserial.Logger()

	if sel.Options.Renderer != renderer.RendererSoftware {
		if h.Open == nil {
			return ErrNoDeviceOpener
		}
		dev, err := h.Open(sel.Request)
		if err != nil {
			return fmt.Errorf("open device: %w", err)
		}
		defer func() {
			if err := dev.Close(); err != nil {
				log.Warn("app: close device", "err", err)
			}
		}()
		log.Info("app: device ready", "device", dev, "request", sel.Request.String())
	} else {
		log.Info("app: using software renderer")
	}

	if h.Ready != nil {
		h.Ready(sel)
	}
	<-ctx.Done()
	return nil
}
