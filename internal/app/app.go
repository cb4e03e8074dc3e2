// Package app runs the renderer negotiation for the MicroSerial binary and
// hands the selection to a window host, retrying with the next attempt when
// the host fails.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/microserial/microserial"
	"github.com/microserial/microserial/renderer"
)

// ErrNoDeviceOpener is returned by DeviceHost for hardware selections when
// no GPU device opener is configured.
var ErrNoDeviceOpener = errors.New("app: no GPU device opener")

// Host runs the application window with a renderer selection. Run blocks
// until the window closes or ctx is cancelled.
type Host interface {
	Run(ctx context.Context, sel *renderer.Selection) error
}

// HostFunc adapts a function to Host.
type HostFunc func(ctx context.Context, sel *renderer.Selection) error

// Run implements Host.
func (f HostFunc) Run(ctx context.Context, sel *renderer.Selection) error {
	return f(ctx, sel)
}

// Option configures Run.
type Option func(*options)

type options struct {
	stdout io.Writer
	detect []renderer.Option
}

// WithStdout sets where the headless report is written. Default os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithDetectOptions passes options through to renderer.Detect.
func WithDetectOptions(opts ...renderer.Option) Option {
	return func(o *options) {
		o.detect = append(o.detect, opts...)
	}
}

// Run negotiates a renderer and runs host with it.
//
// In headless mode the report is printed and Run returns nil. Otherwise,
// when host fails, negotiation restarts after the attempt that was used
// and the host error is appended to the next selection's failure chain.
// Run returns the last host error once the plan is exhausted.
func Run(ctx context.Context, launch *renderer.LaunchConfig, host Host, opts ...Option) error {
	o := options{stdout: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	log := microserial.Logger()

	if launch.Headless {
		report := renderer.RunHeadlessProbe(launch, o.detect...)
		if _, err := report.WriteTo(o.stdout); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}

	total := launch.AttemptCount()
	index := 0
	var previous string
	var lastErr error

	for index < total {
		sel, err := renderer.Detect(launch, index, o.detect...)
		if err != nil {
			if previous != "" {
				log.Error("app: renderer failed after fallback", "err", previous)
			}
			return fmt.Errorf("renderer detection failed: %w", err)
		}

		if index > 0 || sel.AttemptIndex > 0 {
			sel.Diagnostics.FallbackUsed = true
		}
		if previous != "" {
			sel.Diagnostics.AppendFailure(previous)
			previous = ""
		}

		err = host.Run(ctx, sel)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		log.Warn("app: renderer attempt failed", "label", sel.AttemptLabel, "err", err)
		previous = fmt.Sprintf("%s: %v", sel.AttemptLabel, err)
		lastErr = err
		index = sel.AttemptIndex + 1
	}

	if lastErr == nil {
		lastErr = renderer.ErrNoRenderer
	}
	return lastErr
}
