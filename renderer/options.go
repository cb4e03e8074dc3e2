package renderer

import (
	"github.com/jonboulle/clockwork"

	"github.com/microserial/microserial/backend"
)

// Option configures Detect and RunHeadlessProbe.
type Option func(*detectOptions)

type detectOptions struct {
	prober backend.Prober
	env    Environment
	clock  clockwork.Clock
}

// WithProber sets the adapter prober. The default is backend.Default().
func WithProber(p backend.Prober) Option {
	return func(o *detectOptions) {
		o.prober = p
	}
}

// WithEnvironment sets the environment channel attempts write to.
// The default, also used for a nil env, is the environment the launch was
// parsed from.
func WithEnvironment(env Environment) Option {
	return func(o *detectOptions) {
		o.env = env
	}
}

// WithClock sets the time source for Diagnostics.StartedAt.
func WithClock(c clockwork.Clock) Option {
	return func(o *detectOptions) {
		o.clock = c
	}
}

func newDetectOptions(launch *LaunchConfig, opts []Option) detectOptions {
	o := detectOptions{
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.prober == nil {
		o.prober = backend.Default()
	}
	if o.env == nil {
		o.env = launch.Environment()
	}
	if o.env == nil {
		o.env = OSEnvironment()
	}
	return o
}
