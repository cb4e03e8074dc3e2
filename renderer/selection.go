package renderer

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/microserial/microserial/backend"
)

// Renderer identifiers handed to the window host.
const (
	RendererWGPU     = "wgpu"
	RendererSoftware = "software"
)

// HardwareAcceleration is the window host's acceleration preference.
type HardwareAcceleration int

const (
	AccelerationPreferred HardwareAcceleration = iota
	AccelerationOff
)

// String returns the acceleration name.
func (h HardwareAcceleration) String() string {
	switch h {
	case AccelerationPreferred:
		return "Preferred"
	case AccelerationOff:
		return "Off"
	default:
		return fmt.Sprintf("HardwareAcceleration(%d)", int(h))
	}
}

// HostOptions configures the window host for the selected renderer.
type HostOptions struct {
	Renderer             string
	HardwareAcceleration HardwareAcceleration
	Adapter              gpucontext.AdapterInfo
}

// Selection is the result of a successful negotiation.
type Selection struct {
	// AttemptIndex is the position of the chosen attempt in the plan.
	AttemptIndex int
	AttemptLabel string

	// Request is the adapter request the chosen attempt used.
	Request backend.AdapterRequest

	Options     HostOptions
	Diagnostics Diagnostics
}
