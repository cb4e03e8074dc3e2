package renderer

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
)

// Diagnostics records what negotiation tried and what it found.
// Empty strings mean the value is absent.
type Diagnostics struct {
	ForcedSoftware  bool
	EnvForced       bool
	FallbackUsed    bool
	SoftwareBackend bool

	// Compositor is "Wayland", "X11", or empty.
	Compositor string

	// Backend is the renderer identifier of the selected attempt.
	Backend string

	AdapterName    string
	AdapterType    string
	BackendDetails string

	// FailureReason is the " -> " joined chain of earlier failures.
	FailureReason string

	// StartedAt is when negotiation began.
	StartedAt time.Time

	deviceType gputypes.DeviceType
}

// describeAdapter copies the probed adapter descriptor into d.
func (d *Diagnostics) describeAdapter(info gputypes.AdapterInfo) {
	d.AdapterName = info.Name
	d.AdapterType = info.DeviceType.String()
	d.BackendDetails = fmt.Sprintf("Backend: %s, Driver: %s", info.Backend, info.Driver)
	if info.DriverInfo != "" {
		d.BackendDetails += " (" + info.DriverInfo + ")"
	}
	d.deviceType = info.DeviceType
}

// AppendFailure adds reason to the end of the failure chain and marks the
// fallback as used.
func (d *Diagnostics) AppendFailure(reason string) {
	d.FailureReason = ChainFailure(d.FailureReason, reason)
	d.FallbackUsed = true
}
