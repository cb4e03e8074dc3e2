package backend

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// SoftwareAdapterName is the adapter name reported by SoftwareProber.
const SoftwareAdapterName = "CPU rasterizer"

// SoftwareProber answers adapter requests without touching GPU drivers.
// It only satisfies requests that set ForceFallbackAdapter, returning a
// CPU adapter; hardware requests fail with ErrNoAdapter.
//
// It is the prober of last resort when no GPU prober is linked in
// (e.g. builds with the nogpu tag).
type SoftwareProber struct{}

// init registers the software prober on package import.
func init() {
	Register(BackendSoftware, func() Prober {
		return &SoftwareProber{}
	})
}

// NewSoftwareProber creates a new software prober.
func NewSoftwareProber() *SoftwareProber {
	return &SoftwareProber{}
}

// Name returns the prober identifier.
func (p *SoftwareProber) Name() string {
	return BackendSoftware
}

// RequestAdapter returns a CPU adapter for fallback requests.
func (p *SoftwareProber) RequestAdapter(req AdapterRequest) (gputypes.AdapterInfo, error) {
	if !req.ForceFallbackAdapter {
		return gputypes.AdapterInfo{}, fmt.Errorf("%w: no GPU prober available for %s",
			ErrNoAdapter, BackendsString(req.Backends))
	}
	return gputypes.AdapterInfo{
		Name:       SoftwareAdapterName,
		Vendor:     "microserial",
		DeviceType: gputypes.DeviceTypeCPU,
		Driver:     "software",
		Backend:    gputypes.BackendEmpty,
	}, nil
}
