package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/microserial/microserial"
	"github.com/microserial/microserial/backend"
)

// newInstance is replaced in tests.
var newInstance = core.NewInstance

// Prober acquires adapters through the Pure Go wgpu stack.
type Prober struct {
	// AllowMock accepts the mock adapter wgpu creates when no HAL backend
	// finds a device. Only tests set it.
	AllowMock bool

	// SkipShaderCheck disables the shader translation check.
	SkipShaderCheck bool
}

// NewProber returns a Prober with default settings.
func NewProber() *Prober {
	return &Prober{}
}

// Name returns the registry name.
func (p *Prober) Name() string {
	return backend.BackendWGPU
}

// RequestAdapter implements backend.Prober.
//
// A fresh instance restricted to req.Backends is created for every call
// and destroyed before returning, so no GPU state outlives the probe.
func (p *Prober) RequestAdapter(req backend.AdapterRequest) (gputypes.AdapterInfo, error) {
	inst, adapterID, err := p.acquire(req)
	if err != nil {
		return gputypes.AdapterInfo{}, err
	}
	defer inst.Destroy()
	defer func() {
		if err := releaseAdapter(adapterID); err != nil {
			microserial.Logger().Warn("wgpu: release adapter", "err", err)
		}
	}()

	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return gputypes.AdapterInfo{}, fmt.Errorf("%w: %w", backend.ErrNoAdapter, err)
	}

	if !p.SkipShaderCheck {
		target, err := CheckShaders(info.Backend)
		if err != nil {
			return gputypes.AdapterInfo{}, err
		}
		microserial.Logger().Debug("wgpu: probe shader translated", "target", target)
	}

	microserial.Logger().Debug("wgpu: adapter found",
		"gpu", newGPUInfo(info).String(),
		"request", req.String())
	return info, nil
}

// acquire creates an instance and requests an adapter from it. On success
// the caller owns both.
func (p *Prober) acquire(req backend.AdapterRequest) (*core.Instance, core.AdapterID, error) {
	desc := gputypes.DefaultInstanceDescriptor()
	desc.Backends = req.Backends

	inst := newInstance(&desc)
	if inst.IsMock() && !p.AllowMock {
		inst.Destroy()
		return nil, core.AdapterID{}, fmt.Errorf("%w: %s", ErrMockAdapter, backend.BackendsString(req.Backends))
	}

	adapterID, err := inst.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference:      req.PowerPreference,
		ForceFallbackAdapter: req.ForceFallbackAdapter,
	})
	if err != nil {
		inst.Destroy()
		return nil, core.AdapterID{}, fmt.Errorf("%w: %w", backend.ErrNoAdapter, err)
	}
	return inst, adapterID, nil
}
