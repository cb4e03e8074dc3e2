// Copyright 2026 The MicroSerial Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/microserial/microserial/backend"
)

// BackendFamily names an explicit graphics API family for an attempt.
type BackendFamily int

const (
	// FamilyDefault leaves the backend choice to the graphics stack.
	FamilyDefault BackendFamily = iota
	FamilyVulkan
	FamilyMetal
	FamilyDX12
	FamilyOpenGL
)

// String returns the value written to WGPU_BACKEND for the family.
func (f BackendFamily) String() string {
	switch f {
	case FamilyDefault:
		return "default"
	case FamilyVulkan:
		return "vulkan"
	case FamilyMetal:
		return "metal"
	case FamilyDX12:
		return "dx12"
	case FamilyOpenGL:
		return "gl"
	default:
		return fmt.Sprintf("BackendFamily(%d)", int(f))
	}
}

// Backends returns the adapter backend mask for the family.
func (f BackendFamily) Backends() gputypes.Backends {
	switch f {
	case FamilyVulkan:
		return gputypes.BackendsVulkan
	case FamilyMetal:
		return gputypes.BackendsMetal
	case FamilyDX12:
		return gputypes.BackendsDX12
	case FamilyOpenGL:
		return gputypes.BackendsGL
	default:
		return gputypes.BackendsAll
	}
}

// Config is the complete configuration of one attempt: the adapter request
// handed to the prober and the values written to the environment channel.
type Config struct {
	Request          backend.AdapterRequest
	Env              EnvValues
	SoftwareRequired bool
}

// Attempt is one candidate renderer configuration in the fallback plan.
//
// The set of implementations is closed: *HardwareAttempt and
// *SoftwareAttempt.
type Attempt interface {
	// Label is a short human-readable name, unique within a plan.
	Label() string

	// Apply derives the attempt configuration from the launch baseline.
	// It has no side effects.
	Apply(launch *LaunchConfig) Config

	// Probe checks whether the configuration yields a usable adapter.
	// The bool result reports whether an adapter was inspected.
	Probe(p backend.Prober, cfg Config) (gputypes.AdapterInfo, bool, error)

	// HostOptions derives the window host options for a successful probe.
	HostOptions(d Diagnostics) HostOptions

	attempt()
}

// HardwareAttempt probes the GPU path, optionally pinned to one API family.
type HardwareAttempt struct {
	Name            string
	Family          BackendFamily
	EnforceSoftware bool
}

// Label implements Attempt.
func (a *HardwareAttempt) Label() string { return a.Name }

// Apply implements Attempt.
func (a *HardwareAttempt) Apply(launch *LaunchConfig) Config {
	required := launch.ForceSoftware || a.EnforceSoftware

	env := launch.Baseline
	if a.Family != FamilyDefault {
		env.Backend = Some(a.Family.String())
	}
	if required {
		env.SoftwareRasterizer = Some(softwareRasterizerOn)
		env.PowerPreference = Some(powerPreferenceLow)
	}

	power := gputypes.PowerPreferenceHighPerformance
	if required {
		power = gputypes.PowerPreferenceLowPower
	}

	return Config{
		Request: backend.AdapterRequest{
			Backends:             a.Family.Backends(),
			PowerPreference:      power,
			ForceFallbackAdapter: required,
		},
		Env:              env,
		SoftwareRequired: required,
	}
}

// Probe implements Attempt. A CPU adapter is accepted only when the
// configuration requires software rendering.
func (a *HardwareAttempt) Probe(p backend.Prober, cfg Config) (gputypes.AdapterInfo, bool, error) {
	info, err := p.RequestAdapter(cfg.Request)
	if err != nil {
		return gputypes.AdapterInfo{}, false, err
	}
	if info.DeviceType == gputypes.DeviceTypeCPU && !cfg.SoftwareRequired {
		return info, true, fmt.Errorf("%w: %s", backend.ErrCPUOnly, info.Name)
	}
	return info, true, nil
}

// HostOptions implements Attempt.
func (a *HardwareAttempt) HostOptions(d Diagnostics) HostOptions {
	accel := AccelerationPreferred
	if d.SoftwareBackend {
		accel = AccelerationOff
	}
	return HostOptions{
		Renderer:             RendererWGPU,
		HardwareAcceleration: accel,
		Adapter: gpucontext.AdapterInfo{
			Name: d.AdapterName,
			Type: adapterType(d.deviceType),
		},
	}
}

func (*HardwareAttempt) attempt() {}

// SoftwareAttempt selects the CPU rasterizer. It never probes and never
// fails, which makes it the terminal entry of every plan.
type SoftwareAttempt struct {
	Name string
}

// Label implements Attempt.
func (a *SoftwareAttempt) Label() string { return a.Name }

// Apply implements Attempt. The backend override is restored to the
// baseline and the power preference is cleared.
func (a *SoftwareAttempt) Apply(launch *LaunchConfig) Config {
	return Config{
		Request: backend.AdapterRequest{
			Backends:             gputypes.BackendsAll,
			PowerPreference:      gputypes.PowerPreferenceLowPower,
			ForceFallbackAdapter: true,
		},
		Env: EnvValues{
			Backend:            launch.Baseline.Backend,
			SoftwareRasterizer: Some(softwareRasterizerOn),
		},
		SoftwareRequired: true,
	}
}

// Probe implements Attempt.
func (*SoftwareAttempt) Probe(backend.Prober, Config) (gputypes.AdapterInfo, bool, error) {
	return gputypes.AdapterInfo{}, false, nil
}

// HostOptions implements Attempt.
func (*SoftwareAttempt) HostOptions(Diagnostics) HostOptions {
	return HostOptions{
		Renderer:             RendererSoftware,
		HardwareAcceleration: AccelerationOff,
		Adapter: gpucontext.AdapterInfo{
			Name: backend.SoftwareAdapterName,
			Type: gpucontext.AdapterTypeSoftware,
		},
	}
}

func (*SoftwareAttempt) attempt() {}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}
