//go:build rust

package rust

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/gogpu/gputypes"

	"github.com/microserial/microserial"
	"github.com/microserial/microserial/backend"
)

// init registers the rust prober on package import.
func init() {
	backend.Register(backend.BackendRust, func() backend.Prober {
		return NewProber()
	})
}

// Prober acquires adapters through wgpu-native.
//
// wgpu-native reads WGPU_BACKEND and the Mesa driver reads
// LIBGL_ALWAYS_SOFTWARE when the instance is created, so the environment
// written for each attempt takes effect here. The backend mask of the
// request is checked again against the adapter that comes back.
type Prober struct {
	initOnce sync.Once
	initErr  error
}

// NewProber creates a new wgpu-native prober. The library is loaded on the
// first RequestAdapter call.
func NewProber() *Prober {
	return &Prober{}
}

// Name returns the registry name.
func (p *Prober) Name() string {
	return backend.BackendRust
}

// RequestAdapter implements backend.Prober.
func (p *Prober) RequestAdapter(req backend.AdapterRequest) (gputypes.AdapterInfo, error) {
	// Step 1: Load wgpu-native
	p.initOnce.Do(func() {
		p.initErr = wgpu.Init()
	})
	if p.initErr != nil {
		return gputypes.AdapterInfo{}, fmt.Errorf("%w: %w", ErrLibraryNotFound, p.initErr)
	}

	// Step 2: Create Instance
	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return gputypes.AdapterInfo{}, fmt.Errorf("instance creation failed: %w", err)
	}
	defer instance.Release()

	// Step 3: Request Adapter
	adapter, err := instance.RequestAdapter(adapterOptions(req))
	if err != nil {
		return gputypes.AdapterInfo{}, fmt.Errorf("%w: %w", backend.ErrNoAdapter, err)
	}
	defer adapter.Release()

	// Step 4: Describe it
	raw, err := adapter.GetInfo()
	if err != nil {
		return gputypes.AdapterInfo{}, fmt.Errorf("%w: adapter info: %w", backend.ErrNoAdapter, err)
	}
	info := gputypes.AdapterInfo{
		Name:       raw.Device,
		Vendor:     raw.Vendor,
		VendorID:   raw.VendorID,
		DeviceID:   raw.DeviceID,
		DeviceType: deviceTypeOf(raw.AdapterType),
		Driver:     raw.Description,
		DriverInfo: raw.Architecture,
		Backend:    backendOf(raw.BackendType),
	}

	microserial.Logger().Debug("rust: adapter found",
		"device", info.Name,
		"backend", info.Backend.String(),
		"type", info.DeviceType.String(),
		"vendorID", fmt.Sprintf("0x%04X", info.VendorID))

	if err := checkRequest(req, info); err != nil {
		return gputypes.AdapterInfo{}, err
	}
	return info, nil
}

// adapterOptions converts a request into wgpu-native adapter options.
// The backend mask has no field here; wgpu-native takes it from WGPU_BACKEND.
func adapterOptions(req backend.AdapterRequest) *wgpu.RequestAdapterOptions {
	opts := &wgpu.RequestAdapterOptions{
		PowerPreference:      req.PowerPreference,
		ForceFallbackAdapter: wgpu.False,
	}
	if req.ForceFallbackAdapter {
		opts.ForceFallbackAdapter = wgpu.True
	}
	return opts
}

// checkRequest rejects adapters outside the requested backend mask, and
// non-CPU adapters when a fallback adapter was forced.
func checkRequest(req backend.AdapterRequest, info gputypes.AdapterInfo) error {
	if !req.Backends.Contains(info.Backend) {
		return fmt.Errorf("%w: got %s, want %s", ErrBackendMismatch, info.Backend, backend.BackendsString(req.Backends))
	}
	if req.ForceFallbackAdapter && info.DeviceType != gputypes.DeviceTypeCPU {
		return fmt.Errorf("%w: no fallback adapter, got %s %s", backend.ErrNoAdapter, info.DeviceType, info.Name)
	}
	return nil
}

// backendOf converts a wgpu-native backend type.
func backendOf(bt wgpu.BackendType) gputypes.Backend {
	switch bt {
	case wgpu.BackendTypeVulkan:
		return gputypes.BackendVulkan
	case wgpu.BackendTypeMetal:
		return gputypes.BackendMetal
	case wgpu.BackendTypeD3D12:
		return gputypes.BackendDX12
	case wgpu.BackendTypeOpenGL, wgpu.BackendTypeOpenGLES:
		return gputypes.BackendGL
	case wgpu.BackendTypeWebGPU:
		return gputypes.BackendBrowserWebGPU
	default:
		return gputypes.BackendEmpty
	}
}

// deviceTypeOf converts a wgpu-native adapter type.
func deviceTypeOf(at wgpu.AdapterType) gputypes.DeviceType {
	switch at {
	case wgpu.AdapterTypeDiscreteGPU:
		return gputypes.DeviceTypeDiscreteGPU
	case wgpu.AdapterTypeIntegratedGPU:
		return gputypes.DeviceTypeIntegratedGPU
	case wgpu.AdapterTypeCPU:
		return gputypes.DeviceTypeCPU
	default:
		return gputypes.DeviceTypeOther
	}
}
