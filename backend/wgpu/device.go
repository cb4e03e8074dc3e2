package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/microserial/microserial"
	"github.com/microserial/microserial/backend"
)

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType gputypes.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend gputypes.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

func newGPUInfo(info gputypes.AdapterInfo) *GPUInfo {
	return &GPUInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
		Driver:     info.Driver,
	}
}

// Device is a logical device opened for the window host.
type Device struct {
	Info   *GPUInfo
	Limits gputypes.Limits

	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID
}

// OpenDevice acquires an adapter for req and creates a logical device and
// queue on it. This is the host-level acceptance check: an adapter that
// probes fine can still fail here.
func OpenDevice(req backend.AdapterRequest) (*Device, error) {
	return (&Prober{}).openDevice(req)
}

func (p *Prober) openDevice(req backend.AdapterRequest) (*Device, error) {
	inst, adapterID, err := p.acquire(req)
	if err != nil {
		return nil, err
	}
	d := &Device{instance: inst, adapter: adapterID}

	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to get adapter info: %w", err)
	}
	d.Info = newGPUInfo(info)

	desc := gputypes.DefaultDeviceDescriptor()
	desc.Label = "microserial"
	d.device, err = core.RequestDevice(adapterID, &desc)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	d.queue, err = core.GetDeviceQueue(d.device)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to get device queue: %w", err)
	}

	d.Limits, err = core.GetDeviceLimits(d.device)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to get device limits: %w", err)
	}

	microserial.Logger().Info("wgpu: device opened",
		"gpu", d.Info.String(),
		"driver", d.Info.Driver,
		"maxTexture2D", d.Limits.MaxTextureDimension2D,
		"maxBufferSize", d.Limits.MaxBufferSize)
	return d, nil
}

// Close releases the device, the adapter and the instance. It is safe to
// call more than once.
func (d *Device) Close() error {
	var firstErr error
	if !d.device.IsZero() {
		if err := core.DeviceDrop(d.device); err != nil {
			firstErr = fmt.Errorf("failed to release device: %w", err)
		}
		d.device = core.DeviceID{}
		d.queue = core.QueueID{}
	}
	if err := releaseAdapter(d.adapter); err != nil && firstErr == nil {
		firstErr = err
	}
	d.adapter = core.AdapterID{}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
	return firstErr
}

// releaseAdapter releases an adapter.
func releaseAdapter(adapterID core.AdapterID) error {
	if adapterID.IsZero() {
		return nil
	}

	err := core.AdapterDrop(adapterID)
	if err != nil {
		return fmt.Errorf("failed to release adapter: %w", err)
	}
	return nil
}

// String describes the device's GPU.
func (d *Device) String() string {
	if d.Info == nil {
		return "<closed>"
	}
	return d.Info.String()
}
