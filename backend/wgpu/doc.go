// Package wgpu provides an adapter prober backed by gogpu/wgpu, the Pure Go
// WebGPU implementation.
//
// Importing the package registers the prober under the name "wgpu" and
// routes the wgpu HAL logger through microserial.SetLogger:
//
//	import _ "github.com/microserial/microserial/backend/wgpu"
//
// Each probe creates an instance limited to the requested backend mask,
// requests an adapter with the requested power preference and fallback
// flag, and checks that the probe shader translates to the adapter's
// shading language (SPIR-V, MSL, HLSL or GLSL) with naga. The instance is
// destroyed before the probe returns.
//
// An instance that finds no HAL adapter falls back to a mock adapter. The
// prober reports that as ErrMockAdapter so the fallback plan moves on.
//
// OpenDevice goes one step further and creates a logical device and queue,
// which the window host keeps for its lifetime.
//
// Build with -tags nogpu to leave the prober unregistered.
package wgpu
