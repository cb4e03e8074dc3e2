// Package rust provides an adapter prober using go-webgpu/webgpu, the
// zero-CGO bindings to wgpu-native (the Rust WebGPU implementation).
//
// The prober is registered when this package is imported with the "rust"
// build tag and is then preferred over the Pure Go prober:
//
//	// Build with: go build -tags rust
//	import _ "github.com/microserial/microserial/backend/rust"
//
// Without the tag a stub registers a nil factory and backend.Default falls
// through to the next prober.
//
// # Environment
//
// wgpu-native takes backend restrictions from WGPU_BACKEND and Mesa takes
// the software rasterizer switch from LIBGL_ALWAYS_SOFTWARE. The renderer
// package writes both before every probe, which is why it keeps those
// variables at all.
//
// # Dependencies
//
// This prober requires wgpu-native library:
//   - Windows: wgpu_native.dll
//   - Linux: libwgpu_native.so
//   - macOS: libwgpu_native.dylib
//
// Download from: https://github.com/gfx-rs/wgpu-native/releases
//
// # Error Handling
//
//   - ErrLibraryNotFound: wgpu-native library not found
//   - ErrBackendMismatch: the adapter is outside the requested backend mask
//   - backend.ErrNoAdapter: no adapter, or no fallback adapter when one was forced
package rust
