// Package backend defines the adapter-acquisition contract used by renderer
// negotiation and a registry of probers that implement it.
//
// A Prober receives an explicit AdapterRequest (backend mask, power
// preference, force-fallback flag) and answers with the descriptor of the
// adapter the graphics stack picked.
//
// # Prober Registration
//
// Probers are registered via init() functions and selected at runtime.
// The software prober is automatically registered on import:
//
//	import _ "github.com/microserial/microserial/backend"
//
// GPU probers register themselves when their package is imported:
//
//	import _ "github.com/microserial/microserial/backend/wgpu" // Pure Go (gogpu/wgpu)
//	import _ "github.com/microserial/microserial/backend/rust" // wgpu-native, -tags rust
//
// # Prober Selection
//
// Use Default() to get the best available prober, or Get() to request
// a specific one by name:
//
//	p := backend.Default()
//	info, err := p.RequestAdapter(backend.AdapterRequest{
//		Backends:        gputypes.BackendsAll,
//		PowerPreference: gputypes.PowerPreferenceHighPerformance,
//	})
//
// # Available Probers
//
// - "rust": wgpu-native via go-webgpu/webgpu (build tag rust)
// - "wgpu": Pure Go gogpu/wgpu
// - "software": CPU fallback only (always available)
package backend
