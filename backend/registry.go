package backend

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Prober name constants.
const (
	// BackendSoftware is the name of the CPU fallback prober.
	BackendSoftware = "software"
	// BackendWGPU is the name of the Pure Go prober (gogpu/wgpu).
	BackendWGPU = "wgpu"
	// BackendRust is the name of the wgpu-native prober (go-webgpu/webgpu FFI).
	BackendRust = "rust"
)

// ProberFactory creates a new prober instance.
type ProberFactory func() Prober

var (
	// Priority order for prober selection (first available wins).
	// Rust > WGPU > Software (the software prober only answers fallback requests).
	proberPriority = []string{BackendRust, BackendWGPU, BackendSoftware}

	probers = gpucontext.NewRegistry[Prober](gpucontext.WithPriority(proberPriority...))
)

// Register registers a prober factory with the given name.
// This is typically called from init() functions in backend packages.
// If a prober with the same name is already registered, it will be replaced.
func Register(name string, factory ProberFactory) {
	probers.Register(name, factory)
}

// Unregister removes a prober from the registry.
// This is useful for testing.
func Unregister(name string) {
	probers.Unregister(name)
}

// Available returns a list of registered prober names.
func Available() []string {
	return probers.Available()
}

// IsRegistered checks if a prober with the given name is registered.
func IsRegistered(name string) bool {
	return probers.Has(name)
}

// Get returns a prober instance by name.
// Returns nil if the prober is not registered.
func Get(name string) Prober {
	return probers.Get(name)
}

// Default returns the best available prober based on priority.
// A factory may return nil (e.g. a backend compiled without its build tag);
// such entries are skipped. Returns a prober that always fails with
// ErrNoProber if nothing usable is registered, so callers never receive nil.
func Default() Prober {
	for _, name := range proberPriority {
		if p := probers.Get(name); p != nil {
			return p
		}
	}
	if p := probers.Best(); p != nil {
		return p
	}
	return ProberFunc(func(AdapterRequest) (gputypes.AdapterInfo, error) {
		return gputypes.AdapterInfo{}, ErrNoProber
	})
}

// DefaultName returns the name of the prober Default would pick,
// or "" when none is registered.
func DefaultName() string {
	for _, name := range proberPriority {
		if probers.Get(name) != nil {
			return name
		}
	}
	return probers.BestName()
}
