package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// Common backend errors.
var (
	// ErrNoAdapter is returned when no adapter matches a request.
	ErrNoAdapter = errors.New("backend: no compatible adapter")

	// ErrCPUOnly is returned when only a CPU adapter answered a request
	// that did not ask for one.
	ErrCPUOnly = errors.New("backend: only CPU adapter available")

	// ErrNoProber is returned when no prober is registered.
	ErrNoProber = errors.New("backend: no adapter prober registered")
)

// AdapterRequest is the explicit configuration handed to a Prober.
// It carries everything that selects an adapter; probers must not read
// process environment to complete it.
type AdapterRequest struct {
	// Backends restricts enumeration to these API families.
	// gputypes.BackendsAll means "system default".
	Backends gputypes.Backends

	// PowerPreference is LowPower when software is required,
	// HighPerformance otherwise.
	PowerPreference gputypes.PowerPreference

	// ForceFallbackAdapter asks for the CPU (fallback) adapter.
	ForceFallbackAdapter bool
}

// String returns a compact description used in logs.
func (r AdapterRequest) String() string {
	return fmt.Sprintf("backends=%s power=%s fallback=%t",
		BackendsString(r.Backends), r.PowerPreference, r.ForceFallbackAdapter)
}

// BackendsString names the families contained in a backend mask.
func BackendsString(b gputypes.Backends) string {
	if b == gputypes.BackendsAll {
		return "all"
	}
	if b == gputypes.BackendsNone {
		return "none"
	}
	s := ""
	for _, be := range []gputypes.Backend{
		gputypes.BackendVulkan,
		gputypes.BackendMetal,
		gputypes.BackendDX12,
		gputypes.BackendGL,
		gputypes.BackendBrowserWebGPU,
	} {
		if !b.Contains(be) {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += be.String()
	}
	return s
}

// Prober is the adapter-acquisition primitive.
//
// RequestAdapter blocks until the underlying graphics stack answers.
// It returns the descriptor of the adapter it found, or an error
// (typically wrapping ErrNoAdapter) when none is available.
// Implementations are not required to be safe for concurrent use;
// negotiation calls them strictly sequentially.
type Prober interface {
	RequestAdapter(req AdapterRequest) (gputypes.AdapterInfo, error)
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(req AdapterRequest) (gputypes.AdapterInfo, error)

// RequestAdapter calls f(req).
func (f ProberFunc) RequestAdapter(req AdapterRequest) (gputypes.AdapterInfo, error) {
	return f(req)
}

// Named is implemented by probers that report an identifier.
type Named interface {
	Name() string
}
