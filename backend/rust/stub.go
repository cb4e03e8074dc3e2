//go:build !rust

package rust

import "github.com/microserial/microserial/backend"

// init registers a nil-returning factory when rust tag is not set.
// backend.Default skips it and falls through to the next prober.
func init() {
	backend.Register(backend.BackendRust, func() backend.Prober {
		return nil
	})
}
