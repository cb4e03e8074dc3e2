//go:build !nogpu

package wgpu

import (
	"github.com/gogpu/wgpu/hal"
	// Register the HAL backends available on this platform.
	_ "github.com/gogpu/wgpu/hal/allbackends"

	"github.com/microserial/microserial"
	"github.com/microserial/microserial/backend"
)

func init() {
	backend.Register(backend.BackendWGPU, func() backend.Prober {
		return NewProber()
	})
	microserial.OnSetLogger(hal.SetLogger)
}
