//go:build !nogpu

package wgpu

import (
	"testing"

	"github.com/microserial/microserial/backend"
)

func TestProberRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendWGPU) {
		t.Fatal("wgpu prober not registered")
	}
	if _, ok := backend.Get(backend.BackendWGPU).(*Prober); !ok {
		t.Errorf("Get(wgpu) = %T, want *Prober", backend.Get(backend.BackendWGPU))
	}
}
