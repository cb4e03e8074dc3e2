//go:build !nogpu

package main

import (
	"github.com/microserial/microserial/backend"
	"github.com/microserial/microserial/backend/wgpu"
	"github.com/microserial/microserial/internal/app"
)

func openDevice(req backend.AdapterRequest) (app.Device, error) {
	return wgpu.OpenDevice(req)
}
