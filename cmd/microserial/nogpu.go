//go:build nogpu

package main

import "github.com/microserial/microserial/internal/app"

// Without GPU support every hardware selection fails on the host and the
// run ends on the software renderer.
var openDevice app.DeviceOpener
