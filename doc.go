// Package microserial is the root of the MicroSerial application shell.
//
// The root package only carries the shared logger. The work happens in
// sub-packages:
//
//   - renderer: graphics backend negotiation (launch config, fallback plan,
//     probing, diagnostics, headless report)
//   - backend: the adapter prober contract and registry
//   - backend/wgpu: Pure Go prober on gogpu/wgpu
//   - backend/rust: wgpu-native prober (build tag "rust")
//
// # Logging
//
// By default nothing is logged. Call [SetLogger] to enable output for the
// whole module, including the wgpu HAL layer:
//
//	microserial.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
package microserial
