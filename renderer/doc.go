// Package renderer negotiates the graphics backend used by the MicroSerial
// desktop application.
//
// At startup the application cannot know whether the machine has a working
// GPU driver, a broken one, or none at all. Package renderer tries an
// ordered fallback plan of candidate configurations, from the system
// default GPU path down to a CPU rasterizer, and stops at the first one
// whose adapter probe succeeds.
//
// # Launch configuration
//
// [FromProcess] reads the command line and environment once:
//
//	--force-software               skip GPU backends
//	--headless-detect              print a report instead of opening a window
//	MICROSERIAL_FORCE_SOFTWARE=1   same as --force-software
//
// # Negotiation
//
//	launch := renderer.FromProcess()
//	sel, err := renderer.Detect(launch, 0)
//	if err != nil {
//	    // every attempt failed; err is an *ExhaustedError
//	}
//	host.Run(sel.Options)
//
// Attempts steer native graphics libraries through WGPU_BACKEND,
// LIBGL_ALWAYS_SOFTWARE and WGPU_POWER_PREF. Each attempt writes all three
// values derived from the launch baseline, so no attempt inherits state
// from an earlier one. The Pure Go prober receives the same intent as an
// explicit [backend.AdapterRequest].
//
// When the host fails after a successful selection, callers restart
// [Detect] at Selection.AttemptIndex+1 and chain the host error into the
// diagnostics with [Diagnostics.AppendFailure].
//
// # Headless mode
//
// [RunHeadlessProbe] runs one negotiation and returns a [HeadlessReport]
// suitable for bug reports and CI.
package renderer
