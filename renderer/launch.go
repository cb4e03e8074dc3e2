// Copyright 2026 The MicroSerial Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import (
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/microserial/microserial"
)

// Command-line flags recognised by Parse. They are matched literally.
const (
	FlagForceSoftware = "--force-software"
	FlagHeadless      = "--headless-detect"
)

// LaunchConfig is the startup configuration for renderer negotiation.
//
// It is created once per process. Apart from EnableForceSoftware it is not
// modified after Parse returns.
type LaunchConfig struct {
	// ForceSoftware requests the software path for every attempt.
	ForceSoftware bool

	// Headless selects the non-interactive diagnostic mode.
	Headless bool

	// EnvForced reports that ForceSoftware came from MICROSERIAL_FORCE_SOFTWARE.
	EnvForced bool

	// Baseline holds the backend-steering environment values as they were
	// before this process changed anything. Every attempt derives its values
	// from this baseline.
	Baseline EnvValues

	env      Environment
	platform string
}

// FromProcess parses the real process arguments and environment.
func FromProcess() *LaunchConfig {
	return Parse(os.Args[1:], OSEnvironment(), runtime.GOOS)
}

// Parse builds a LaunchConfig from arguments (without the program name),
// an environment and a GOOS value.
//
// When software rendering is forced, Parse calls EnableForceSoftware before
// returning, which writes to env.
func Parse(args []string, env Environment, goos string) *LaunchConfig {
	envForced := envFlag(env, EnvForceSoftware)
	c := &LaunchConfig{
		ForceSoftware: envForced || slices.Contains(args, FlagForceSoftware),
		Headless:      slices.Contains(args, FlagHeadless),
		EnvForced:     envForced,
		Baseline:      snapshotEnv(env),
		env:           env,
		platform:      goos,
	}
	if c.ForceSoftware {
		c.EnableForceSoftware()
	}
	return c
}

// EnableForceSoftware forces the software path for all later attempts and
// turns on the software rasterizer and low-power toggles. It is idempotent.
//
// This changes process-global state and must run before any concurrent use
// of the graphics stack.
func (c *LaunchConfig) EnableForceSoftware() {
	c.ForceSoftware = true
	for _, kv := range [][2]string{
		{EnvSoftwareRasterizer, softwareRasterizerOn},
		{EnvPowerPreference, powerPreferenceLow},
	} {
		if err := c.env.Set(kv[0], kv[1]); err != nil {
			microserial.Logger().Warn("renderer: failed to set environment", "key", kv[0], "err", err)
		}
	}
}

// Attempts returns the fallback plan for this launch.
func (c *LaunchConfig) Attempts() []Attempt {
	return Plan(c.platform)
}

// AttemptCount returns the number of attempts in the fallback plan.
// Callers use it to bound retry loops after host-level failures.
func (c *LaunchConfig) AttemptCount() int {
	return len(c.Attempts())
}

// Platform returns the GOOS value the plan is built for.
func (c *LaunchConfig) Platform() string {
	return c.platform
}

// Environment returns the environment channel the launch was parsed from.
func (c *LaunchConfig) Environment() Environment {
	return c.env
}

func envFlag(env Environment, key string) bool {
	v, ok := env.Lookup(key)
	return ok && (v == "1" || strings.EqualFold(v, "true"))
}
