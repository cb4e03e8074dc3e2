// Copyright 2026 The MicroSerial Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import (
	"os"
)

// Environment keys read or written during negotiation.
const (
	// EnvForceSoftware forces the software path when "1" or "true".
	EnvForceSoftware = "MICROSERIAL_FORCE_SOFTWARE"

	// EnvBackend restricts wgpu-native to one API family.
	EnvBackend = "WGPU_BACKEND"

	// EnvSoftwareRasterizer makes Mesa GL drivers use llvmpipe.
	EnvSoftwareRasterizer = "LIBGL_ALWAYS_SOFTWARE"

	// EnvPowerPreference is the wgpu-native power preference override.
	EnvPowerPreference = "WGPU_POWER_PREF"

	// EnvWaylandDisplay and EnvX11Display are read-only compositor hints.
	EnvWaylandDisplay = "WAYLAND_DISPLAY"
	EnvX11Display     = "DISPLAY"
)

// Values written to the environment channel.
const (
	softwareRasterizerOn = "1"
	powerPreferenceLow   = "low"
)

// Environment is the process-global configuration channel consumed by
// native graphics libraries (Mesa, wgpu-native).
//
// Implementations are not safe for concurrent use by multiple negotiations;
// the process environment is a single shared resource.
type Environment interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

// OSEnvironment returns the real process environment.
func OSEnvironment() Environment {
	return osEnvironment{}
}

type osEnvironment struct{}

func (osEnvironment) Lookup(key string) (string, bool) { return os.LookupEnv(key) }
func (osEnvironment) Set(key, value string) error      { return os.Setenv(key, value) }
func (osEnvironment) Unset(key string) error           { return os.Unsetenv(key) }

// MapEnvironment is an in-memory Environment, used by tests and by
// callers that want to observe what negotiation would write.
type MapEnvironment map[string]string

// Lookup implements Environment.
func (m MapEnvironment) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set implements Environment.
func (m MapEnvironment) Set(key, value string) error {
	m[key] = value
	return nil
}

// Unset implements Environment.
func (m MapEnvironment) Unset(key string) error {
	delete(m, key)
	return nil
}

// EnvValue is an optional environment value. The zero value means unset.
type EnvValue struct {
	Value string
	Set   bool
}

// Some returns a set EnvValue.
func Some(v string) EnvValue {
	return EnvValue{Value: v, Set: true}
}

// String returns the value, or "<unset>".
func (v EnvValue) String() string {
	if !v.Set {
		return "<unset>"
	}
	return v.Value
}

// EnvValues holds the three backend-steering environment values.
// A complete EnvValues fully determines the channel state, so applying one
// never depends on what a previous attempt left behind.
type EnvValues struct {
	Backend            EnvValue
	SoftwareRasterizer EnvValue
	PowerPreference    EnvValue
}

// snapshotEnv captures the current backend-steering values.
func snapshotEnv(env Environment) EnvValues {
	lookup := func(key string) EnvValue {
		v, ok := env.Lookup(key)
		return EnvValue{Value: v, Set: ok}
	}
	return EnvValues{
		Backend:            lookup(EnvBackend),
		SoftwareRasterizer: lookup(EnvSoftwareRasterizer),
		PowerPreference:    lookup(EnvPowerPreference),
	}
}

// Apply writes all three values to env, unsetting absent ones.
func (v EnvValues) Apply(env Environment) error {
	for _, kv := range []struct {
		key string
		val EnvValue
	}{
		{EnvBackend, v.Backend},
		{EnvSoftwareRasterizer, v.SoftwareRasterizer},
		{EnvPowerPreference, v.PowerPreference},
	} {
		var err error
		if kv.val.Set {
			err = env.Set(kv.key, kv.val.Value)
		} else {
			err = env.Unset(kv.key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
