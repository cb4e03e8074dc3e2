package renderer

import (
	"testing"
)

func TestParseForceSoftwareFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"0", false},
		{"false", false},
		{"yes", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			env := MapEnvironment{EnvForceSoftware: tt.value}
			c := Parse(nil, env, "linux")
			if c.ForceSoftware != tt.want {
				t.Errorf("ForceSoftware = %v, want %v", c.ForceSoftware, tt.want)
			}
			if c.EnvForced != tt.want {
				t.Errorf("EnvForced = %v, want %v", c.EnvForced, tt.want)
			}
			_, set := env[EnvSoftwareRasterizer]
			if set != tt.want {
				t.Errorf("%s set = %v, want %v", EnvSoftwareRasterizer, set, tt.want)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantForce    bool
		wantHeadless bool
	}{
		{"none", nil, false, false},
		{"force", []string{"--force-software"}, true, false},
		{"headless", []string{"--headless-detect"}, false, true},
		{"both", []string{"--headless-detect", "--force-software"}, true, true},
		{"prefix does not match", []string{"--force-software=1"}, false, false},
		{"unknown ignored", []string{"--verbose", "COM3"}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Parse(tt.args, MapEnvironment{}, "linux")
			if c.ForceSoftware != tt.wantForce {
				t.Errorf("ForceSoftware = %v, want %v", c.ForceSoftware, tt.wantForce)
			}
			if c.Headless != tt.wantHeadless {
				t.Errorf("Headless = %v, want %v", c.Headless, tt.wantHeadless)
			}
			if c.EnvForced {
				t.Error("EnvForced = true, want false")
			}
		})
	}
}

func TestParseSnapshotsBaselineBeforeMutation(t *testing.T) {
	env := MapEnvironment{
		EnvBackend:         "dx12",
		EnvPowerPreference: "high",
	}
	c := Parse([]string{FlagForceSoftware}, env, "windows")

	if got := c.Baseline.Backend; got != Some("dx12") {
		t.Errorf("Baseline.Backend = %v, want dx12", got)
	}
	if got := c.Baseline.PowerPreference; got != Some("high") {
		t.Errorf("Baseline.PowerPreference = %v, want high", got)
	}
	if c.Baseline.SoftwareRasterizer.Set {
		t.Errorf("Baseline.SoftwareRasterizer = %v, want unset", c.Baseline.SoftwareRasterizer)
	}
	if got := env[EnvPowerPreference]; got != "low" {
		t.Errorf("%s = %q, want %q", EnvPowerPreference, got, "low")
	}
}

func TestEnableForceSoftwareIdempotent(t *testing.T) {
	env := MapEnvironment{}
	c := Parse(nil, env, "linux")
	if c.ForceSoftware {
		t.Fatal("ForceSoftware = true before EnableForceSoftware")
	}

	c.EnableForceSoftware()
	first := map[string]string{}
	for k, v := range env {
		first[k] = v
	}
	c.EnableForceSoftware()

	if !c.ForceSoftware {
		t.Error("ForceSoftware = false after EnableForceSoftware")
	}
	if c.EnvForced {
		t.Error("EnableForceSoftware must not set EnvForced")
	}
	if len(env) != len(first) {
		t.Fatalf("environment size changed: %d -> %d", len(first), len(env))
	}
	for k, v := range first {
		if env[k] != v {
			t.Errorf("%s = %q after second call, want %q", k, env[k], v)
		}
	}
	if env[EnvSoftwareRasterizer] != "1" {
		t.Errorf("%s = %q, want 1", EnvSoftwareRasterizer, env[EnvSoftwareRasterizer])
	}
}

func TestAttemptCount(t *testing.T) {
	tests := []struct {
		goos string
		want int
	}{
		{"linux", 4},
		{"windows", 4},
		{"freebsd", 4},
		{"darwin", 5},
		{"ios", 5},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			c := Parse(nil, MapEnvironment{}, tt.goos)
			if got := c.AttemptCount(); got != tt.want {
				t.Errorf("AttemptCount() = %d, want %d", got, tt.want)
			}
			if c.AttemptCount() < 3 {
				t.Error("AttemptCount() < 3")
			}
		})
	}
}

func TestEnvValuesApply(t *testing.T) {
	env := MapEnvironment{
		EnvBackend:            "vulkan",
		EnvSoftwareRasterizer: "1",
		EnvPowerPreference:    "low",
		"OTHER":               "kept",
	}
	v := EnvValues{Backend: Some("gl")}
	if err := v.Apply(env); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := MapEnvironment{EnvBackend: "gl", "OTHER": "kept"}
	if len(env) != len(want) {
		t.Fatalf("env = %v, want %v", env, want)
	}
	for k, v := range want {
		if env[k] != v {
			t.Errorf("%s = %q, want %q", k, env[k], v)
		}
	}
}

func TestEnvValueString(t *testing.T) {
	if got := (EnvValue{}).String(); got != "<unset>" {
		t.Errorf("unset String() = %q", got)
	}
	if got := Some("").String(); got != "" {
		t.Errorf("Some(\"\").String() = %q, want empty", got)
	}
}

func TestOSEnvironment(t *testing.T) {
	t.Setenv("MICROSERIAL_TEST_KEY", "a")
	env := OSEnvironment()

	if v, ok := env.Lookup("MICROSERIAL_TEST_KEY"); !ok || v != "a" {
		t.Fatalf("Lookup = %q, %v", v, ok)
	}
	if err := env.Set("MICROSERIAL_TEST_KEY", "b"); err != nil {
		t.Fatal(err)
	}
	if v, _ := env.Lookup("MICROSERIAL_TEST_KEY"); v != "b" {
		t.Errorf("after Set, value = %q, want b", v)
	}
	if err := env.Unset("MICROSERIAL_TEST_KEY"); err != nil {
		t.Fatal(err)
	}
	if _, ok := env.Lookup("MICROSERIAL_TEST_KEY"); ok {
		t.Error("key still set after Unset")
	}
}
