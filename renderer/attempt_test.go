package renderer

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/microserial/microserial/backend"
)

func TestPlanOrder(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{LabelSystemDefault, LabelVulkan, LabelOpenGLSoftware, LabelSoftware}},
		{"windows", []string{LabelSystemDefault, LabelVulkan, LabelOpenGLSoftware, LabelSoftware}},
		{"darwin", []string{LabelSystemDefault, LabelVulkan, LabelOpenGLSoftware, LabelMetal, LabelSoftware}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			plan := Plan(tt.goos)
			if len(plan) != len(tt.want) {
				t.Fatalf("len(Plan) = %d, want %d", len(plan), len(tt.want))
			}
			for i, a := range plan {
				if a.Label() != tt.want[i] {
					t.Errorf("plan[%d] = %q, want %q", i, a.Label(), tt.want[i])
				}
			}
			if _, ok := plan[len(plan)-1].(*SoftwareAttempt); !ok {
				t.Errorf("last attempt is %T, want *SoftwareAttempt", plan[len(plan)-1])
			}
		})
	}
}

func TestPlanLabelsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Plan("darwin") {
		if seen[a.Label()] {
			t.Errorf("duplicate label %q", a.Label())
		}
		seen[a.Label()] = true
	}
}

func TestHardwareApply(t *testing.T) {
	baseline := EnvValues{
		Backend:         Some("dx12"),
		PowerPreference: Some("high"),
	}

	tests := []struct {
		name     string
		attempt  *HardwareAttempt
		force    bool
		wantEnv  EnvValues
		wantReq  backend.AdapterRequest
		wantSoft bool
	}{
		{
			name:    "system default restores baseline",
			attempt: &HardwareAttempt{Name: LabelSystemDefault},
			wantEnv: baseline,
			wantReq: backend.AdapterRequest{
				Backends:        gputypes.BackendsAll,
				PowerPreference: gputypes.PowerPreferenceHighPerformance,
			},
		},
		{
			name:    "explicit vulkan",
			attempt: &HardwareAttempt{Name: LabelVulkan, Family: FamilyVulkan},
			wantEnv: EnvValues{Backend: Some("vulkan"), PowerPreference: Some("high")},
			wantReq: backend.AdapterRequest{
				Backends:        gputypes.BackendsVulkan,
				PowerPreference: gputypes.PowerPreferenceHighPerformance,
			},
		},
		{
			name:    "enforced software",
			attempt: &HardwareAttempt{Name: LabelOpenGLSoftware, Family: FamilyOpenGL, EnforceSoftware: true},
			wantEnv: EnvValues{Backend: Some("gl"), SoftwareRasterizer: Some("1"), PowerPreference: Some("low")},
			wantReq: backend.AdapterRequest{
				Backends:             gputypes.BackendsGL,
				PowerPreference:      gputypes.PowerPreferenceLowPower,
				ForceFallbackAdapter: true,
			},
			wantSoft: true,
		},
		{
			name:    "launch force applies to system default",
			attempt: &HardwareAttempt{Name: LabelSystemDefault},
			force:   true,
			wantEnv: EnvValues{Backend: Some("dx12"), SoftwareRasterizer: Some("1"), PowerPreference: Some("low")},
			wantReq: backend.AdapterRequest{
				Backends:             gputypes.BackendsAll,
				PowerPreference:      gputypes.PowerPreferenceLowPower,
				ForceFallbackAdapter: true,
			},
			wantSoft: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launch := &LaunchConfig{ForceSoftware: tt.force, Baseline: baseline}
			cfg := tt.attempt.Apply(launch)
			if cfg.Env != tt.wantEnv {
				t.Errorf("Env = %+v, want %+v", cfg.Env, tt.wantEnv)
			}
			if cfg.Request != tt.wantReq {
				t.Errorf("Request = %v, want %v", cfg.Request, tt.wantReq)
			}
			if cfg.SoftwareRequired != tt.wantSoft {
				t.Errorf("SoftwareRequired = %v, want %v", cfg.SoftwareRequired, tt.wantSoft)
			}
		})
	}
}

func TestApplyIsOrderIndependent(t *testing.T) {
	launch := &LaunchConfig{Baseline: EnvValues{Backend: Some("metal")}}
	plan := Plan("darwin")

	forward := make([]Config, len(plan))
	for i, a := range plan {
		forward[i] = a.Apply(launch)
	}
	for i := len(plan) - 1; i >= 0; i-- {
		if got := plan[i].Apply(launch); got != forward[i] {
			t.Errorf("%s: Apply differs between runs: %+v vs %+v", plan[i].Label(), got, forward[i])
		}
	}
}

func TestSoftwareApply(t *testing.T) {
	launch := &LaunchConfig{Baseline: EnvValues{
		Backend:         Some("vulkan"),
		PowerPreference: Some("high"),
	}}
	cfg := (&SoftwareAttempt{Name: LabelSoftware}).Apply(launch)

	want := EnvValues{Backend: Some("vulkan"), SoftwareRasterizer: Some("1")}
	if cfg.Env != want {
		t.Errorf("Env = %+v, want %+v", cfg.Env, want)
	}
	if !cfg.SoftwareRequired {
		t.Error("SoftwareRequired = false, want true")
	}
}

func TestSoftwareProbeNeverCallsProber(t *testing.T) {
	called := false
	p := backend.ProberFunc(func(backend.AdapterRequest) (gputypes.AdapterInfo, error) {
		called = true
		return gputypes.AdapterInfo{}, errors.New("unexpected")
	})
	a := &SoftwareAttempt{Name: LabelSoftware}
	_, probed, err := a.Probe(p, a.Apply(&LaunchConfig{}))
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if probed || called {
		t.Errorf("probed = %v, called = %v, want false, false", probed, called)
	}
}

func TestHardwareProbeCPUAdapter(t *testing.T) {
	cpu := backend.ProberFunc(func(backend.AdapterRequest) (gputypes.AdapterInfo, error) {
		return gputypes.AdapterInfo{Name: "llvmpipe", DeviceType: gputypes.DeviceTypeCPU}, nil
	})

	tests := []struct {
		name    string
		attempt *HardwareAttempt
		force   bool
		wantErr error
	}{
		{"rejected without software", &HardwareAttempt{Name: LabelVulkan, Family: FamilyVulkan}, false, backend.ErrCPUOnly},
		{"accepted when enforced", &HardwareAttempt{Name: LabelOpenGLSoftware, Family: FamilyOpenGL, EnforceSoftware: true}, false, nil},
		{"accepted when forced", &HardwareAttempt{Name: LabelSystemDefault}, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.attempt.Apply(&LaunchConfig{ForceSoftware: tt.force})
			info, probed, err := tt.attempt.Probe(cpu, cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if !probed || info.Name != "llvmpipe" {
				t.Errorf("probed = %v, name = %q", probed, info.Name)
			}
		})
	}
}

func TestHostOptions(t *testing.T) {
	hw := &HardwareAttempt{Name: LabelSystemDefault}

	d := Diagnostics{AdapterName: "Radeon", deviceType: gputypes.DeviceTypeDiscreteGPU}
	got := hw.HostOptions(d)
	want := HostOptions{
		Renderer:             RendererWGPU,
		HardwareAcceleration: AccelerationPreferred,
		Adapter:              gpucontext.AdapterInfo{Name: "Radeon", Type: gpucontext.AdapterTypeDiscrete},
	}
	if got != want {
		t.Errorf("hardware HostOptions = %+v, want %+v", got, want)
	}

	d.SoftwareBackend = true
	if got := hw.HostOptions(d).HardwareAcceleration; got != AccelerationOff {
		t.Errorf("software-backed hardware acceleration = %v, want Off", got)
	}

	sw := (&SoftwareAttempt{}).HostOptions(Diagnostics{})
	if sw.Renderer != RendererSoftware || sw.HardwareAcceleration != AccelerationOff {
		t.Errorf("software HostOptions = %+v", sw)
	}
	if sw.Adapter.Type != gpucontext.AdapterTypeSoftware {
		t.Errorf("software adapter type = %v, want Software", sw.Adapter.Type)
	}
}

func TestBackendFamily(t *testing.T) {
	tests := []struct {
		f        BackendFamily
		str      string
		backends gputypes.Backends
	}{
		{FamilyDefault, "default", gputypes.BackendsAll},
		{FamilyVulkan, "vulkan", gputypes.BackendsVulkan},
		{FamilyMetal, "metal", gputypes.BackendsMetal},
		{FamilyDX12, "dx12", gputypes.BackendsDX12},
		{FamilyOpenGL, "gl", gputypes.BackendsGL},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.f.Backends(); got != tt.backends {
			t.Errorf("%s.Backends() = %v, want %v", tt.str, got, tt.backends)
		}
	}
	if got := BackendFamily(42).String(); got != "BackendFamily(42)" {
		t.Errorf("unknown String() = %q", got)
	}
}
