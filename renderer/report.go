package renderer

import (
	"io"
	"strings"
)

// HeadlessReport is the plain-text rendering of Diagnostics printed in
// headless mode.
type HeadlessReport struct {
	Diagnostics Diagnostics
}

// Lines returns the report lines in fixed order. Absent values and false
// flags produce no line.
func (r HeadlessReport) Lines() []string {
	d := r.Diagnostics
	var lines []string
	add := func(prefix, v string) {
		if v != "" {
			lines = append(lines, prefix+v)
		}
	}
	flag := func(line string, on bool) {
		if on {
			lines = append(lines, line)
		}
	}

	add("Renderer: ", d.Backend)
	add("Adapter: ", d.AdapterName)
	add("Adapter Type: ", d.AdapterType)
	add("Details: ", d.BackendDetails)
	add("Compositor: ", d.Compositor)
	flag("Software rendering forced", d.ForcedSoftware)
	flag("Set by "+EnvForceSoftware, d.EnvForced)
	flag("Software backend active", d.SoftwareBackend)
	flag("Fallback engaged", d.FallbackUsed)
	add("Fallback: ", d.FailureReason)
	return lines
}

// String returns the report with one newline-terminated line per entry.
func (r HeadlessReport) String() string {
	var b strings.Builder
	for _, l := range r.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo implements io.WriterTo.
func (r HeadlessReport) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// RunHeadlessProbe runs a full negotiation from the first attempt and
// reports the outcome. It never fails: when no attempt succeeds the error
// is carried in the FailureReason of the skeleton diagnostics.
func RunHeadlessProbe(launch *LaunchConfig, opts ...Option) HeadlessReport {
	o := newDetectOptions(launch, opts)
	sel, skeleton, err := detect(launch, 0, o)
	if err != nil {
		skeleton.FailureReason = err.Error()
		return HeadlessReport{Diagnostics: skeleton}
	}
	return HeadlessReport{Diagnostics: sel.Diagnostics}
}
