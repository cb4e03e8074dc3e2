// Copyright 2026 The MicroSerial Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderer

// Plan labels.
const (
	LabelSystemDefault  = "system default"
	LabelVulkan         = "vulkan"
	LabelOpenGLSoftware = "opengl (software)"
	LabelMetal          = "metal"
	LabelSoftware       = "software"
)

// Plan returns the ordered fallback plan for goos.
//
// The order runs from most capable to most conservative. Metal is only
// tried on Apple platforms. The software attempt is always last.
func Plan(goos string) []Attempt {
	plan := []Attempt{
		&HardwareAttempt{Name: LabelSystemDefault},
		&HardwareAttempt{Name: LabelVulkan, Family: FamilyVulkan},
		&HardwareAttempt{Name: LabelOpenGLSoftware, Family: FamilyOpenGL, EnforceSoftware: true},
	}
	if isApple(goos) {
		plan = append(plan, &HardwareAttempt{Name: LabelMetal, Family: FamilyMetal})
	}
	return append(plan, &SoftwareAttempt{Name: LabelSoftware})
}

func isApple(goos string) bool {
	return goos == "darwin" || goos == "ios"
}
