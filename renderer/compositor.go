package renderer

// Compositor names.
const (
	CompositorWayland = "Wayland"
	CompositorX11     = "X11"
)

// DetectCompositor reports the display server from the environment.
// Wayland takes precedence over X11. It returns "" when neither is set.
func DetectCompositor(env Environment) string {
	if _, ok := env.Lookup(EnvWaylandDisplay); ok {
		return CompositorWayland
	}
	if _, ok := env.Lookup(EnvX11Display); ok {
		return CompositorX11
	}
	return ""
}
