// Package settings handles MicroSerial user settings persistence.
// Settings are stored as TOML in $MICROSERIAL_CONFIG_DIR/settings.toml, or
// in the XDG config directory when that variable is unset.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// ErrNoConfigDir is returned when no configuration directory can be found.
var ErrNoConfigDir = errors.New("settings: config directory unavailable")

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "MICROSERIAL_CONFIG_DIR"

const (
	appDir   = "microserial"
	fileName = "settings.toml"
)

// Console view modes.
const (
	ConsoleText  = "text"
	ConsoleHex   = "hex"
	ConsoleMixed = "mixed"
)

// Themes.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Settings holds persisted user preferences.
type Settings struct {
	// ForceSoftware makes every launch behave as if --force-software
	// was passed.
	ForceSoftware  bool   `toml:"force_software"`
	ShowTimestamps bool   `toml:"show_timestamps"`
	ConsoleView    string `toml:"console_view"`
	Theme          string `toml:"theme"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		ShowTimestamps: true,
		ConsoleView:    ConsoleMixed,
		Theme:          ThemeSystem,
	}
}

// Path returns the default settings file path.
func Path() (string, error) {
	if dir, ok := os.LookupEnv(EnvConfigDir); ok && strings.TrimSpace(dir) != "" {
		return filepath.Join(dir, fileName), nil
	}
	if xdg.ConfigHome == "" {
		return "", ErrNoConfigDir
	}
	return filepath.Join(xdg.ConfigHome, appDir, fileName), nil
}

// Load reads settings from path. An empty path means Path(). A missing
// file yields Default(); a malformed file is an error.
func Load(path string) (Settings, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read settings: %w", err)
	}

	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", resolved, err)
	}
	s.normalize()
	return s, nil
}

// Save writes settings to path, creating directories as needed. An empty
// path means Path().
func Save(path string, s Settings) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// normalize replaces unknown enum values with defaults.
func (s *Settings) normalize() {
	def := Default()
	if !slices.Contains([]string{ConsoleText, ConsoleHex, ConsoleMixed}, s.ConsoleView) {
		s.ConsoleView = def.ConsoleView
	}
	if !slices.Contains([]string{ThemeSystem, ThemeLight, ThemeDark}, s.Theme) {
		s.Theme = def.Theme
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return Path()
	}
	return filepath.Abs(strings.TrimSpace(path))
}
