package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// skinFile is the YAML shape of a user skin: a flat map of palette color
// names to ANSI-256 indexes or hex strings. Missing keys keep the default.
type skinFile struct {
	Colors map[string]string `yaml:"colors"`
}

// Initialize activates the named skin. Builtin names (default, light, mono)
// resolve directly; anything else loads <configDir>/skins/<name>.yml on top
// of the default palette. On error the active palette is left unchanged so
// the caller can warn and continue.
func Initialize(name, configDir string) error {
	if name == "" {
		name = "default"
	}
	if p, ok := builtins()[name]; ok {
		current = p
		return nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading skin %q: %w", name, err)
	}

	var sf skinFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parsing skin %q: %w", name, err)
	}

	p := builtins()["default"]
	slots := map[string]*lipgloss.Color{
		"accent":      &p.Accent,
		"accent-text": &p.AccentText,
		"text":        &p.Text,
		"muted":       &p.Muted,
		"disabled":    &p.Disabled,
		"border":      &p.Border,
		"focus":       &p.Focus,
		"error":       &p.Error,
		"today":       &p.Today,
	}
	for key, value := range sf.Colors {
		slot, ok := slots[key]
		if !ok {
			return fmt.Errorf("skin %q: unknown color %q", name, key)
		}
		*slot = lipgloss.Color(value)
	}

	current = p
	return nil
}
