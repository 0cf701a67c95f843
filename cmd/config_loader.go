package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oakwood-commons/rosterview/internal/ui"
	"github.com/oakwood-commons/rosterview/pkg/settings"
)

// resolveConfigPath returns the explicit path if set, otherwise the XDG
// candidate ($XDG_CONFIG_HOME/rosterview/config.yaml, or
// ~/.config/rosterview/config.yaml) when it exists.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidate := ""
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// loadMergedConfig layers the user config (explicit flag or XDG location)
// on top of the embedded defaults. A missing explicit file is an error; a
// missing XDG file silently means defaults only.
func loadMergedConfig(explicit string) (ui.AppConfig, error) {
	base, err := ui.EmbeddedDefaultConfig()
	if err != nil {
		return ui.AppConfig{}, err
	}

	path := resolveConfigPath(explicit)
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ui.AppConfig{}, fmt.Errorf("read config: %w", err)
	}
	user, err := ui.ParseConfig(data)
	if err != nil {
		return ui.AppConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return ui.MergeConfig(base, user), nil
}
