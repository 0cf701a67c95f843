package ui

import (
	"image/color"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the colors used across the roster list.
type Theme struct {
	HeaderFG      color.Color // Section header text
	HeaderBG      color.Color // Section header background
	AccentFG      color.Color // Accented header text (favourites)
	NameFG        color.Color // Entry name
	DetailFG      color.Color // Topic / member counts
	SelectedFG    color.Color // Selected row text
	SelectedBG    color.Color // Selected row background
	PlaceholderFG color.Color // Empty/no-result placeholder text
	BadgeFG       color.Color // Unread badge text
	BadgeBG       color.Color // Unread badge background
}

// ThemeConfig is the YAML shape of a theme palette; empty fields fall back
// to the built-in palette.
type ThemeConfig struct {
	HeaderFG      string `yaml:"header_fg,omitempty"`
	HeaderBG      string `yaml:"header_bg,omitempty"`
	AccentFG      string `yaml:"accent_fg,omitempty"`
	NameFG        string `yaml:"name_fg,omitempty"`
	DetailFG      string `yaml:"detail_fg,omitempty"`
	SelectedFG    string `yaml:"selected_fg,omitempty"`
	SelectedBG    string `yaml:"selected_bg,omitempty"`
	PlaceholderFG string `yaml:"placeholder_fg,omitempty"`
	BadgeFG       string `yaml:"badge_fg,omitempty"`
	BadgeBG       string `yaml:"badge_bg,omitempty"`
}

var (
	themeMu      sync.RWMutex
	currentTheme = fallbackTheme()
)

// fallbackTheme is the hard-coded palette used when no configuration is
// available at all.
func fallbackTheme() Theme {
	return Theme{
		HeaderFG:      lipgloss.Color("#c6d0f5"),
		HeaderBG:      lipgloss.Color("#414559"),
		AccentFG:      lipgloss.Color("#e5c890"),
		NameFG:        lipgloss.Color("#8caaee"),
		DetailFG:      lipgloss.Color("#949cbb"),
		SelectedFG:    lipgloss.Color("#303446"),
		SelectedBG:    lipgloss.Color("#8caaee"),
		PlaceholderFG: lipgloss.Color("#737994"),
		BadgeFG:       lipgloss.Color("#303446"),
		BadgeBG:       lipgloss.Color("#e78284"),
	}
}

// ThemeFromConfig builds a Theme from a palette config, filling unset
// fields from the fallback palette.
func ThemeFromConfig(cfg ThemeConfig) Theme {
	th := fallbackTheme()
	set := func(dst *color.Color, hex string) {
		if strings.TrimSpace(hex) != "" {
			*dst = lipgloss.Color(hex)
		}
	}
	set(&th.HeaderFG, cfg.HeaderFG)
	set(&th.HeaderBG, cfg.HeaderBG)
	set(&th.AccentFG, cfg.AccentFG)
	set(&th.NameFG, cfg.NameFG)
	set(&th.DetailFG, cfg.DetailFG)
	set(&th.SelectedFG, cfg.SelectedFG)
	set(&th.SelectedBG, cfg.SelectedBG)
	set(&th.PlaceholderFG, cfg.PlaceholderFG)
	set(&th.BadgeFG, cfg.BadgeFG)
	set(&th.BadgeBG, cfg.BadgeBG)
	return th
}

// SelectTheme resolves the named palette from the config, falling back to
// the config's default selection and finally to the built-in palette.
func SelectTheme(cfg AppConfig, name string) Theme {
	if name == "" {
		name = cfg.Theme.Default
	}
	if th, ok := cfg.Themes[name]; ok {
		return ThemeFromConfig(th)
	}
	if th, ok := cfg.Themes[cfg.Theme.Default]; ok {
		return ThemeFromConfig(th)
	}
	return fallbackTheme()
}

// SetCurrentTheme installs the process-wide theme used by render helpers.
func SetCurrentTheme(th Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = th
}

// CurrentTheme returns the installed theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}
