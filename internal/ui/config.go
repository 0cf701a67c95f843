package ui

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigYAML []byte

// DefaultConfigYAML returns the embedded default configuration bytes.
func DefaultConfigYAML() []byte { return defaultConfigYAML }

// SectionConfig declares one section of the roster list: which entries it
// collects, its placeholders, and the view identifiers handed through to
// the renderer.
type SectionConfig struct {
	Title     string `yaml:"title"`
	Kind      string `yaml:"kind,omitempty"`      // person|room, empty matches both
	Favourite *bool  `yaml:"favourite,omitempty"` // nil matches regardless

	NoItemText   string `yaml:"no_item_text,omitempty"`
	NoResultText string `yaml:"no_result_text,omitempty"`

	HiddenWhenEmpty bool `yaml:"hidden_when_empty,omitempty"`

	// View identifiers, stored opaquely on the section and interpreted
	// only by the render registry (see section_view.go).
	HeaderViewType  int `yaml:"header_view_type,omitempty"`
	HeaderSubView   int `yaml:"header_sub_view,omitempty"`
	ContentView     int `yaml:"content_view,omitempty"`
	ContentViewType int `yaml:"content_view_type,omitempty"`
}

// DefaultsConfig holds list-wide behavior knobs.
type DefaultsConfig struct {
	Sort    string `yaml:"sort,omitempty"`    // name|activity
	Matcher string `yaml:"matcher,omitempty"` // substring|fuzzy
}

// AppConfig is the merged application configuration: section layout, list
// defaults and theme palettes.
type AppConfig struct {
	Sections []SectionConfig        `yaml:"sections"`
	Defaults DefaultsConfig         `yaml:"defaults,omitempty"`
	Theme    ThemeSelection         `yaml:"theme,omitempty"`
	Themes   map[string]ThemeConfig `yaml:"themes,omitempty"`
}

// ThemeSelection names the active theme preset.
type ThemeSelection struct {
	Default string `yaml:"default,omitempty"`
}

// ParseConfig decodes an AppConfig from YAML.
func ParseConfig(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// EmbeddedDefaultConfig parses the embedded default configuration.
func EmbeddedDefaultConfig() (AppConfig, error) {
	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		return cfg, fmt.Errorf("embedded default config: %w", err)
	}
	if len(cfg.Sections) == 0 {
		return cfg, fmt.Errorf("embedded default config has no sections")
	}
	return cfg, nil
}

// MergeConfig overlays a user config on top of base. Sections replace
// wholesale when the user defines any; defaults and theme selection merge
// per field; user theme palettes are added to (or override) the base set.
func MergeConfig(base, user AppConfig) AppConfig {
	merged := base
	if len(user.Sections) > 0 {
		merged.Sections = user.Sections
	}
	if user.Defaults.Sort != "" {
		merged.Defaults.Sort = user.Defaults.Sort
	}
	if user.Defaults.Matcher != "" {
		merged.Defaults.Matcher = user.Defaults.Matcher
	}
	if user.Theme.Default != "" {
		merged.Theme.Default = user.Theme.Default
	}
	if len(user.Themes) > 0 {
		if merged.Themes == nil {
			merged.Themes = make(map[string]ThemeConfig, len(user.Themes))
		} else {
			themes := make(map[string]ThemeConfig, len(merged.Themes)+len(user.Themes))
			for name, th := range merged.Themes {
				themes[name] = th
			}
			merged.Themes = themes
		}
		for name, th := range user.Themes {
			merged.Themes[name] = th
		}
	}
	return merged
}
