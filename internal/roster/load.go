package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a roster: a flat list of entries. YAML is
// the primary format; JSON parses through the same path since yaml.v3
// accepts it, but a leading '[' or '{' is decoded as JSON directly for
// exact number handling.
type File struct {
	Entries []Entry `yaml:"entries" json:"entries"`
}

// Parse decodes roster data. Both the wrapped form ({entries: [...]}) and a
// bare top-level list of entries are accepted.
func Parse(data []byte) ([]Entry, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("empty roster input")
	}

	if strings.HasPrefix(trimmed, "[") {
		var entries []Entry
		if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
			return nil, fmt.Errorf("decode roster list: %w", err)
		}
		return entries, nil
	}
	if strings.HasPrefix(trimmed, "{") {
		var f File
		if err := json.Unmarshal([]byte(trimmed), &f); err != nil {
			return nil, fmt.Errorf("decode roster: %w", err)
		}
		return f.Entries, nil
	}

	// YAML: try the wrapped form first, then a bare list.
	var f File
	if err := yaml.Unmarshal(data, &f); err == nil && f.Entries != nil {
		return f.Entries, nil
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode roster YAML: %w", err)
	}
	return entries, nil
}

// LoadFile reads and parses a roster file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}
