// Package roster holds the directory data shown by the sectioned list:
// people and rooms, how they load from disk, how they order, and how a
// search query matches them.
package roster

import "strings"

// Kind classifies a directory entry.
type Kind string

const (
	KindPerson Kind = "person"
	KindRoom   Kind = "room"
)

// Entry is one row of the directory: a contact or a room. All fields are
// scalars so entries compare with == and can live in a section container.
type Entry struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Kind      Kind   `yaml:"kind" json:"kind"`
	Topic     string `yaml:"topic,omitempty" json:"topic,omitempty"`
	Members   int    `yaml:"members,omitempty" json:"members,omitempty"`
	Unread    int    `yaml:"unread,omitempty" json:"unread,omitempty"`
	Favourite bool   `yaml:"favourite,omitempty" json:"favourite,omitempty"`
}

// DisplayName returns the entry's name, falling back to the ID for entries
// the upstream directory sent without one.
func (e Entry) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

// ByName orders entries alphabetically by display name, case-insensitive,
// with the ID breaking ties so the order is stable across refreshes.
func ByName(a, b Entry) int {
	if c := strings.Compare(strings.ToLower(a.DisplayName()), strings.ToLower(b.DisplayName())); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// ByActivity orders entries by unread count descending, then like ByName.
func ByActivity(a, b Entry) int {
	if a.Unread != b.Unread {
		if a.Unread > b.Unread {
			return -1
		}
		return 1
	}
	return ByName(a, b)
}

// Fields returns the entry as a flat map, the shape expression filters
// evaluate against.
func (e Entry) Fields() map[string]any {
	return map[string]any{
		"id":        e.ID,
		"name":      e.DisplayName(),
		"kind":      string(e.Kind),
		"topic":     e.Topic,
		"members":   e.Members,
		"unread":    e.Unread,
		"favourite": e.Favourite,
	}
}
