package roster

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName_FallsBackToID(t *testing.T) {
	assert.Equal(t, "Alice", Entry{ID: "@alice:example.org", Name: "Alice"}.DisplayName())
	assert.Equal(t, "@bob:example.org", Entry{ID: "@bob:example.org"}.DisplayName())
}

func TestByName_CaseInsensitiveWithIDTieBreak(t *testing.T) {
	entries := []Entry{
		{ID: "3", Name: "carol"},
		{ID: "2", Name: "Alice"},
		{ID: "1", Name: "alice"},
		{ID: "4", Name: "Bob"},
	}
	slices.SortStableFunc(entries, ByName)

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"1", "2", "4", "3"}, ids)
}

func TestByActivity_UnreadDescThenName(t *testing.T) {
	entries := []Entry{
		{ID: "a", Name: "quiet"},
		{ID: "b", Name: "busy", Unread: 12},
		{ID: "c", Name: "active", Unread: 3},
		{ID: "d", Name: "calm"},
	}
	slices.SortStableFunc(entries, ByActivity)

	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "c", entries[1].ID)
	// Zero-unread entries fall back to alphabetical order.
	assert.Equal(t, "d", entries[2].ID)
	assert.Equal(t, "a", entries[3].ID)
}

func TestFields_FlatMapShape(t *testing.T) {
	e := Entry{ID: "!ops:example.org", Name: "Ops", Kind: KindRoom, Members: 42, Unread: 7}
	f := e.Fields()

	assert.Equal(t, "Ops", f["name"])
	assert.Equal(t, "room", f["kind"])
	assert.Equal(t, 42, f["members"])
	assert.Equal(t, false, f["favourite"])
}
