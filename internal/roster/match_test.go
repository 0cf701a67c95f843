package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var matchEntries = []Entry{
	{ID: "@alice:x", Name: "Alice", Kind: KindPerson},
	{ID: "@zoe:x", Name: "Zoë", Kind: KindPerson},
	{ID: "!ops:x", Name: "Ops", Kind: KindRoom, Topic: "incident response"},
	{ID: "!random:x", Name: "Random", Kind: KindRoom, Topic: "off topic chatter"},
}

func TestSubstringMatch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty keeps all", "", []string{"@alice:x", "@zoe:x", "!ops:x", "!random:x"}},
		{"case insensitive name", "ALICE", []string{"@alice:x"}},
		{"diacritics stripped", "zoe", []string{"@zoe:x"}},
		{"matches topic", "incident", []string{"!ops:x"}},
		{"no match", "xyzzy", []string{}},
		{"surrounding space trimmed", "  ops ", []string{"!ops:x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubstringMatch(matchEntries, tt.query)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFuzzyMatch_RanksBestFirst(t *testing.T) {
	entries := []Entry{
		{ID: "1", Name: "release-engineering"},
		{ID: "2", Name: "re"},
		{ID: "3", Name: "unrelated"},
	}
	got := FuzzyMatch(entries, "re")
	if len(got) < 2 {
		t.Fatalf("expected at least 2 fuzzy matches, got %d", len(got))
	}
	// The exact two-letter name should outrank the sparse match.
	assert.Equal(t, "2", got[0].ID)
}

func TestFuzzyMatch_EmptyQueryKeepsOrder(t *testing.T) {
	got := FuzzyMatch(matchEntries, "")
	assert.Equal(t, matchEntries, got)
}

func TestPredicateMatch(t *testing.T) {
	rooms := PredicateMatch(func(e Entry) bool { return e.Kind == KindRoom })
	got := rooms(matchEntries, "ignored")
	assert.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, KindRoom, e.Kind)
	}
}
