package roster

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Matcher narrows a list of entries to those matching a query.
type Matcher func(entries []Entry, query string) []Entry

// stripMarks removes diacritics so "Zoë" matches a plain "zoe" query.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalize(in string) string {
	out, _, err := transform.String(stripMarks, in)
	if err != nil {
		return in
	}
	return out
}

func searchText(e Entry) string {
	return normalize(strings.ToLower(e.DisplayName() + " " + e.Topic))
}

// SubstringMatch keeps entries whose name or topic contains the query,
// ignoring case and diacritics. An empty query keeps everything.
func SubstringMatch(entries []Entry, query string) []Entry {
	query = normalize(strings.ToLower(strings.TrimSpace(query)))
	if query == "" {
		return entries
	}
	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(searchText(e), query) {
			matched = append(matched, e)
		}
	}
	return matched
}

// FuzzyMatch keeps entries whose name fuzzy-matches the query, best match
// first. An empty query keeps everything in the original order.
func FuzzyMatch(entries []Entry, query string) []Entry {
	query = normalize(strings.TrimSpace(query))
	if query == "" {
		return entries
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = normalize(e.DisplayName())
	}
	matches := fuzzy.Find(query, names)
	matched := make([]Entry, 0, len(matches))
	for _, m := range matches {
		matched = append(matched, entries[m.Index])
	}
	return matched
}

// PredicateMatch lifts an entry predicate into a Matcher, keeping input
// order. Used for expression filters where the query has already been
// compiled.
func PredicateMatch(pred func(Entry) bool) Matcher {
	return func(entries []Entry, _ string) []Entry {
		matched := make([]Entry, 0, len(entries))
		for _, e := range entries {
			if pred(e) {
				matched = append(matched, e)
			}
		}
		return matched
	}
}
