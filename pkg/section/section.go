// Package section provides the grouping primitive behind a sectioned list
// UI: each Section holds the full membership of one named group plus the
// subset currently matching a live filter, and derives the display title
// from the match count. The rendering layer owns a slice of sections and
// only ever reads from them; search and removal events are forwarded in.
package section

import (
	"fmt"
	"slices"
)

// ViewConfig carries the opaque view identifiers the rendering layer uses
// to pick templates for a section's header and rows. The section itself
// never interprets them.
type ViewConfig struct {
	HeaderSubView   int // Extra widget slot inside the header
	ContentView     int // Row template identifier
	HeaderViewType  int // Header template class
	ContentViewType int // Row template class
}

// Section is one named group of homogeneous list items. It keeps two
// orderings of state: the full item set, and the filtered subset matching
// the last applied search pattern. Not safe for concurrent use; a section
// is owned by the UI loop of its host screen.
type Section[T comparable] struct {
	title     string // Immutable base label
	formatted string // title, or "title (n)" when n > 0 matches

	noItemPlaceholder   string // Shown when the section is empty with no filter
	noResultPlaceholder string // Shown when a filter matched nothing

	views ViewConfig

	items    []T // Full membership
	filtered []T // Subset matching filterPattern

	cmp func(a, b T) int // Optional ordering for incoming item sets

	filterPattern string

	hiddenWhenEmpty bool
}

// New creates a section with the given base title, view identifiers,
// initial items and optional comparator (nil means unordered). The filtered
// set starts as a copy of items; no sorting happens at construction.
func New[T comparable](title string, views ViewConfig, items []T, cmp func(a, b T) int) *Section[T] {
	s := &Section[T]{
		title:    title,
		views:    views,
		items:    items,
		filtered: slices.Clone(items),
		cmp:      cmp,
	}
	s.updateTitle()
	return s
}

// SetItems replaces the full membership of the section. When a comparator
// is set, a private copy of items is sorted first; the caller's slice is
// never reordered. The filtered set and pattern are replaced with the same
// (sorted) items, as if SetFilteredItems had been called with them.
func (s *Section[T]) SetItems(items []T, filterPattern string) {
	if s.cmp != nil {
		items = slices.Clone(items)
		slices.SortStableFunc(items, s.cmp)
	}
	s.items = slices.Clone(items)
	s.SetFilteredItems(items, filterPattern)
}

// SetFilteredItems replaces the filtered subset with the given items (no
// sorting) and records the pattern that produced them.
func (s *Section[T]) SetFilteredItems(items []T, filterPattern string) {
	s.filtered = slices.Clone(items)
	s.filterPattern = filterPattern
	s.updateTitle()
}

// ResetFilter discards the active filter: the filtered set becomes a copy
// of the full membership and the pattern is cleared.
func (s *Section[T]) ResetFilter() {
	s.filtered = slices.Clone(s.items)
	s.filterPattern = ""
	s.updateTitle()
}

// RemoveItem removes item from the filtered set if present there,
// recomputes the title and reports true. Otherwise it removes item from
// the full set (when present) and reports false, leaving the filtered set
// and title untouched. The two branches deliberately do not keep both
// sets consistent; callers relying on removal rebuild the section on the
// next upstream refresh.
func (s *Section[T]) RemoveItem(item T) bool {
	if i := slices.Index(s.filtered, item); i >= 0 {
		s.filtered = slices.Delete(s.filtered, i, i+1)
		s.updateTitle()
		return true
	}
	if i := slices.Index(s.items, item); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
	return false
}

// updateTitle derives the display title from the current match count.
func (s *Section[T]) updateTitle() {
	if n := len(s.filtered); n > 0 {
		s.formatted = fmt.Sprintf("%s (%d)", s.title, n)
	} else {
		s.formatted = s.title
	}
}

// Title returns the display title, including the match count suffix when
// the filtered set is non-empty.
func (s *Section[T]) Title() string { return s.formatted }

// Items returns the full membership of the section.
func (s *Section[T]) Items() []T { return s.items }

// FilteredItems returns the subset matching the active filter, or the full
// membership when no filter is active.
func (s *Section[T]) FilteredItems() []T { return s.filtered }

// Len returns the number of items matching the active filter.
func (s *Section[T]) Len() int { return len(s.filtered) }

// EmptyPlaceholder returns the text to show in place of rows: the
// no-result text while a filter pattern is active, the no-item text
// otherwise. Selection depends only on the pattern, not on whether the
// section is actually empty.
func (s *Section[T]) EmptyPlaceholder() string {
	if s.filterPattern != "" {
		return s.noResultPlaceholder
	}
	return s.noItemPlaceholder
}

// SetPlaceholder sets a single text for both the empty and the no-result
// states.
func (s *Section[T]) SetPlaceholder(text string) {
	s.noItemPlaceholder = text
	s.noResultPlaceholder = text
}

// SetPlaceholders sets distinct texts for the empty state and the
// filtered-with-no-result state.
func (s *Section[T]) SetPlaceholders(noItem, noResult string) {
	s.noItemPlaceholder = noItem
	s.noResultPlaceholder = noResult
}

// Views returns the opaque view identifiers for the rendering layer.
func (s *Section[T]) Views() ViewConfig { return s.views }

// SetHiddenWhenEmpty controls whether the rendering layer should suppress
// the section entirely when it has no matching items.
func (s *Section[T]) SetHiddenWhenEmpty(hidden bool) { s.hiddenWhenEmpty = hidden }

// HiddenWhenEmpty reports whether the section should be suppressed when it
// has no matching items.
func (s *Section[T]) HiddenWhenEmpty() bool { return s.hiddenWhenEmpty }
