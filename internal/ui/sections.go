// Package ui renders the sectioned roster: a list of named groups (people,
// rooms, favourites) with live search, driven by the section containers in
// pkg/section. It provides both an interactive Bubble Tea model and a
// static renderer for piped output.
package ui

import (
	"github.com/oakwood-commons/rosterview/internal/roster"
	"github.com/oakwood-commons/rosterview/pkg/section"
)

// SectionList owns the ordered sections of one roster screen and routes
// search and removal events into them.
type SectionList struct {
	sections []*section.Section[roster.Entry]
	matcher  roster.Matcher
	pattern  string
}

// memberOf reports whether an entry belongs to the configured section.
func memberOf(cfg SectionConfig, e roster.Entry) bool {
	if cfg.Kind != "" && string(e.Kind) != cfg.Kind {
		return false
	}
	if cfg.Favourite != nil && e.Favourite != *cfg.Favourite {
		return false
	}
	return true
}

// BuildSections groups entries into sections per the configuration. Each
// section sorts its members with cmp; matcher drives later ApplyFilter
// calls.
func BuildSections(cfg AppConfig, entries []roster.Entry, cmp func(a, b roster.Entry) int, matcher roster.Matcher) *SectionList {
	sl := &SectionList{
		sections: make([]*section.Section[roster.Entry], 0, len(cfg.Sections)),
		matcher:  matcher,
	}
	for _, sc := range cfg.Sections {
		members := make([]roster.Entry, 0, len(entries))
		for _, e := range entries {
			if memberOf(sc, e) {
				members = append(members, e)
			}
		}
		views := section.ViewConfig{
			HeaderSubView:   sc.HeaderSubView,
			ContentView:     sc.ContentView,
			HeaderViewType:  sc.HeaderViewType,
			ContentViewType: sc.ContentViewType,
		}
		sec := section.New(sc.Title, views, nil, cmp)
		sec.SetItems(members, "")
		sec.SetPlaceholders(sc.NoItemText, sc.NoResultText)
		sec.SetHiddenWhenEmpty(sc.HiddenWhenEmpty)
		sl.sections = append(sl.sections, sec)
	}
	return sl
}

// ApplyFilter narrows every section to the entries matching pattern using
// the list's matcher. An empty pattern resets all sections.
func (sl *SectionList) ApplyFilter(pattern string) {
	sl.applyWith(sl.matcher, pattern)
}

// ApplyMatcher narrows every section with an explicit matcher, e.g. a
// compiled expression filter. The pattern is stored on each section so the
// no-result placeholder is selected while the filter is active.
func (sl *SectionList) ApplyMatcher(m roster.Matcher, pattern string) {
	sl.applyWith(m, pattern)
}

func (sl *SectionList) applyWith(m roster.Matcher, pattern string) {
	sl.pattern = pattern
	for _, sec := range sl.sections {
		if pattern == "" {
			sec.ResetFilter()
			continue
		}
		sec.SetFilteredItems(m(sec.Items(), pattern), pattern)
	}
}

// ResetFilter clears the active filter on every section.
func (sl *SectionList) ResetFilter() {
	sl.pattern = ""
	for _, sec := range sl.sections {
		sec.ResetFilter()
	}
}

// Pattern returns the active filter pattern.
func (sl *SectionList) Pattern() string { return sl.pattern }

// Sections returns all sections in display order.
func (sl *SectionList) Sections() []*section.Section[roster.Entry] { return sl.sections }

// Visible returns the sections the renderer should draw: everything except
// empty sections flagged hidden-when-empty.
func (sl *SectionList) Visible() []*section.Section[roster.Entry] {
	visible := make([]*section.Section[roster.Entry], 0, len(sl.sections))
	for _, sec := range sl.sections {
		if sec.HiddenWhenEmpty() && sec.Len() == 0 {
			continue
		}
		visible = append(visible, sec)
	}
	return visible
}

// Remove forwards an entry removal to the first section whose filtered
// view contains it. It reports whether any section dropped the entry from
// its visible rows.
func (sl *SectionList) Remove(e roster.Entry) bool {
	for _, sec := range sl.sections {
		if sec.RemoveItem(e) {
			return true
		}
	}
	return false
}

// TotalVisible returns the number of rows across the visible sections.
func (sl *SectionList) TotalVisible() int {
	n := 0
	for _, sec := range sl.Visible() {
		n += sec.Len()
	}
	return n
}
