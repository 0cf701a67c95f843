package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/rosterview/internal/roster"
	"github.com/oakwood-commons/rosterview/pkg/section"
)

// View identifiers referenced by section configs. The section containers
// carry these as opaque integers; only the registries below give them
// meaning.
const (
	HeaderViewPlain  = 1 // Standard header bar
	HeaderViewAccent = 2 // Accented header (favourites)

	HeaderSubViewNone   = 0
	HeaderSubViewUnread = 1 // Unread total badge in the header

	ContentViewCompact  = 1 // Single-line rows
	ContentViewDetailed = 2 // Rows with a topic line

	ContentPerson = 1 // Person glyph and naming
	ContentRoom   = 2 // Room glyph and member count
)

type rosterSection = section.Section[roster.Entry]

type headerRenderer func(th Theme, sec *rosterSection, width int, noColor bool) string

type rowRenderer func(th Theme, e roster.Entry, views section.ViewConfig, selected bool, width int, noColor bool) string

// headerRenderers is keyed on a section's HeaderViewType. Unknown types
// fall back to the plain header.
var headerRenderers = map[int]headerRenderer{
	HeaderViewPlain:  renderPlainHeader,
	HeaderViewAccent: renderAccentHeader,
}

// rowRenderers is keyed on a section's ContentViewType.
var rowRenderers = map[int]rowRenderer{
	ContentPerson: renderPersonRow,
	ContentRoom:   renderRoomRow,
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// unreadTotal sums unread counts over a section's visible rows, for the
// header badge sub-view.
func unreadTotal(sec *rosterSection) int {
	n := 0
	for _, e := range sec.FilteredItems() {
		n += e.Unread
	}
	return n
}

func headerBadge(th Theme, sec *rosterSection, noColor bool) string {
	if sec.Views().HeaderSubView != HeaderSubViewUnread {
		return ""
	}
	total := unreadTotal(sec)
	if total == 0 {
		return ""
	}
	label := fmt.Sprintf(" %d unread ", total)
	if noColor {
		return "[" + strings.TrimSpace(label) + "]"
	}
	return lipgloss.NewStyle().Foreground(th.BadgeFG).Background(th.BadgeBG).Render(label)
}

func renderPlainHeader(th Theme, sec *rosterSection, width int, noColor bool) string {
	title := truncate(sec.Title(), width-2)
	badge := headerBadge(th, sec, noColor)
	if noColor {
		line := "── " + title
		if badge != "" {
			line += " " + badge
		}
		return line
	}
	st := lipgloss.NewStyle().Bold(true).Foreground(th.HeaderFG).Background(th.HeaderBG).Padding(0, 1)
	line := st.Render(title)
	if badge != "" {
		line += " " + badge
	}
	return line
}

func renderAccentHeader(th Theme, sec *rosterSection, width int, noColor bool) string {
	title := truncate(sec.Title(), width-2)
	badge := headerBadge(th, sec, noColor)
	if noColor {
		line := "★─ " + title
		if badge != "" {
			line += " " + badge
		}
		return line
	}
	st := lipgloss.NewStyle().Bold(true).Foreground(th.AccentFG).Background(th.HeaderBG).Padding(0, 1)
	line := st.Render("★ " + title)
	if badge != "" {
		line += " " + badge
	}
	return line
}

func renderHeader(th Theme, sec *rosterSection, width int, noColor bool) string {
	r, ok := headerRenderers[sec.Views().HeaderViewType]
	if !ok {
		r = renderPlainHeader
	}
	return r(th, sec, width, noColor)
}

func rowMarker(th Theme, selected, noColor bool) string {
	if !selected {
		return "  "
	}
	if noColor {
		return "> "
	}
	return lipgloss.NewStyle().Foreground(th.SelectedBG).Render("│") + " "
}

func unreadSuffix(th Theme, e roster.Entry, noColor bool) string {
	if e.Unread == 0 {
		return ""
	}
	if noColor {
		return fmt.Sprintf(" (%d)", e.Unread)
	}
	return " " + lipgloss.NewStyle().Foreground(th.BadgeFG).Background(th.BadgeBG).Render(fmt.Sprintf(" %d ", e.Unread))
}

func styledName(th Theme, name string, selected, noColor bool) string {
	if noColor {
		return name
	}
	st := lipgloss.NewStyle().Foreground(th.NameFG)
	if selected {
		st = lipgloss.NewStyle().Foreground(th.SelectedFG).Background(th.SelectedBG)
	}
	return st.Render(name)
}

func renderPersonRow(th Theme, e roster.Entry, _ section.ViewConfig, selected bool, width int, noColor bool) string {
	name := truncate("@ "+e.DisplayName(), width-4)
	return rowMarker(th, selected, noColor) + styledName(th, name, selected, noColor) + unreadSuffix(th, e, noColor)
}

func renderRoomRow(th Theme, e roster.Entry, views section.ViewConfig, selected bool, width int, noColor bool) string {
	name := truncate("# "+e.DisplayName(), width-4)
	line := rowMarker(th, selected, noColor) + styledName(th, name, selected, noColor) + unreadSuffix(th, e, noColor)
	if views.ContentView != ContentViewDetailed {
		return line
	}
	detail := fmt.Sprintf("%d members", e.Members)
	if e.Topic != "" {
		detail += " · " + e.Topic
	}
	detail = truncate(detail, width-6)
	if noColor {
		return line + "\n    " + detail
	}
	return line + "\n    " + lipgloss.NewStyle().Foreground(th.DetailFG).Render(detail)
}

func renderRow(th Theme, sec *rosterSection, e roster.Entry, selected bool, width int, noColor bool) string {
	r, ok := rowRenderers[sec.Views().ContentViewType]
	if !ok {
		r = renderPersonRow
	}
	return r(th, e, sec.Views(), selected, width, noColor)
}

func renderPlaceholder(th Theme, sec *rosterSection, width int, noColor bool) string {
	text := sec.EmptyPlaceholder()
	if text == "" {
		text = "(empty)"
	}
	text = "  " + truncate(text, width-4)
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Italic(true).Foreground(th.PlaceholderFG).Render(text)
}

// renderSection draws one section: header, then rows or the placeholder.
// selected is the index of the selected row within this section, or -1.
func renderSection(th Theme, sec *rosterSection, selected, width int, noColor bool) string {
	var b strings.Builder
	b.WriteString(renderHeader(th, sec, width, noColor))
	b.WriteString("\n")
	rows := sec.FilteredItems()
	if len(rows) == 0 {
		b.WriteString(renderPlaceholder(th, sec, width, noColor))
		b.WriteString("\n")
		return b.String()
	}
	for i, e := range rows {
		b.WriteString(renderRow(th, sec, e, i == selected, width, noColor))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStatic draws the whole section list as plain output for
// non-interactive runs. No cursor is drawn.
func RenderStatic(sl *SectionList, width int, noColor bool) string {
	th := CurrentTheme()
	if width <= 0 {
		width = 80
	}
	parts := make([]string, 0, len(sl.Visible()))
	for _, sec := range sl.Visible() {
		parts = append(parts, renderSection(th, sec, -1, width, noColor))
	}
	return strings.Join(parts, "\n")
}
