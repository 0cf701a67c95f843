package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/rosterview/internal/filter"
)

// ExprPrefix switches the search input into expression mode: the rest of
// the query is compiled as a CEL filter and applied on Enter.
const ExprPrefix = "%"

// rowRef locates one visible row: the section that owns it and its index
// within the section's filtered items.
type rowRef struct {
	sec *rosterSection
	idx int
}

// Model is the Bubble Tea model for the sectioned roster screen.
type Model struct {
	sections  *SectionList
	input     textinput.Model
	evaluator *filter.Evaluator
	log       *logr.Logger

	width   int
	height  int
	cursor  int // Index into the flattened visible rows
	noColor bool

	lastQuery string
	exprError string // Last expression compile error, shown in the footer

	quitting bool
}

// NewModel builds the roster screen around an already-built section list.
func NewModel(sections *SectionList, evaluator *filter.Evaluator, log *logr.Logger, noColor bool) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search, or " + ExprPrefix + " for an expression (e.g. " + ExprPrefix + " _.members > 50)"
	ti.CharLimit = 200
	ti.SetWidth(80)
	ti.Prompt = "/ "
	ti.Focus()

	return &Model{
		sections:  sections,
		input:     ti,
		evaluator: evaluator,
		log:       log,
		width:     80,
		height:    24,
		noColor:   noColor,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// visibleRows flattens the visible sections into cursor-addressable rows.
func (m *Model) visibleRows() []rowRef {
	var rows []rowRef
	for _, sec := range m.sections.Visible() {
		for i := range sec.FilteredItems() {
			rows = append(rows, rowRef{sec: sec, idx: i})
		}
	}
	return rows
}

func (m *Model) clampCursor() {
	if n := len(m.visibleRows()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// applyQuery routes the input text to the right matcher. Plain text
// filters live on every keystroke; expression queries wait for Enter.
func (m *Model) applyQuery(query string, committed bool) {
	m.exprError = ""
	if strings.HasPrefix(query, ExprPrefix) {
		if !committed {
			return // Expressions apply on Enter only
		}
		expr := strings.TrimSpace(strings.TrimPrefix(query, ExprPrefix))
		if expr == "" {
			m.sections.ResetFilter()
			m.clampCursor()
			return
		}
		matcher, err := m.evaluator.Matcher(expr)
		if err != nil {
			m.exprError = err.Error()
			m.log.V(1).Info("expression rejected", "expr", expr, "error", err.Error())
			return
		}
		m.sections.ApplyMatcher(matcher, query)
		m.clampCursor()
		return
	}
	m.sections.ApplyFilter(query)
	m.clampCursor()
}

func (m *Model) removeSelected() {
	rows := m.visibleRows()
	if m.cursor >= len(rows) {
		return
	}
	ref := rows[m.cursor]
	e := ref.sec.FilteredItems()[ref.idx]
	removed := m.sections.Remove(e)
	m.log.V(1).Info("entry removed", "id", e.ID, "visible", removed)
	m.clampCursor()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.input.Value() != "" {
				m.input.SetValue("")
				m.lastQuery = ""
				m.sections.ResetFilter()
				m.exprError = ""
				m.clampCursor()
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.visibleRows())-1 {
				m.cursor++
			}
			return m, nil
		case "ctrl+d":
			m.removeSelected()
			return m, nil
		case "enter":
			m.applyQuery(m.input.Value(), true)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.lastQuery {
		m.lastQuery = q
		m.applyQuery(q, false)
	}
	return m, cmd
}

// footer summarizes the visible rows and surfaces expression errors, e.g.
// "7 of 31 · 2 sections".
func (m *Model) footer() string {
	if m.exprError != "" {
		text := truncate("expression error: "+m.exprError, m.width-2)
		if m.noColor {
			return text
		}
		return lipgloss.NewStyle().Foreground(CurrentTheme().BadgeBG).Render(text)
	}
	total := 0
	for _, sec := range m.sections.Sections() {
		total += len(sec.Items())
	}
	text := fmt.Sprintf("%d of %d · %d sections", m.sections.TotalVisible(), total, len(m.sections.Visible()))
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(CurrentTheme().DetailFG).Render(text)
}

func (m *Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	th := CurrentTheme()

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	// Map the global cursor onto per-section selected indices.
	offset := 0
	for _, sec := range m.sections.Visible() {
		selected := -1
		if m.cursor >= offset && m.cursor < offset+sec.Len() {
			selected = m.cursor - offset
		}
		offset += sec.Len()
		b.WriteString(renderSection(th, sec, selected, m.width, m.noColor))
		b.WriteString("\n")
	}

	b.WriteString(m.footer())

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}
