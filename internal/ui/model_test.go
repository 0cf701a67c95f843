package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/rosterview/internal/filter"
	"github.com/oakwood-commons/rosterview/pkg/logger"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	ev, err := filter.NewEvaluator()
	require.NoError(t, err)
	return NewModel(buildTestSections(t), ev, logger.GetGlobalLogger(), true)
}

func press(m *Model, msgs ...tea.Msg) *Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(*Model)
	}
	return m
}

func typeText(m *Model, text string) *Model {
	for _, r := range text {
		m = press(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

func viewString(m *Model) string {
	v := m.View()
	return fmt.Sprint(v.Content)
}

func TestModel_TypingFiltersLive(t *testing.T) {
	m := newTestModel(t)
	m = typeText(m, "ali")

	out := viewString(m)
	assert.Contains(t, out, "People (1)")
	assert.Contains(t, out, "@ Alice")
	assert.NotContains(t, out, "Carol")
	assert.Contains(t, out, "1 of 5")
}

func TestModel_EscClearsFilterThenQuits(t *testing.T) {
	m := newTestModel(t)
	m = typeText(m, "ali")
	require.Equal(t, 1, m.sections.TotalVisible())

	m = press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, 5, m.sections.TotalVisible())
	assert.False(t, m.quitting)

	m = press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.True(t, m.quitting)
}

func TestModel_CursorNavigationAndBounds(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, 0, m.cursor)

	m = press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stays at the first row")

	for range 10 {
		m = press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 4, m.cursor, "cursor stops at the last visible row")
}

func TestModel_ExpressionAppliesOnEnter(t *testing.T) {
	m := newTestModel(t)
	m = typeText(m, "% _.members > 50")

	// Not applied yet: expressions wait for Enter.
	assert.Equal(t, 5, m.sections.TotalVisible())

	m = press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 1, m.sections.TotalVisible())
	assert.Contains(t, viewString(m), "# Random")
}

func TestModel_ExpressionErrorShownInFooter(t *testing.T) {
	m := newTestModel(t)
	m = typeText(m, "% _.members >")
	m = press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.NotEmpty(t, m.exprError)
	assert.Contains(t, viewString(m), "expression error")
	// The list itself is left as it was.
	assert.Equal(t, 5, m.sections.TotalVisible())
}

func TestModel_RemoveSelected(t *testing.T) {
	m := newTestModel(t)

	// First visible row is Bob in Favourites.
	out := viewString(m)
	require.Contains(t, out, "@ Bob")

	m = press(m, tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl})
	out = viewString(m)
	assert.NotContains(t, out, "@ Bob")
	assert.Equal(t, 4, m.sections.TotalVisible())
}

func TestModel_WindowSizeAdjustsWidth(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, m.width)
	assert.Equal(t, 20, m.height)
}

func TestModel_ViewListsSectionsInOrder(t *testing.T) {
	m := newTestModel(t)
	out := viewString(m)

	fav := strings.Index(out, "Favourites (1)")
	people := strings.Index(out, "People (2)")
	rooms := strings.Index(out, "Rooms (2)")
	require.True(t, fav >= 0 && people >= 0 && rooms >= 0, "all sections rendered: %s", out)
	assert.Less(t, fav, people)
	assert.Less(t, people, rooms)
	assert.Contains(t, out, "5 of 5 · 3 sections")
}
