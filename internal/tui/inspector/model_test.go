package inspector

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/responsive"
)

func newTestModel(t *testing.T) (Model, *host.Tea) {
	t.Helper()
	h := host.NewTea(host.WithGetenv(func(string) string { return "" }))
	m := NewModel(h, responsive.BreakpointLG)
	t.Cleanup(m.Close)
	return m, h
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestViewBeforeWindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	assert.False(t, m.Ready())
	assert.Contains(t, m.View(), "waiting for window size")
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _ := newTestModel(t)

	// 100 cols x 30 rows at 8x16 px per cell is 800x480: md, tablet.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	require.True(t, m.Ready())
	assert.Equal(t, 100, m.cols)
	assert.Equal(t, 30, m.rows)

	state := m.viewport.State()
	assert.Equal(t, responsive.BreakpointMD, state.Breakpoint)
	assert.True(t, state.IsTablet)
	assert.False(t, m.matcher.Matches())
	assert.Equal(t, responsive.Landscape, m.mobile.State().Orientation)

	view := m.View()
	assert.Contains(t, view, "800x480 px")
	assert.Contains(t, view, "100x30 cells")
	assert.Contains(t, view, "recent changes")
}

func TestUpdate_WindowSizeCrossesBreakpoint(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})

	assert.Equal(t, responsive.Breakpoint2XL, m.viewport.State().Breakpoint)
	assert.True(t, m.matcher.Matches())
	assert.Contains(t, m.history.list(), "matcher  → ≥lg true")
}

func TestUpdate_CycleBreakpoint(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	require.True(t, m.matcher.Matches(), "1120px is at least lg")

	m, _ = update(t, m, keyRune('b'))
	assert.Equal(t, responsive.BreakpointXL, m.matcher.Breakpoint())
	assert.False(t, m.matcher.Matches())

	m, _ = update(t, m, keyRune('b'))
	m, _ = update(t, m, keyRune('b'))
	assert.Equal(t, responsive.BreakpointSM, m.matcher.Breakpoint())
	assert.True(t, m.matcher.Matches())
}

func TestUpdate_ToggleStandalone(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 50})
	require.True(t, m.mobile.State().IsStandalone)
	require.True(t, m.mobile.State().IsPortrait)

	m, _ = update(t, m, keyRune('s'))
	assert.False(t, m.mobile.State().IsStandalone)

	m, _ = update(t, m, keyRune('s'))
	assert.True(t, m.mobile.State().IsStandalone)
}

func TestUpdate_HelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, keyRune('?'))
	assert.True(t, m.help.ShowAll)

	_, cmd := update(t, m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCloseRemovesListeners(t *testing.T) {
	h := host.NewTea()
	m := NewModel(h, responsive.BreakpointMD)
	require.Positive(t, h.ListenerCount())

	m.Close()
	m.Close()
	assert.Equal(t, 0, h.ListenerCount())
}

func TestHistoryKeepsMostRecent(t *testing.T) {
	h := &history{}
	for i := 0; i < historySize+3; i++ {
		h.add(string(rune('a' + i)))
	}
	entries := h.list()
	require.Len(t, entries, historySize)
	assert.Equal(t, "d", entries[0])
}
