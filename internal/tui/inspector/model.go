package inspector

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vpwatch/internal/host"
	"github.com/alexisbeaulieu97/vpwatch/internal/responsive"
)

// historySize is the number of recent changes kept for display.
const historySize = 6

// history records published changes. Subscriptions append to it from the
// program's event loop while View reads it.
type history struct {
	mu      sync.Mutex
	entries []string
}

func (h *history) add(entry string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry)
	if len(h.entries) > historySize {
		h.entries = h.entries[len(h.entries)-historySize:]
	}
}

func (h *history) list() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Model is the inspector's Bubble Tea model. It forwards window sizes to a
// host.Tea and renders the observers bound to it.
type Model struct {
	host     *host.Tea
	viewport *responsive.ViewportObserver
	matcher  *responsive.BreakpointMatcher
	mobile   *responsive.MobileFeatures
	history  *history
	cleanups []func()

	keys keyMap
	help help.Model

	// Terminal dimensions in cells
	cols int
	rows int
}

// NewModel creates and activates the observers for h. Call Close when the
// program exits.
func NewModel(h *host.Tea, target responsive.Breakpoint, opts ...responsive.Option) Model {
	m := Model{
		host:     h,
		viewport: responsive.NewViewportObserver(h, opts...),
		matcher:  responsive.NewBreakpointMatcher(h, target, opts...),
		mobile:   responsive.NewMobileFeatures(h, opts...),
		history:  &history{},
		keys:     defaultKeyMap(),
		help:     help.New(),
	}

	m.cleanups = []func(){
		m.viewport.Activate(),
		m.matcher.Activate(),
		m.mobile.Activate(),
		m.viewport.Subscribe(func(s responsive.ResponsiveState) {
			m.history.add(fmt.Sprintf("viewport → %s (%s, %dx%d)", s.Breakpoint, s.DeviceClass(), s.Width, s.Height))
		}),
		m.matcher.Subscribe(func(v bool) {
			m.history.add(fmt.Sprintf("matcher  → ≥%s %t", m.matcher.Breakpoint(), v))
		}),
		m.mobile.Subscribe(func(s responsive.MobileFeatureState) {
			m.history.add(fmt.Sprintf("mobile   → %s standalone=%t", s.Orientation, s.IsStandalone))
		}),
	}
	return m
}

// Close deactivates every observer. It is idempotent.
func (m Model) Close() {
	for i := len(m.cleanups) - 1; i >= 0; i-- {
		m.cleanups[i]()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.help.Width = msg.Width
		m.host.Observe(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cycle):
		m.matcher.SetBreakpoint(m.matcher.Breakpoint().Next())
		return m, nil

	case key.Matches(msg, m.keys.Standalone):
		m.host.SetStandalone(!m.mobile.State().IsStandalone)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// Ready reports whether a window size has been received.
func (m Model) Ready() bool {
	_, ok := m.host.Viewport()
	return ok
}
