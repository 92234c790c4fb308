package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vpwatch/internal/responsive"
)

// View implements tea.Model. Panels sit side by side on desktop-class
// viewports and stack on narrower ones.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("vpwatch inspector"))
	b.WriteString("\n")

	if !m.Ready() {
		b.WriteString(offStyle.Render("waiting for window size…"))
		b.WriteString("\n")
		return b.String()
	}

	state := m.viewport.State()
	b.WriteString(m.renderScale(state.Breakpoint))
	b.WriteString("\n\n")

	panels := []string{
		m.renderViewport(state),
		m.renderMatcher(),
		m.renderMobile(),
	}
	if state.IsDesktop {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, panels...))
	}
	b.WriteString("\n")

	if entries := m.history.list(); len(entries) > 0 {
		b.WriteString(historyStyle.Render("recent changes\n" + strings.Join(entries, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderScale(current responsive.Breakpoint) string {
	var parts []string
	for _, th := range responsive.Breakpoints() {
		label := fmt.Sprintf("%s≥%d", th.Breakpoint, th.MinWidth)
		if th.Breakpoint == current {
			parts = append(parts, activeScaleStyle.Render(label))
			continue
		}
		parts = append(parts, scaleStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderViewport(state responsive.ResponsiveState) string {
	rows := []string{
		panelTitleStyle.Render("viewport"),
		row("breakpoint", state.Breakpoint.String()),
		row("class", state.DeviceClass().String()),
		row("size", fmt.Sprintf("%dx%d px", state.Width, state.Height)),
		row("terminal", fmt.Sprintf("%dx%d cells", m.cols, m.rows)),
		flag("mobile", state.IsMobile),
		flag("tablet", state.IsTablet),
		flag("desktop", state.IsDesktop),
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderMatcher() string {
	target := m.matcher.Breakpoint()
	rows := []string{
		panelTitleStyle.Render("matcher"),
		row("target", fmt.Sprintf("%s (≥%d px)", target, target.MinWidth())),
		flag("matches", m.matcher.Matches()),
	}
	if m.matcher.Static() {
		rows = append(rows, offStyle.Render("static: no boundary watch"))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderMobile() string {
	state := m.mobile.State()
	rows := []string{
		panelTitleStyle.Render("mobile features"),
		row("orientation", string(state.Orientation)),
		flag("mobile", state.IsMobile),
		flag("portrait", state.IsPortrait),
		flag("landscape", state.IsLandscape),
		flag("standalone", state.IsStandalone),
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func flag(label string, on bool) string {
	if on {
		return labelStyle.Render(label) + onStyle.Render("yes")
	}
	return labelStyle.Render(label) + offStyle.Render("no")
}
