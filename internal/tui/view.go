package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		m.renderTabBar(),
		m.renderBody(),
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := "RPTAX"
	if m.results != nil && m.results.Federal != nil {
		f := m.results.Federal
		title = fmt.Sprintf("RPTAX - %d return (%s)", f.TaxYear, strings.ToUpper(string(f.FilingStatus)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		TitleStyle.Render(title),
		" ",
		SubtitleStyle.Render(filepath.Base(m.inputPath)),
	)
}

func (m Model) renderTabBar() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.activeTab {
			tabs[i] = ActiveTabStyle.Render(label)
		} else {
			tabs[i] = InactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) renderBody() string {
	switch {
	case m.loading:
		return SubtitleStyle.Render("Computing " + m.inputPath + "...")
	case m.err != nil:
		return ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" +
			SubtitleStyle.Render("Fix the input file and press r to reload.")
	}
	return m.viewport.View()
}

func (m Model) renderStatusBar() string {
	status := m.help.View(m.keys)
	if m.results != nil && !m.loading {
		status += SubtitleStyle.Render(fmt.Sprintf("  %3.f%%", m.viewport.ScrollPercent()*100))
	}
	return StatusBarStyle.Render(status)
}
