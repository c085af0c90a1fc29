package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeHeight)
		m.refreshContent()
		return m, nil

	case ComputedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Input != nil {
			m.input = msg.Input
		}
		if msg.Err == nil {
			m.results = msg.Results
		}
		m.refreshContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % Tab(len(tabNames))
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = (m.activeTab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Recompute):
		m.loading = true
		return m, computeCmd(m.inputPath, m.engine, m.priorYearTax)
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '1' && int(r-'1') < len(tabNames) {
			m.activeTab = Tab(r - '1')
			m.refreshContent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refreshContent re-renders the active tab into the viewport
func (m *Model) refreshContent() {
	m.viewport.SetContent(m.renderTab(m.activeTab))
	m.viewport.GotoTop()
}
