package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			m.reload()
			return m, nil
		}

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case reloadMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.reload()
		}
		return m, m.waitForChange()
	}

	return m, nil
}

// reload re-reads every document from disk.
func (m *Model) reload() {
	if err := m.store.Load(); err != nil {
		m.err = err
		return
	}
	data, err := m.store.GetAppData()
	if err != nil {
		m.err = err
		return
	}
	panels, err := m.store.GetDashboard()
	if err != nil {
		m.err = err
		return
	}
	settings, err := m.store.GetSettings()
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.data = data
	m.panels = panels
	m.settings = settings
}
