package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vitalog/internal/logger"
	"vitalog/internal/models"
	"vitalog/internal/storage"
	"vitalog/internal/utils"
	"vitalog/internal/watcher"
)

type keyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Quit}}
}

var keys = keyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type tickMsg time.Time

type reloadMsg struct {
	err error
}

// Model is the read-only dashboard. It renders enabled panels from the layout
// document and reloads when the data document changes on disk.
type Model struct {
	store    storage.Provider
	data     models.AppData
	settings models.Settings
	panels   []models.Panel
	loc      *time.Location

	watch *watcher.Watcher
	help  help.Model
	now   time.Time
	err   error
	width int
}

func NewModel(store storage.Provider) (*Model, error) {
	data, err := store.GetAppData()
	if err != nil {
		return nil, err
	}
	settings, err := store.GetSettings()
	if err != nil {
		return nil, err
	}
	panels, err := store.GetDashboard()
	if err != nil {
		return nil, err
	}
	loc, err := utils.LoadLocation(settings.Profile.Timezone)
	if err != nil {
		return nil, err
	}

	m := &Model{
		store:    store,
		data:     data,
		settings: settings,
		panels:   panels,
		loc:      loc,
		help:     help.New(),
		now:      time.Now(),
	}

	// The dashboard still works without the watcher, just without live reload.
	w, err := watcher.New(store.GetConfigPath())
	if err != nil {
		logger.Warn("File watcher unavailable", "error", err)
	} else {
		w.Start()
		m.watch = w
	}

	return m, nil
}

// Cleanup stops the file watcher.
func (m *Model) Cleanup() {
	if m.watch != nil {
		m.watch.Stop()
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForChange())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.watch.Events
		if !ok {
			return nil
		}
		return reloadMsg{err: ev.Err}
	}
}
