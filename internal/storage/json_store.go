package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"vitalog/internal/constants"
	apperrors "vitalog/internal/errors"
	"vitalog/internal/logger"
	"vitalog/internal/models"
	"vitalog/internal/utils"
)

// JSONStore persists the aggregate as a single pretty-printed JSON document,
// rewritten wholesale on every mutation. Settings and dashboard layout live in
// sibling documents under the same directory.
type JSONStore struct {
	path string

	data     *models.AppData
	settings *models.Settings
	panels   []models.Panel

	nowFn func() int64
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path:  configPath,
		nowFn: func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *JSONStore) settingsPath() string {
	return filepath.Join(filepath.Dir(s.path), constants.SettingsFileName)
}

func (s *JSONStore) dashboardPath() string {
	return filepath.Join(filepath.Dir(s.path), constants.DashboardFileName)
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	data := models.NewAppData()
	s.data = &data

	settings := models.Settings{}
	settings.Profile.ID = uuid.New().String()
	models.ApplyDefaultSettings(&settings)
	s.settings = &settings

	s.panels = models.DefaultPanels()

	if err := s.save(); err != nil {
		return err
	}
	if err := s.saveSettings(); err != nil {
		return err
	}
	return s.saveDashboard()
}

func (s *JSONStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'vitalog init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	data := models.AppData{}
	if err := json.Unmarshal(raw, &data); err != nil {
		// No silent reset to empty: the user decides via 'vitalog wipe'.
		return &apperrors.CorruptStateError{Path: s.path, Err: err}
	}
	ensureCollections(&data)
	s.data = &data

	if err := s.loadSettings(); err != nil {
		return err
	}
	s.loadDashboard()

	return nil
}

func (s *JSONStore) loadSettings() error {
	raw, err := os.ReadFile(s.settingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			settings := models.Settings{}
			models.ApplyDefaultSettings(&settings)
			s.settings = &settings
			return nil
		}
		return fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.Settings{}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return &apperrors.CorruptStateError{Path: s.settingsPath(), Err: err}
	}
	models.ApplyDefaultSettings(&settings)
	s.settings = &settings
	return nil
}

// loadDashboard falls back to the built-in layout when the document is absent
// or malformed.
func (s *JSONStore) loadDashboard() {
	raw, err := os.ReadFile(s.dashboardPath())
	if err != nil {
		s.panels = models.DefaultPanels()
		return
	}

	var panels []models.Panel
	if err := json.Unmarshal(raw, &panels); err != nil || len(panels) == 0 {
		if err != nil {
			logger.Warn("Dashboard layout is malformed, using defaults", "path", s.dashboardPath(), "error", err)
		}
		s.panels = models.DefaultPanels()
		return
	}
	sort.SliceStable(panels, func(i, j int) bool { return panels[i].Order < panels[j].Order })
	s.panels = panels
}

func (s *JSONStore) Close() error {
	return nil
}

func ensureCollections(data *models.AppData) {
	if data.WaterEntries == nil {
		data.WaterEntries = []models.WaterEntry{}
	}
	if data.MoodEntries == nil {
		data.MoodEntries = []models.MoodEntry{}
	}
	if data.GoalEntries == nil {
		data.GoalEntries = []models.GoalEntry{}
	}
	if data.FocusSessions == nil {
		data.FocusSessions = []models.FocusSession{}
	}
}

func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) saveSettings() error {
	raw, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := os.WriteFile(s.settingsPath(), raw, 0600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func (s *JSONStore) saveDashboard() error {
	raw, err := json.MarshalIndent(s.panels, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize dashboard layout: %w", err)
	}
	if err := os.WriteFile(s.dashboardPath(), raw, 0600); err != nil {
		return fmt.Errorf("failed to write dashboard layout: %w", err)
	}
	return nil
}

func (s *JSONStore) AddWater(amountML int) (models.WaterEntry, error) {
	if s.data == nil {
		return models.WaterEntry{}, fmt.Errorf("storage not loaded")
	}

	now := s.nowFn()
	var last *models.WaterEntry
	if n := len(s.data.WaterEntries); n > 0 {
		last = &s.data.WaterEntries[n-1]
	}

	entry := models.WaterEntry{
		ID:           utils.NewID(),
		Timestamp:    now,
		AmountML:     amountML,
		SessionStart: models.SessionStartFor(last, now),
	}
	s.data.WaterEntries = append(s.data.WaterEntries, entry)
	return entry, s.save()
}

func (s *JSONStore) AddMood(mood int, icon, notes string) (models.MoodEntry, error) {
	if s.data == nil {
		return models.MoodEntry{}, fmt.Errorf("storage not loaded")
	}

	entry := models.MoodEntry{
		ID:        utils.NewID(),
		Timestamp: s.nowFn(),
		Mood:      mood,
		Icon:      icon,
		Notes:     notes,
	}
	s.data.MoodEntries = append(s.data.MoodEntries, entry)
	return entry, s.save()
}

func (s *JSONStore) AddGoal(title string) (models.GoalEntry, error) {
	if s.data == nil {
		return models.GoalEntry{}, fmt.Errorf("storage not loaded")
	}

	entry := models.GoalEntry{
		ID:        utils.NewID(),
		Timestamp: s.nowFn(),
		Title:     title,
	}
	s.data.GoalEntries = append(s.data.GoalEntries, entry)
	return entry, s.save()
}

func (s *JSONStore) ToggleGoal(id string) (models.GoalEntry, error) {
	if s.data == nil {
		return models.GoalEntry{}, fmt.Errorf("storage not loaded")
	}

	for i := range s.data.GoalEntries {
		goal := &s.data.GoalEntries[i]
		if goal.ID != id {
			continue
		}
		if goal.Completed {
			goal.Completed = false
			goal.CompletedAt = nil
		} else {
			goal.Completed = true
			now := s.nowFn()
			goal.CompletedAt = &now
		}
		return *goal, s.save()
	}

	return models.GoalEntry{}, &apperrors.NotFoundError{Kind: "goal", ID: id}
}

func (s *JSONStore) StartFocusSession(kind models.FocusKind, durationMin int) (models.FocusSession, error) {
	if s.data == nil {
		return models.FocusSession{}, fmt.Errorf("storage not loaded")
	}

	session := models.FocusSession{
		ID:          utils.NewID(),
		StartTime:   s.nowFn(),
		DurationMin: durationMin,
		Kind:        kind,
	}
	s.data.FocusSessions = append(s.data.FocusSessions, session)
	return session, s.save()
}

func (s *JSONStore) EndFocusSession(id string) (models.FocusSession, error) {
	if s.data == nil {
		return models.FocusSession{}, fmt.Errorf("storage not loaded")
	}

	for i := range s.data.FocusSessions {
		session := &s.data.FocusSessions[i]
		if session.ID != id {
			continue
		}
		if session.Completed {
			return *session, nil
		}
		now := s.nowFn()
		session.EndTime = &now
		session.Completed = true
		return *session, s.save()
	}

	return models.FocusSession{}, &apperrors.NotFoundError{Kind: "focus session", ID: id}
}

func (s *JSONStore) GetAppData() (models.AppData, error) {
	if s.data == nil {
		return models.AppData{}, fmt.Errorf("storage not loaded")
	}
	return *s.data, nil
}

func (s *JSONStore) ReplaceAppData(data models.AppData) error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}

	ensureCollections(&data)
	now := s.nowFn()
	data.LastBackup = &now
	s.data = &data
	return s.save()
}

func (s *JSONStore) Wipe() error {
	data := models.NewAppData()
	s.data = &data

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.settings == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return *s.settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	s.settings = &settings
	return s.saveSettings()
}

func (s *JSONStore) GetDashboard() ([]models.Panel, error) {
	if s.panels == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	panels := make([]models.Panel, len(s.panels))
	copy(panels, s.panels)
	return panels, nil
}

func (s *JSONStore) SaveDashboard(panels []models.Panel) error {
	sort.SliceStable(panels, func(i, j int) bool { return panels[i].Order < panels[j].Order })
	s.panels = panels
	return s.saveDashboard()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
