package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	apperrors "vitalog/internal/errors"
	"vitalog/internal/models"
	"vitalog/internal/utils"
)

// SQLiteStore implements Provider over a SQLite database. Semantics match the
// JSON store; rows keep insertion order via rowid.
type SQLiteStore struct {
	path string
	db   *sql.DB

	nowFn func() int64
}

func NewSQLiteStore(configPath string) *SQLiteStore {
	return &SQLiteStore{
		path:  configPath,
		nowFn: func() int64 { return time.Now().UnixMilli() },
	}
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS water_entries (
	id TEXT PRIMARY KEY,
	timestamp INTEGER NOT NULL,
	amount_ml INTEGER NOT NULL,
	session_start INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS mood_entries (
	id TEXT PRIMARY KEY,
	timestamp INTEGER NOT NULL,
	mood INTEGER NOT NULL,
	icon TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS goal_entries (
	id TEXT PRIMARY KEY,
	timestamp INTEGER NOT NULL,
	title TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	completed_at INTEGER
);
CREATE TABLE IF NOT EXISTS focus_sessions (
	id TEXT PRIMARY KEY,
	start_time INTEGER NOT NULL,
	end_time INTEGER,
	duration_min INTEGER NOT NULL,
	kind TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value INTEGER
);
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS panels (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	icon TEXT NOT NULL DEFAULT '',
	enabled INTEGER NOT NULL DEFAULT 1,
	ord INTEGER NOT NULL DEFAULT 0
);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	settings := models.Settings{}
	settings.Profile.ID = uuid.New().String()
	models.ApplyDefaultSettings(&settings)
	if err := s.SaveSettings(settings); err != nil {
		return err
	}
	return s.SaveDashboard(models.DefaultPanels())
}

func (s *SQLiteStore) Load() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'vitalog init' first")
	}
	if err := s.open(); err != nil {
		return &apperrors.CorruptStateError{Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) AddWater(amountML int) (models.WaterEntry, error) {
	if s.db == nil {
		return models.WaterEntry{}, fmt.Errorf("storage not loaded")
	}

	now := s.nowFn()

	// Most recently inserted entry drives the chain rule.
	var last models.WaterEntry
	var lastPtr *models.WaterEntry
	row := s.db.QueryRow("SELECT timestamp, session_start FROM water_entries ORDER BY rowid DESC LIMIT 1")
	if err := row.Scan(&last.Timestamp, &last.SessionStart); err == nil {
		lastPtr = &last
	} else if err != sql.ErrNoRows {
		return models.WaterEntry{}, fmt.Errorf("failed to read last water entry: %w", err)
	}

	entry := models.WaterEntry{
		ID:           utils.NewID(),
		Timestamp:    now,
		AmountML:     amountML,
		SessionStart: models.SessionStartFor(lastPtr, now),
	}
	_, err := s.db.Exec(
		"INSERT INTO water_entries (id, timestamp, amount_ml, session_start) VALUES (?, ?, ?, ?)",
		entry.ID, entry.Timestamp, entry.AmountML, entry.SessionStart,
	)
	if err != nil {
		return models.WaterEntry{}, fmt.Errorf("failed to add water entry: %w", err)
	}
	return entry, nil
}

func (s *SQLiteStore) AddMood(mood int, icon, notes string) (models.MoodEntry, error) {
	if s.db == nil {
		return models.MoodEntry{}, fmt.Errorf("storage not loaded")
	}

	entry := models.MoodEntry{
		ID:        utils.NewID(),
		Timestamp: s.nowFn(),
		Mood:      mood,
		Icon:      icon,
		Notes:     notes,
	}
	_, err := s.db.Exec(
		"INSERT INTO mood_entries (id, timestamp, mood, icon, notes) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.Timestamp, entry.Mood, entry.Icon, entry.Notes,
	)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to add mood entry: %w", err)
	}
	return entry, nil
}

func (s *SQLiteStore) AddGoal(title string) (models.GoalEntry, error) {
	if s.db == nil {
		return models.GoalEntry{}, fmt.Errorf("storage not loaded")
	}

	entry := models.GoalEntry{
		ID:        utils.NewID(),
		Timestamp: s.nowFn(),
		Title:     title,
	}
	_, err := s.db.Exec(
		"INSERT INTO goal_entries (id, timestamp, title, completed) VALUES (?, ?, ?, 0)",
		entry.ID, entry.Timestamp, entry.Title,
	)
	if err != nil {
		return models.GoalEntry{}, fmt.Errorf("failed to add goal: %w", err)
	}
	return entry, nil
}

func (s *SQLiteStore) ToggleGoal(id string) (models.GoalEntry, error) {
	if s.db == nil {
		return models.GoalEntry{}, fmt.Errorf("storage not loaded")
	}

	goal := models.GoalEntry{}
	var completed int
	var completedAt sql.NullInt64
	row := s.db.QueryRow("SELECT id, timestamp, title, completed, completed_at FROM goal_entries WHERE id = ?", id)
	if err := row.Scan(&goal.ID, &goal.Timestamp, &goal.Title, &completed, &completedAt); err != nil {
		if err == sql.ErrNoRows {
			return models.GoalEntry{}, &apperrors.NotFoundError{Kind: "goal", ID: id}
		}
		return models.GoalEntry{}, fmt.Errorf("failed to read goal: %w", err)
	}

	if completed != 0 {
		goal.Completed = false
		goal.CompletedAt = nil
		if _, err := s.db.Exec("UPDATE goal_entries SET completed = 0, completed_at = NULL WHERE id = ?", id); err != nil {
			return models.GoalEntry{}, fmt.Errorf("failed to update goal: %w", err)
		}
	} else {
		now := s.nowFn()
		goal.Completed = true
		goal.CompletedAt = &now
		if _, err := s.db.Exec("UPDATE goal_entries SET completed = 1, completed_at = ? WHERE id = ?", now, id); err != nil {
			return models.GoalEntry{}, fmt.Errorf("failed to update goal: %w", err)
		}
	}
	return goal, nil
}

func (s *SQLiteStore) StartFocusSession(kind models.FocusKind, durationMin int) (models.FocusSession, error) {
	if s.db == nil {
		return models.FocusSession{}, fmt.Errorf("storage not loaded")
	}

	session := models.FocusSession{
		ID:          utils.NewID(),
		StartTime:   s.nowFn(),
		DurationMin: durationMin,
		Kind:        kind,
	}
	_, err := s.db.Exec(
		"INSERT INTO focus_sessions (id, start_time, duration_min, kind, completed) VALUES (?, ?, ?, ?, 0)",
		session.ID, session.StartTime, session.DurationMin, string(session.Kind),
	)
	if err != nil {
		return models.FocusSession{}, fmt.Errorf("failed to start focus session: %w", err)
	}
	return session, nil
}

func (s *SQLiteStore) EndFocusSession(id string) (models.FocusSession, error) {
	if s.db == nil {
		return models.FocusSession{}, fmt.Errorf("storage not loaded")
	}

	session := models.FocusSession{}
	var kind string
	var completed int
	var endTime sql.NullInt64
	row := s.db.QueryRow("SELECT id, start_time, end_time, duration_min, kind, completed FROM focus_sessions WHERE id = ?", id)
	if err := row.Scan(&session.ID, &session.StartTime, &endTime, &session.DurationMin, &kind, &completed); err != nil {
		if err == sql.ErrNoRows {
			return models.FocusSession{}, &apperrors.NotFoundError{Kind: "focus session", ID: id}
		}
		return models.FocusSession{}, fmt.Errorf("failed to read focus session: %w", err)
	}
	session.Kind = models.FocusKind(kind)

	if completed != 0 {
		session.Completed = true
		if endTime.Valid {
			session.EndTime = &endTime.Int64
		}
		return session, nil
	}

	now := s.nowFn()
	session.EndTime = &now
	session.Completed = true
	if _, err := s.db.Exec("UPDATE focus_sessions SET end_time = ?, completed = 1 WHERE id = ?", now, id); err != nil {
		return models.FocusSession{}, fmt.Errorf("failed to end focus session: %w", err)
	}
	return session, nil
}

func (s *SQLiteStore) GetAppData() (models.AppData, error) {
	if s.db == nil {
		return models.AppData{}, fmt.Errorf("storage not loaded")
	}

	data := models.NewAppData()

	rows, err := s.db.Query("SELECT id, timestamp, amount_ml, session_start FROM water_entries ORDER BY rowid")
	if err != nil {
		return models.AppData{}, fmt.Errorf("failed to read water entries: %w", err)
	}
	for rows.Next() {
		var e models.WaterEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.AmountML, &e.SessionStart); err != nil {
			rows.Close()
			return models.AppData{}, err
		}
		data.WaterEntries = append(data.WaterEntries, e)
	}
	rows.Close()

	rows, err = s.db.Query("SELECT id, timestamp, mood, icon, notes FROM mood_entries ORDER BY rowid")
	if err != nil {
		return models.AppData{}, fmt.Errorf("failed to read mood entries: %w", err)
	}
	for rows.Next() {
		var e models.MoodEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Mood, &e.Icon, &e.Notes); err != nil {
			rows.Close()
			return models.AppData{}, err
		}
		data.MoodEntries = append(data.MoodEntries, e)
	}
	rows.Close()

	rows, err = s.db.Query("SELECT id, timestamp, title, completed, completed_at FROM goal_entries ORDER BY rowid")
	if err != nil {
		return models.AppData{}, fmt.Errorf("failed to read goals: %w", err)
	}
	for rows.Next() {
		var e models.GoalEntry
		var completed int
		var completedAt sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Title, &completed, &completedAt); err != nil {
			rows.Close()
			return models.AppData{}, err
		}
		e.Completed = completed != 0
		if completedAt.Valid {
			v := completedAt.Int64
			e.CompletedAt = &v
		}
		data.GoalEntries = append(data.GoalEntries, e)
	}
	rows.Close()

	rows, err = s.db.Query("SELECT id, start_time, end_time, duration_min, kind, completed FROM focus_sessions ORDER BY rowid")
	if err != nil {
		return models.AppData{}, fmt.Errorf("failed to read focus sessions: %w", err)
	}
	for rows.Next() {
		var e models.FocusSession
		var kind string
		var completed int
		var endTime sql.NullInt64
		if err := rows.Scan(&e.ID, &e.StartTime, &endTime, &e.DurationMin, &kind, &completed); err != nil {
			rows.Close()
			return models.AppData{}, err
		}
		e.Kind = models.FocusKind(kind)
		e.Completed = completed != 0
		if endTime.Valid {
			v := endTime.Int64
			e.EndTime = &v
		}
		data.FocusSessions = append(data.FocusSessions, e)
	}
	rows.Close()

	var lastBackup sql.NullInt64
	row := s.db.QueryRow("SELECT value FROM meta WHERE key = 'last_backup'")
	if err := row.Scan(&lastBackup); err == nil && lastBackup.Valid {
		v := lastBackup.Int64
		data.LastBackup = &v
	}

	return data, nil
}

func (s *SQLiteStore) ReplaceAppData(data models.AppData) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"water_entries", "mood_entries", "goal_entries", "focus_sessions"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, e := range data.WaterEntries {
		if _, err := tx.Exec(
			"INSERT INTO water_entries (id, timestamp, amount_ml, session_start) VALUES (?, ?, ?, ?)",
			e.ID, e.Timestamp, e.AmountML, e.SessionStart,
		); err != nil {
			return fmt.Errorf("failed to insert water entry: %w", err)
		}
	}
	for _, e := range data.MoodEntries {
		if _, err := tx.Exec(
			"INSERT INTO mood_entries (id, timestamp, mood, icon, notes) VALUES (?, ?, ?, ?, ?)",
			e.ID, e.Timestamp, e.Mood, e.Icon, e.Notes,
		); err != nil {
			return fmt.Errorf("failed to insert mood entry: %w", err)
		}
	}
	for _, e := range data.GoalEntries {
		var completedAt interface{}
		if e.CompletedAt != nil {
			completedAt = *e.CompletedAt
		}
		if _, err := tx.Exec(
			"INSERT INTO goal_entries (id, timestamp, title, completed, completed_at) VALUES (?, ?, ?, ?, ?)",
			e.ID, e.Timestamp, e.Title, boolToInt(e.Completed), completedAt,
		); err != nil {
			return fmt.Errorf("failed to insert goal: %w", err)
		}
	}
	for _, e := range data.FocusSessions {
		var endTime interface{}
		if e.EndTime != nil {
			endTime = *e.EndTime
		}
		if _, err := tx.Exec(
			"INSERT INTO focus_sessions (id, start_time, end_time, duration_min, kind, completed) VALUES (?, ?, ?, ?, ?, ?)",
			e.ID, e.StartTime, endTime, e.DurationMin, string(e.Kind), boolToInt(e.Completed),
		); err != nil {
			return fmt.Errorf("failed to insert focus session: %w", err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO meta (key, value) VALUES ('last_backup', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		s.nowFn(),
	); err != nil {
		return fmt.Errorf("failed to stamp last backup: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) Wipe() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		s.db = nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete storage: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	defer rows.Close()

	kv := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return models.Settings{}, err
		}
		kv[k] = v
	}

	settings, err := models.MapToSettings(kv)
	if err != nil {
		return models.Settings{}, err
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for k, v := range models.SettingsToMap(settings) {
		if _, err := tx.Exec(
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			k, v,
		); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", k, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetDashboard() ([]models.Panel, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT id, name, description, icon, enabled, ord FROM panels ORDER BY ord")
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard layout: %w", err)
	}
	defer rows.Close()

	var panels []models.Panel
	for rows.Next() {
		var p models.Panel
		var enabled int
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Icon, &enabled, &p.Order); err != nil {
			return nil, err
		}
		p.Enabled = enabled != 0
		panels = append(panels, p)
	}

	if len(panels) == 0 {
		return models.DefaultPanels(), nil
	}
	return panels, nil
}

func (s *SQLiteStore) SaveDashboard(panels []models.Panel) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM panels"); err != nil {
		return fmt.Errorf("failed to clear dashboard layout: %w", err)
	}
	for _, p := range panels {
		if _, err := tx.Exec(
			"INSERT INTO panels (id, name, description, icon, enabled, ord) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID, p.Name, p.Description, p.Icon, boolToInt(p.Enabled), p.Order,
		); err != nil {
			return fmt.Errorf("failed to save panel %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
