package storage

import (
	"database/sql"
	"errors"

	"github.com/julianstephens/tododia/internal/models"
	"github.com/julianstephens/tododia/internal/storage/sqlite"
)

// SQLiteStore wraps sqlite.Store behind the Provider interface
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		store: sqlite.NewStore(path),
	}
}

// Lifecycle methods
func (s *SQLiteStore) Init() error           { return s.store.Init() }
func (s *SQLiteStore) Load() error           { return s.store.Load() }
func (s *SQLiteStore) Close() error          { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }

// GetDB exposes the underlying connection for diagnostics
func (s *SQLiteStore) GetDB() *sql.DB { return s.store.GetDB() }

// Settings methods
func (s *SQLiteStore) GetSettings() (models.Settings, error) { return s.store.GetSettings() }
func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	return s.store.SaveSettings(settings)
}

// Session methods
func (s *SQLiteStore) GetSession() (models.Session, error) {
	sess, err := s.store.GetSession()
	if errors.Is(err, sqlite.ErrNoSession) {
		return models.Session{}, ErrNoSession
	}
	return sess, err
}
func (s *SQLiteStore) SetSession(session models.Session) error { return s.store.SetSession(session) }
func (s *SQLiteStore) ClearSession() error                     { return s.store.ClearSession() }

// Trial methods
func (s *SQLiteStore) GetStartDate(username string) (int64, error) {
	return s.store.GetStartDate(username)
}
func (s *SQLiteStore) SetStartDate(username string, epochMs int64) error {
	return s.store.SetStartDate(username, epochMs)
}

// Domain snapshot methods
func (s *SQLiteStore) GetAudit(username string) (models.AuditData, error) {
	return s.store.GetAudit(username)
}
func (s *SQLiteStore) SaveAudit(username string, audit models.AuditData) error {
	return s.store.SaveAudit(username, audit)
}
func (s *SQLiteStore) GetGoals(username string) ([]models.SmartGoal, error) {
	return s.store.GetGoals(username)
}
func (s *SQLiteStore) SaveGoals(username string, goals []models.SmartGoal) error {
	return s.store.SaveGoals(username, goals)
}
func (s *SQLiteStore) GetVision(username string) ([]models.VisionBoardItem, error) {
	return s.store.GetVision(username)
}
func (s *SQLiteStore) SaveVision(username string, items []models.VisionBoardItem) error {
	return s.store.SaveVision(username, items)
}
func (s *SQLiteStore) GetHabits(username string) ([]models.Habit, error) {
	return s.store.GetHabits(username)
}
func (s *SQLiteStore) SaveHabits(username string, habits []models.Habit) error {
	return s.store.SaveHabits(username, habits)
}

// Bulk retrieval
func (s *SQLiteStore) GetAllUsernames() ([]string, error) { return s.store.GetAllUsernames() }
