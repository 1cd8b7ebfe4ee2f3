package storage

import (
	"errors"
	"net/url"
	"strings"

	"github.com/julianstephens/tododia/internal/models"
	"github.com/julianstephens/tododia/internal/storage/postgres"
)

// PostgresStore wraps postgres.Store behind the Provider interface
type PostgresStore struct {
	store *postgres.Store
}

// NewPostgresStore creates a new PostgreSQL store
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		store: postgres.New(connStr),
	}
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries an inline password. Credentials belong in the OS keyring,
// environment, or .pgpass, never in the string itself.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		_, isSet := u.User.Password()
		return isSet
	}

	for _, pair := range strings.Fields(connStr) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[0]), "password") {
			return true
		}
	}
	return false
}

// Lifecycle methods
func (s *PostgresStore) Init() error           { return s.store.Init() }
func (s *PostgresStore) Load() error           { return s.store.Load() }
func (s *PostgresStore) Close() error          { return s.store.Close() }
func (s *PostgresStore) GetConfigPath() string { return s.store.GetConfigPath() }

// Settings methods
func (s *PostgresStore) GetSettings() (models.Settings, error) { return s.store.GetSettings() }
func (s *PostgresStore) SaveSettings(settings models.Settings) error {
	return s.store.SaveSettings(settings)
}

// Session methods
func (s *PostgresStore) GetSession() (models.Session, error) {
	sess, err := s.store.GetSession()
	if errors.Is(err, postgres.ErrNoSession) {
		return models.Session{}, ErrNoSession
	}
	return sess, err
}
func (s *PostgresStore) SetSession(session models.Session) error { return s.store.SetSession(session) }
func (s *PostgresStore) ClearSession() error                     { return s.store.ClearSession() }

// Trial methods
func (s *PostgresStore) GetStartDate(username string) (int64, error) {
	return s.store.GetStartDate(username)
}
func (s *PostgresStore) SetStartDate(username string, epochMs int64) error {
	return s.store.SetStartDate(username, epochMs)
}

// Domain snapshot methods
func (s *PostgresStore) GetAudit(username string) (models.AuditData, error) {
	return s.store.GetAudit(username)
}
func (s *PostgresStore) SaveAudit(username string, audit models.AuditData) error {
	return s.store.SaveAudit(username, audit)
}
func (s *PostgresStore) GetGoals(username string) ([]models.SmartGoal, error) {
	return s.store.GetGoals(username)
}
func (s *PostgresStore) SaveGoals(username string, goals []models.SmartGoal) error {
	return s.store.SaveGoals(username, goals)
}
func (s *PostgresStore) GetVision(username string) ([]models.VisionBoardItem, error) {
	return s.store.GetVision(username)
}
func (s *PostgresStore) SaveVision(username string, items []models.VisionBoardItem) error {
	return s.store.SaveVision(username, items)
}
func (s *PostgresStore) GetHabits(username string) ([]models.Habit, error) {
	return s.store.GetHabits(username)
}
func (s *PostgresStore) SaveHabits(username string, habits []models.Habit) error {
	return s.store.SaveHabits(username, habits)
}

// Bulk retrieval
func (s *PostgresStore) GetAllUsernames() ([]string, error) { return s.store.GetAllUsernames() }
