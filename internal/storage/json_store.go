package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/tododia/internal/models"
)

type Store struct {
	Version  int                         `json:"version"`
	Settings models.Settings             `json:"settings"`
	Session  *models.Session             `json:"session,omitempty"`
	Users    map[string]*models.UserData `json:"users"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Settings: models.Settings{
			NotificationsEnabled: false,
			Timezone:             "Local",
			ReminderPollSec:      10,
		},
		Users: make(map[string]*models.UserData),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tododia init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Users == nil {
		s.store.Users = make(map[string]*models.UserData)
	}
	models.ApplyDefaultSettings(&s.store.Settings)

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// user returns the namespace for a username, creating it when absent.
func (s *JSONStore) user(username string) *models.UserData {
	u, ok := s.store.Users[username]
	if !ok {
		u = &models.UserData{}
		s.store.Users[username] = u
	}
	return u
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetSession() (models.Session, error) {
	if s.store == nil {
		return models.Session{}, fmt.Errorf("storage not loaded")
	}
	if s.store.Session == nil {
		return models.Session{}, ErrNoSession
	}
	return *s.store.Session, nil
}

func (s *JSONStore) SetSession(session models.Session) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Session = &session
	return s.save()
}

func (s *JSONStore) ClearSession() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Session = nil
	return s.save()
}

func (s *JSONStore) GetStartDate(username string) (int64, error) {
	if s.store == nil {
		return 0, fmt.Errorf("storage not loaded")
	}
	u, ok := s.store.Users[username]
	if !ok {
		return 0, nil
	}
	return u.StartDate, nil
}

func (s *JSONStore) SetStartDate(username string, epochMs int64) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.user(username).StartDate = epochMs
	return s.save()
}

func (s *JSONStore) GetAudit(username string) (models.AuditData, error) {
	if s.store == nil {
		return models.AuditData{}, fmt.Errorf("storage not loaded")
	}
	u, ok := s.store.Users[username]
	if !ok || u.Audit == nil {
		return models.DefaultAudit(), nil
	}
	return models.MapToAudit(u.Audit)
}

func (s *JSONStore) SaveAudit(username string, audit models.AuditData) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.user(username).Audit = models.AuditToMap(audit)
	return s.save()
}

func (s *JSONStore) GetGoals(username string) ([]models.SmartGoal, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	u, ok := s.store.Users[username]
	if !ok || u.Goals == nil {
		return []models.SmartGoal{}, nil
	}
	return u.Goals, nil
}

func (s *JSONStore) SaveGoals(username string, goals []models.SmartGoal) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.user(username).Goals = goals
	return s.save()
}

func (s *JSONStore) GetVision(username string) ([]models.VisionBoardItem, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	u, ok := s.store.Users[username]
	if !ok || u.Vision == nil {
		return []models.VisionBoardItem{}, nil
	}
	return u.Vision, nil
}

func (s *JSONStore) SaveVision(username string, items []models.VisionBoardItem) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.user(username).Vision = items
	return s.save()
}

func (s *JSONStore) GetHabits(username string) ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	u, ok := s.store.Users[username]
	if !ok || u.Habits == nil {
		return []models.Habit{}, nil
	}
	return u.Habits, nil
}

func (s *JSONStore) SaveHabits(username string, habits []models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.user(username).Habits = habits
	return s.save()
}

func (s *JSONStore) GetAllUsernames() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	usernames := make([]string, 0, len(s.store.Users))
	for name := range s.store.Users {
		usernames = append(usernames, name)
	}
	sort.Strings(usernames)
	return usernames, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
