package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/tododia/internal/models"
)

const (
	entityGoals  = "goals"
	entityVision = "vision"
	entityHabits = "habits"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		data[key] = value
	}

	settings, err := models.MapToSettings(data)
	if err != nil {
		return models.Settings{}, err
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range models.SettingsToMap(settings) {
		_, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
			key, value)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetSession() (models.Session, error) {
	row := s.db.QueryRow("SELECT username, email FROM session WHERE id = 1")

	var sess models.Session
	err := row.Scan(&sess.Username, &sess.Email)
	if err == sql.ErrNoRows {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

func (s *Store) SetSession(session models.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, username, email) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			email = EXCLUDED.email`,
		session.Username, session.Email)
	return err
}

func (s *Store) ClearSession() error {
	_, err := s.db.Exec("DELETE FROM session WHERE id = 1")
	return err
}

func (s *Store) GetStartDate(username string) (int64, error) {
	row := s.db.QueryRow("SELECT start_date FROM users WHERE username = $1", username)

	var startDate int64
	err := row.Scan(&startDate)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return startDate, nil
}

func (s *Store) SetStartDate(username string, epochMs int64) error {
	_, err := s.db.Exec(`
		INSERT INTO users (username, start_date) VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET start_date = EXCLUDED.start_date`,
		username, epochMs)
	return err
}

func (s *Store) GetAllUsernames() ([]string, error) {
	rows, err := s.db.Query("SELECT username FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		usernames = append(usernames, name)
	}
	return usernames, nil
}

func (s *Store) ensureUser(username string) error {
	_, err := s.db.Exec(`
		INSERT INTO users (username, start_date) VALUES ($1, 0)
		ON CONFLICT (username) DO NOTHING`, username)
	if err != nil {
		return fmt.Errorf("failed to ensure user %s: %w", username, err)
	}
	return nil
}

func (s *Store) GetAudit(username string) (models.AuditData, error) {
	rows, err := s.db.Query(
		"SELECT key, value FROM audit_fields WHERE username = $1", username)
	if err != nil {
		return models.AuditData{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.AuditData{}, err
		}
		data[key] = value
	}

	return models.MapToAudit(data)
}

func (s *Store) SaveAudit(username string, audit models.AuditData) error {
	if err := s.ensureUser(username); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range models.AuditToMap(audit) {
		_, err := tx.Exec(`
			INSERT INTO audit_fields (username, key, value) VALUES ($1, $2, $3)
			ON CONFLICT (username, key) DO UPDATE SET value = EXCLUDED.value`,
			username, key, value)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) getSnapshot(username, entity string, dst interface{}) error {
	row := s.db.QueryRow(
		"SELECT data FROM snapshots WHERE username = $1 AND entity = $2",
		username, entity)

	var data string
	err := row.Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return fmt.Errorf("failed to parse %s snapshot for %s: %w", entity, username, err)
	}
	return nil
}

func (s *Store) saveSnapshot(username, entity string, src interface{}) error {
	if err := s.ensureUser(username); err != nil {
		return err
	}

	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("failed to serialize %s snapshot for %s: %w", entity, username, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (username, entity, data) VALUES ($1, $2, $3)
		ON CONFLICT (username, entity) DO UPDATE SET data = EXCLUDED.data`,
		username, entity, string(data))
	return err
}

func (s *Store) GetGoals(username string) ([]models.SmartGoal, error) {
	goals := []models.SmartGoal{}
	if err := s.getSnapshot(username, entityGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *Store) SaveGoals(username string, goals []models.SmartGoal) error {
	return s.saveSnapshot(username, entityGoals, goals)
}

func (s *Store) GetVision(username string) ([]models.VisionBoardItem, error) {
	items := []models.VisionBoardItem{}
	if err := s.getSnapshot(username, entityVision, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) SaveVision(username string, items []models.VisionBoardItem) error {
	return s.saveSnapshot(username, entityVision, items)
}

func (s *Store) GetHabits(username string) ([]models.Habit, error) {
	habits := []models.Habit{}
	if err := s.getSnapshot(username, entityHabits, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *Store) SaveHabits(username string, habits []models.Habit) error {
	return s.saveSnapshot(username, entityHabits, habits)
}
