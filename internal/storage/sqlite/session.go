package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/tododia/internal/models"
)

// ErrNoSession mirrors storage.ErrNoSession; the wrapper translates it.
var ErrNoSession = errors.New("no active session")

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
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
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
		INSERT INTO session (id, username, email) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			email = excluded.email`,
		session.Username, session.Email)
	return err
}

func (s *Store) ClearSession() error {
	_, err := s.db.Exec("DELETE FROM session WHERE id = 1")
	return err
}

func (s *Store) GetStartDate(username string) (int64, error) {
	row := s.db.QueryRow("SELECT start_date FROM users WHERE username = ?", username)

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
		INSERT INTO users (username, start_date) VALUES (?, ?)
		ON CONFLICT(username) DO UPDATE SET start_date = excluded.start_date`,
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

// ensureUser inserts a user row so namespaced data has an owner record.
func (s *Store) ensureUser(username string) error {
	_, err := s.db.Exec(`
		INSERT INTO users (username, start_date) VALUES (?, 0)
		ON CONFLICT(username) DO NOTHING`, username)
	if err != nil {
		return fmt.Errorf("failed to ensure user %s: %w", username, err)
	}
	return nil
}
