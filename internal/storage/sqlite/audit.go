package sqlite

import (
	"github.com/julianstephens/tododia/internal/models"
)

func (s *Store) GetAudit(username string) (models.AuditData, error) {
	rows, err := s.db.Query(
		"SELECT key, value FROM audit_fields WHERE username = ?", username)
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

	// Stored fields overlay the defaults; an empty result yields the
	// default audit for a fresh user.
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
			INSERT INTO audit_fields (username, key, value) VALUES (?, ?, ?)
			ON CONFLICT(username, key) DO UPDATE SET value = excluded.value`,
			username, key, value)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
