package sqlite

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

// getSnapshot loads the serialized snapshot for a (user, entity) pair
// into dst. A missing row leaves dst untouched and returns false.
func (s *Store) getSnapshot(username, entity string, dst interface{}) (bool, error) {
	row := s.db.QueryRow(
		"SELECT data FROM snapshots WHERE username = ? AND entity = ?",
		username, entity)

	var data string
	err := row.Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return false, fmt.Errorf("failed to parse %s snapshot for %s: %w", entity, username, err)
	}
	return true, nil
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
		INSERT INTO snapshots (username, entity, data) VALUES (?, ?, ?)
		ON CONFLICT(username, entity) DO UPDATE SET data = excluded.data`,
		username, entity, string(data))
	return err
}

func (s *Store) GetGoals(username string) ([]models.SmartGoal, error) {
	goals := []models.SmartGoal{}
	if _, err := s.getSnapshot(username, entityGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *Store) SaveGoals(username string, goals []models.SmartGoal) error {
	return s.saveSnapshot(username, entityGoals, goals)
}

func (s *Store) GetVision(username string) ([]models.VisionBoardItem, error) {
	items := []models.VisionBoardItem{}
	if _, err := s.getSnapshot(username, entityVision, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) SaveVision(username string, items []models.VisionBoardItem) error {
	return s.saveSnapshot(username, entityVision, items)
}

func (s *Store) GetHabits(username string) ([]models.Habit, error) {
	habits := []models.Habit{}
	if _, err := s.getSnapshot(username, entityHabits, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *Store) SaveHabits(username string, habits []models.Habit) error {
	return s.saveSnapshot(username, entityHabits, habits)
}
