package tracker

import (
	"fmt"

	"github.com/julianstephens/tododia/internal/logger"
	"github.com/julianstephens/tododia/internal/models"
	"github.com/julianstephens/tododia/internal/storage"
	"github.com/julianstephens/tododia/internal/validation"
)

// Tracker holds one user's hydrated domain state and flushes the
// affected entity snapshot through the store after every mutation.
// There is exactly one writer per process; no locking is needed.
type Tracker struct {
	store    storage.Provider
	username string

	Audit  models.AuditData
	Goals  []models.SmartGoal
	Vision []models.VisionBoardItem
	Habits []models.Habit
}

// Hydrate loads all persisted domain entities for a user into memory.
func Hydrate(store storage.Provider, username string) (*Tracker, error) {
	audit, err := store.GetAudit(username)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit: %w", err)
	}
	goals, err := store.GetGoals(username)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	vision, err := store.GetVision(username)
	if err != nil {
		return nil, fmt.Errorf("failed to load vision board: %w", err)
	}
	habits, err := store.GetHabits(username)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	logger.Debug("Hydrated user data",
		"user", username, "goals", len(goals), "habits", len(habits), "vision", len(vision))

	return &Tracker{
		store:    store,
		username: username,
		Audit:    audit,
		Goals:    goals,
		Vision:   vision,
		Habits:   habits,
	}, nil
}

// Username returns the namespace this tracker operates on.
func (t *Tracker) Username() string {
	return t.username
}

// SaveAudit replaces the audit record wholesale. When no manifesto has
// been written yet one is generated from the answers.
func (t *Tracker) SaveAudit(audit models.AuditData) error {
	v := validation.New()
	if result := v.ValidateAudit(audit); result.HasConflicts() {
		return fmt.Errorf("invalid audit: %s", result.Conflicts[0].Description)
	}

	audit.Manifesto = models.GenerateManifesto(audit)
	t.Audit = audit
	return t.store.SaveAudit(t.username, t.Audit)
}
