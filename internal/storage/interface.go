package storage

import (
	"errors"

	"github.com/julianstephens/tododia/internal/models"
)

// ErrNoSession is returned when no active-session pointer is stored.
var ErrNoSession = errors.New("no active session")

// Provider is the persistence gateway. All domain data is namespaced per
// username; the session pointer and settings are global. Save operations
// replace the full snapshot for that (user, entity) pair.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Active-session pointer. ClearSession removes only the pointer;
	// per-user data and trial activation are left untouched.
	GetSession() (models.Session, error)
	SetSession(models.Session) error
	ClearSession() error

	// Trial activation. GetStartDate returns 0 when the user has never
	// activated; SetStartDate overwrites unconditionally (idempotency is
	// the trial gate's job).
	GetStartDate(username string) (int64, error)
	SetStartDate(username string, epochMs int64) error

	// Audit. GetAudit overlays stored fields onto the defaults so that
	// records written before a schema addition remain valid.
	GetAudit(username string) (models.AuditData, error)
	SaveAudit(username string, audit models.AuditData) error

	// Goals, vision board, habits. A missing snapshot yields an empty
	// slice; a present one is trusted as-is.
	GetGoals(username string) ([]models.SmartGoal, error)
	SaveGoals(username string, goals []models.SmartGoal) error
	GetVision(username string) ([]models.VisionBoardItem, error)
	SaveVision(username string, items []models.VisionBoardItem) error
	GetHabits(username string) ([]models.Habit, error)
	SaveHabits(username string, habits []models.Habit) error

	// Bulk retrieval for cross-store migration
	GetAllUsernames() ([]string, error)

	// Utils
	GetConfigPath() string
}
