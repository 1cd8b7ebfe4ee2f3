package validation

import (
	"fmt"

	"github.com/julianstephens/tododia/internal/constants"
	"github.com/julianstephens/tododia/internal/models"
	"github.com/julianstephens/tododia/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictSentimentOutOfRange ConflictType = "sentiment_out_of_range"
	ConflictEmptyTitle          ConflictType = "empty_title"
	ConflictInvalidDeadline     ConflictType = "invalid_deadline"
	ConflictInvalidKPITarget    ConflictType = "invalid_kpi_target"
	ConflictInvalidReminderTime ConflictType = "invalid_reminder_time"
	ConflictDuplicateHabitTitle ConflictType = "duplicate_habit_title"
)

// Conflict represents a detected problem in domain data
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Titles/IDs involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates domain data before it is persisted
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateAudit checks an audit record for out-of-range values.
func (v *Validator) ValidateAudit(audit models.AuditData) ValidationResult {
	var result ValidationResult
	if audit.Sentiment < constants.MinSentiment || audit.Sentiment > constants.MaxSentiment {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictSentimentOutOfRange,
			Description: fmt.Sprintf("sentiment %d is outside the valid range [%d, %d]",
				audit.Sentiment, constants.MinSentiment, constants.MaxSentiment),
		})
	}
	return result
}

// ValidateGoal checks a goal for structural problems.
func (v *Validator) ValidateGoal(goal models.SmartGoal) ValidationResult {
	var result ValidationResult

	if goal.Title == "" {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptyTitle,
			Description: "goal title must not be empty",
			Items:       []string{goal.ID},
		})
	}
	if goal.Deadline != "" && !utils.ValidateDateFormat(goal.Deadline) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidDeadline,
			Description: fmt.Sprintf("deadline %q is not a valid date (expected YYYY-MM-DD)", goal.Deadline),
			Items:       []string{goal.Title},
		})
	}
	if goal.KPITarget < 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidKPITarget,
			Description: fmt.Sprintf("KPI target %v must not be negative", goal.KPITarget),
			Items:       []string{goal.Title},
		})
	}
	return result
}

// ValidateHabit checks a habit for structural problems. Duplicate titles
// are allowed here; dedup only happens on the bulk starter-habit path.
func (v *Validator) ValidateHabit(habit models.Habit) ValidationResult {
	var result ValidationResult

	if habit.Title == "" {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptyTitle,
			Description: "habit title must not be empty",
			Items:       []string{habit.ID},
		})
	}
	if habit.ReminderTime != "" && !utils.ValidateTimeFormat(habit.ReminderTime) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidReminderTime,
			Description: fmt.Sprintf("reminder time %q is not a valid time (expected HH:MM)", habit.ReminderTime),
			Items:       []string{habit.Title},
		})
	}
	return result
}
