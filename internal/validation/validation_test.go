package validation

import (
	"testing"

	"github.com/julianstephens/tododia/internal/models"
)

func TestValidateAudit(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		sentiment int
		ok        bool
	}{
		{"lower bound", 0, true},
		{"upper bound", 100, true},
		{"middle", 50, true},
		{"negative", -1, false},
		{"over max", 101, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateAudit(models.AuditData{Sentiment: tt.sentiment})
			if result.HasConflicts() == tt.ok {
				t.Errorf("sentiment %d: conflicts = %v", tt.sentiment, result.Conflicts)
			}
		})
	}
}

func TestValidateGoal(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		goal models.SmartGoal
		want ConflictType
	}{
		{"valid", models.SmartGoal{ID: "g1", Title: "Run", Deadline: "2025-12-31", KPITarget: 42}, ""},
		{"no deadline is fine", models.SmartGoal{ID: "g1", Title: "Run"}, ""},
		{"empty title", models.SmartGoal{ID: "g1"}, ConflictEmptyTitle},
		{"bad deadline", models.SmartGoal{ID: "g1", Title: "Run", Deadline: "31/12/2025"}, ConflictInvalidDeadline},
		{"negative target", models.SmartGoal{ID: "g1", Title: "Run", KPITarget: -1}, ConflictInvalidKPITarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateGoal(tt.goal)
			if tt.want == "" {
				if result.HasConflicts() {
					t.Errorf("unexpected conflicts: %v", result.Conflicts)
				}
				return
			}
			if !result.HasConflicts() {
				t.Fatal("expected a conflict")
			}
			if result.Conflicts[0].Type != tt.want {
				t.Errorf("conflict = %s, want %s", result.Conflicts[0].Type, tt.want)
			}
		})
	}
}

func TestValidateHabit(t *testing.T) {
	v := New()

	if result := v.ValidateHabit(models.Habit{ID: "h1", Title: "Meditar", ReminderTime: "07:30"}); result.HasConflicts() {
		t.Errorf("unexpected conflicts: %v", result.Conflicts)
	}
	if result := v.ValidateHabit(models.Habit{ID: "h1", Title: "Meditar"}); result.HasConflicts() {
		t.Errorf("habit without reminder rejected: %v", result.Conflicts)
	}
	if result := v.ValidateHabit(models.Habit{ID: "h1"}); !result.HasConflicts() {
		t.Error("empty title accepted")
	}
	if result := v.ValidateHabit(models.Habit{ID: "h1", Title: "Meditar", ReminderTime: "25:99"}); !result.HasConflicts() {
		t.Error("malformed reminder accepted")
	}
}

func TestFormatReport(t *testing.T) {
	var empty ValidationResult
	if got := empty.FormatReport(); got != "No conflicts detected." {
		t.Errorf("report = %q", got)
	}

	v := New()
	result := v.ValidateGoal(models.SmartGoal{ID: "g1"})
	report := result.FormatReport()
	if report == "No conflicts detected." {
		t.Error("conflicts missing from report")
	}
}
