package tracker

import (
	"testing"
	"time"

	"github.com/julianstephens/tododia/internal/models"
)

func TestUpsertGoal(t *testing.T) {
	tr := newTestTracker(t)

	first := models.SmartGoal{ID: "g1", Title: "Run a marathon", KPIName: "km", KPITarget: 42}
	second := models.SmartGoal{ID: "g2", Title: "Read more"}

	if err := tr.UpsertGoal(first); err != nil {
		t.Fatal(err)
	}
	if err := tr.UpsertGoal(second); err != nil {
		t.Fatal(err)
	}

	// Replacing g1 keeps its list position
	first.Title = "Run an ultramarathon"
	if err := tr.UpsertGoal(first); err != nil {
		t.Fatal(err)
	}

	if len(tr.Goals) != 2 {
		t.Fatalf("goals = %d, want 2", len(tr.Goals))
	}
	if tr.Goals[0].Title != "Run an ultramarathon" {
		t.Errorf("goal[0] = %s, replacement lost position", tr.Goals[0].Title)
	}
	if tr.Goals[1].ID != "g2" {
		t.Errorf("goal[1] = %s, want g2", tr.Goals[1].ID)
	}
}

func TestUpsertGoalValidation(t *testing.T) {
	tr := newTestTracker(t)

	tests := []struct {
		name string
		goal models.SmartGoal
	}{
		{"empty title", models.SmartGoal{ID: "g1"}},
		{"malformed deadline", models.SmartGoal{ID: "g1", Title: "x", Deadline: "31/12/2025"}},
		{"negative target", models.SmartGoal{ID: "g1", Title: "x", KPITarget: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tr.UpsertGoal(tt.goal); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestUpdateProgress(t *testing.T) {
	tr := newTestTracker(t)

	goal := models.SmartGoal{ID: "g1", Title: "Run", KPIName: "km", KPITarget: 100}
	if err := tr.UpsertGoal(goal); err != nil {
		t.Fatal(err)
	}

	t0 := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	if err := tr.UpdateProgress("g1", 12, t0); err != nil {
		t.Fatal(err)
	}

	got, _ := tr.FindGoal("g1")
	if got.KPICurrent != 12 {
		t.Errorf("KPICurrent = %v, want 12", got.KPICurrent)
	}
	if len(got.History) != 1 {
		t.Fatalf("history = %d entries, want 1", len(got.History))
	}
	if !got.History[0].Date.Equal(t0) || got.History[0].Value != 12 {
		t.Errorf("history[0] = %+v", got.History[0])
	}

	// Re-recording the same value must not append a history entry
	if err := tr.UpdateProgress("g1", 12, t0.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	got, _ = tr.FindGoal("g1")
	if len(got.History) != 1 {
		t.Errorf("duplicate value appended history: %d entries", len(got.History))
	}

	if err := tr.UpdateProgress("g1", 20, t0.Add(2*time.Hour)); err != nil {
		t.Fatal(err)
	}
	got, _ = tr.FindGoal("g1")
	if len(got.History) != 2 {
		t.Errorf("history = %d entries, want 2", len(got.History))
	}

	if err := tr.UpdateProgress("missing", 1, t0); err == nil {
		t.Error("expected error for unknown goal")
	}
}

func TestSetGoalCompleted(t *testing.T) {
	tr := newTestTracker(t)

	if err := tr.UpsertGoal(models.SmartGoal{ID: "g1", Title: "Run"}); err != nil {
		t.Fatal(err)
	}

	if err := tr.SetGoalCompleted("g1", true); err != nil {
		t.Fatal(err)
	}
	got, _ := tr.FindGoal("g1")
	if !got.Completed {
		t.Error("goal not marked completed")
	}

	if err := tr.SetGoalCompleted("g1", false); err != nil {
		t.Fatal(err)
	}
	got, _ = tr.FindGoal("g1")
	if got.Completed {
		t.Error("goal still completed after undo")
	}
}

func TestDeleteGoal(t *testing.T) {
	tr := newTestTracker(t)

	if err := tr.UpsertGoal(models.SmartGoal{ID: "g1", Title: "Run"}); err != nil {
		t.Fatal(err)
	}
	if err := tr.DeleteGoal("g1"); err != nil {
		t.Fatal(err)
	}
	if len(tr.Goals) != 0 {
		t.Errorf("goals remaining: %d", len(tr.Goals))
	}
	if err := tr.DeleteGoal("g1"); err == nil {
		t.Error("expected error deleting a missing goal")
	}
}
