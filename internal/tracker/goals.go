package tracker

import (
	"fmt"
	"time"

	"github.com/julianstephens/tododia/internal/models"
	"github.com/julianstephens/tododia/internal/validation"
)

// UpsertGoal inserts a goal when its id is unseen, otherwise replaces
// the existing record in place so list position is preserved.
func (t *Tracker) UpsertGoal(goal models.SmartGoal) error {
	v := validation.New()
	if result := v.ValidateGoal(goal); result.HasConflicts() {
		return fmt.Errorf("invalid goal: %s", result.Conflicts[0].Description)
	}

	replaced := false
	for i, g := range t.Goals {
		if g.ID == goal.ID {
			t.Goals[i] = goal
			replaced = true
			break
		}
	}
	if !replaced {
		t.Goals = append(t.Goals, goal)
	}

	return t.store.SaveGoals(t.username, t.Goals)
}

// DeleteGoal removes a goal by id.
func (t *Tracker) DeleteGoal(id string) error {
	goals := make([]models.SmartGoal, 0, len(t.Goals))
	found := false
	for _, g := range t.Goals {
		if g.ID == id {
			found = true
			continue
		}
		goals = append(goals, g)
	}
	if !found {
		return fmt.Errorf("goal not found: %s", id)
	}

	t.Goals = goals
	return t.store.SaveGoals(t.username, t.Goals)
}

// UpdateProgress sets a goal's current KPI value and appends a history
// entry timestamped at now. A value equal to the current one is a
// no-op: no entry is appended and nothing is flushed.
func (t *Tracker) UpdateProgress(id string, value float64, now time.Time) error {
	for i, g := range t.Goals {
		if g.ID != id {
			continue
		}
		if g.KPICurrent == value {
			return nil
		}

		g.KPICurrent = value
		g.History = append(g.History, models.KPIEntry{Date: now, Value: value})
		t.Goals[i] = g
		return t.store.SaveGoals(t.username, t.Goals)
	}
	return fmt.Errorf("goal not found: %s", id)
}

// SetGoalCompleted flips a goal's completed flag.
func (t *Tracker) SetGoalCompleted(id string, completed bool) error {
	for i, g := range t.Goals {
		if g.ID != id {
			continue
		}
		g.Completed = completed
		t.Goals[i] = g
		return t.store.SaveGoals(t.username, t.Goals)
	}
	return fmt.Errorf("goal not found: %s", id)
}

// FindGoal returns the goal with the given id.
func (t *Tracker) FindGoal(id string) (models.SmartGoal, error) {
	for _, g := range t.Goals {
		if g.ID == id {
			return g, nil
		}
	}
	return models.SmartGoal{}, fmt.Errorf("goal not found: %s", id)
}
