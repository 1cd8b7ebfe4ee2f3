package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tododia/internal/constants"
	"github.com/julianstephens/tododia/internal/models"
	"github.com/julianstephens/tododia/internal/validation"
)

// AddHabit appends a new habit. Titles are not deduplicated here; the
// only dedup point is the starter-habit merge at login.
func (t *Tracker) AddHabit(title, reminderTime string) (models.Habit, error) {
	habit := models.Habit{
		ID:             uuid.New().String(),
		Title:          title,
		CompletedDates: []string{},
		Streak:         0,
		ReminderTime:   reminderTime,
	}

	v := validation.New()
	if result := v.ValidateHabit(habit); result.HasConflicts() {
		return models.Habit{}, fmt.Errorf("invalid habit: %s", result.Conflicts[0].Description)
	}

	t.Habits = append(t.Habits, habit)
	if err := t.store.SaveHabits(t.username, t.Habits); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// ToggleHabit flips today's completion for a habit and recomputes its
// streak from scratch. Dates stay sorted ascending.
func (t *Tracker) ToggleHabit(id, today string) error {
	for i, h := range t.Habits {
		if h.ID != id {
			continue
		}

		if h.CompletedOn(today) {
			dates := make([]string, 0, len(h.CompletedDates))
			for _, d := range h.CompletedDates {
				if d != today {
					dates = append(dates, d)
				}
			}
			h.CompletedDates = dates
		} else {
			h.CompletedDates = append(h.CompletedDates, today)
			sort.Strings(h.CompletedDates)
		}

		h.Streak = ComputeStreak(h.CompletedDates, today)
		t.Habits[i] = h
		return t.store.SaveHabits(t.username, t.Habits)
	}
	return fmt.Errorf("habit not found: %s", id)
}

// DeleteHabit removes a habit by id.
func (t *Tracker) DeleteHabit(id string) error {
	habits := make([]models.Habit, 0, len(t.Habits))
	found := false
	for _, h := range t.Habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return fmt.Errorf("habit not found: %s", id)
	}

	t.Habits = habits
	return t.store.SaveHabits(t.username, t.Habits)
}

// FindHabit returns the habit with the given id.
func (t *Tracker) FindHabit(id string) (models.Habit, error) {
	for _, h := range t.Habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", id)
}

// FindHabitByTitle returns the first habit with the given title
// (case-sensitive exact match).
func (t *Tracker) FindHabitByTitle(title string) (models.Habit, error) {
	for _, h := range t.Habits {
		if h.Title == title {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", title)
}

// ComputeStreak counts consecutive completed calendar days ending at
// today, or at yesterday when today is not yet checked. Toggling off
// today therefore collapses the streak to the trailing run ending
// yesterday instead of zero.
func ComputeStreak(completedDates []string, today string) int {
	if len(completedDates) == 0 {
		return 0
	}

	set := make(map[string]bool, len(completedDates))
	for _, d := range completedDates {
		set[d] = true
	}

	probe, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return 0
	}
	if !set[today] {
		probe = probe.AddDate(0, 0, -1)
	}

	streak := 0
	for set[probe.Format(constants.DateFormat)] {
		streak++
		probe = probe.AddDate(0, 0, -1)
	}
	return streak
}

// MergeStarterHabits folds a list of starter titles into an existing
// habit set, skipping titles already present (case-sensitive exact
// match). Duplicates are filtered silently, never reported.
func MergeStarterHabits(existing []models.Habit, titles []string) []models.Habit {
	present := make(map[string]bool, len(existing))
	for _, h := range existing {
		present[h.Title] = true
	}

	merged := existing
	for _, title := range titles {
		if title == "" || present[title] {
			continue
		}
		present[title] = true
		merged = append(merged, models.Habit{
			ID:             uuid.New().String(),
			Title:          title,
			CompletedDates: []string{},
			Streak:         0,
		})
	}
	return merged
}
