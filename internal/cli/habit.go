package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tododia/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with their streaks." default:"1"`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for today."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Title    string `arg:"" help:"Habit title."`
	Reminder string `help:"Daily reminder time in HH:MM format." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	habit, err := t.AddHabit(c.Title, c.Reminder)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", habit.Title)
	if habit.ReminderTime != "" {
		fmt.Printf("Daily reminder at %s\n", habit.ReminderTime)
	}
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	if len(t.Habits) == 0 {
		fmt.Println("No habits yet. Add one with 'tododia habit add'.")
		return nil
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	for _, h := range t.Habits {
		mark := "[ ]"
		if h.CompletedOn(today) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, h.Title)
		if h.Streak > 0 {
			line += fmt.Sprintf("  🔥 %d", h.Streak)
		}
		if h.ReminderTime != "" {
			line += fmt.Sprintf("  (reminder %s)", h.ReminderTime)
		}
		fmt.Println(line)
	}
	return nil
}

type HabitToggleCmd struct {
	Title string `arg:"" help:"Habit title (or unique prefix)."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	habit, err := findHabitByTitle(t.Habits, c.Title)
	if err != nil {
		return err
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	if err := t.ToggleHabit(habit.ID, today); err != nil {
		return err
	}

	updated, err := t.FindHabit(habit.ID)
	if err != nil {
		return err
	}

	if updated.CompletedOn(today) {
		fmt.Printf("Marked %q done for %s (streak: %d)\n", updated.Title, today, updated.Streak)
	} else {
		fmt.Printf("Unmarked %q for %s (streak: %d)\n", updated.Title, today, updated.Streak)
	}
	return nil
}

type HabitDeleteCmd struct {
	Title string `arg:"" help:"Habit title (or unique prefix)."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	habit, err := findHabitByTitle(t.Habits, c.Title)
	if err != nil {
		return err
	}

	if err := t.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Title)
	return nil
}

// findHabitByTitle resolves a habit by exact title or unambiguous prefix.
func findHabitByTitle(habits []models.Habit, title string) (models.Habit, error) {
	var matches []models.Habit
	for _, h := range habits {
		if h.Title == title {
			return h, nil
		}
		if strings.HasPrefix(strings.ToLower(h.Title), strings.ToLower(title)) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Habit{}, fmt.Errorf("habit %q not found", title)
	default:
		return models.Habit{}, fmt.Errorf("habit title %q is ambiguous (%d matches)", title, len(matches))
	}
}
