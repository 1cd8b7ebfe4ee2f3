package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tododia/internal/models"
)

type GoalCmd struct {
	Add      GoalAddCmd      `cmd:"" help:"Add a new SMART goal."`
	Edit     GoalEditCmd     `cmd:"" help:"Edit an existing goal."`
	List     GoalListCmd     `cmd:"" help:"List goals." default:"1"`
	Delete   GoalDeleteCmd   `cmd:"" help:"Delete a goal."`
	Progress GoalProgressCmd `cmd:"" help:"Record progress against a goal's KPI."`
	Complete GoalCompleteCmd `cmd:"" help:"Mark a goal as completed."`
	History  GoalHistoryCmd  `cmd:"" help:"Show a goal's KPI history."`
}

type GoalAddCmd struct {
	Title      string  `arg:"" help:"Goal title."`
	Specific   string  `help:"What exactly will be accomplished."`
	Measurable string  `help:"How progress is measured."`
	Attainable string  `help:"Why this is achievable."`
	Relevant   string  `help:"Why this matters."`
	Timebound  string  `help:"The time constraint."`
	Deadline   string  `help:"Deadline in YYYY-MM-DD format."`
	KpiName    string  `help:"KPI name (e.g. 'km run')."`
	KpiTarget  float64 `help:"KPI target value."`
	KpiUnit    string  `help:"KPI unit (e.g. 'km')."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	goal := models.SmartGoal{
		ID:         uuid.New().String(),
		Title:      c.Title,
		Specific:   c.Specific,
		Measurable: c.Measurable,
		Attainable: c.Attainable,
		Relevant:   c.Relevant,
		Timebound:  c.Timebound,
		Deadline:   c.Deadline,
		KPIName:    c.KpiName,
		KPITarget:  c.KpiTarget,
		KPIUnit:    c.KpiUnit,
	}

	if err := t.UpsertGoal(goal); err != nil {
		return err
	}

	fmt.Printf("Added goal: %s\n", c.Title)
	return nil
}

type GoalEditCmd struct {
	ID         string   `arg:"" help:"Goal ID (or unique prefix)."`
	Title      *string  `help:"New title."`
	Specific   *string  `help:"New specific statement."`
	Measurable *string  `help:"New measurable statement."`
	Attainable *string  `help:"New attainable statement."`
	Relevant   *string  `help:"New relevant statement."`
	Timebound  *string  `help:"New time constraint."`
	Deadline   *string  `help:"New deadline in YYYY-MM-DD format."`
	KpiName    *string  `help:"New KPI name."`
	KpiTarget  *float64 `help:"New KPI target."`
	KpiUnit    *string  `help:"New KPI unit."`
}

func (c *GoalEditCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	goal, err := findGoalByPrefix(t.Goals, c.ID)
	if err != nil {
		return err
	}

	if c.Title != nil {
		goal.Title = *c.Title
	}
	if c.Specific != nil {
		goal.Specific = *c.Specific
	}
	if c.Measurable != nil {
		goal.Measurable = *c.Measurable
	}
	if c.Attainable != nil {
		goal.Attainable = *c.Attainable
	}
	if c.Relevant != nil {
		goal.Relevant = *c.Relevant
	}
	if c.Timebound != nil {
		goal.Timebound = *c.Timebound
	}
	if c.Deadline != nil {
		goal.Deadline = *c.Deadline
	}
	if c.KpiName != nil {
		goal.KPIName = *c.KpiName
	}
	if c.KpiTarget != nil {
		goal.KPITarget = *c.KpiTarget
	}
	if c.KpiUnit != nil {
		goal.KPIUnit = *c.KpiUnit
	}

	if err := t.UpsertGoal(goal); err != nil {
		return err
	}

	fmt.Printf("Updated goal: %s\n", goal.Title)
	return nil
}

type GoalListCmd struct {
	Completed bool `help:"Include completed goals."`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	if len(t.Goals) == 0 {
		fmt.Println("No goals yet. Add one with 'tododia goal add'.")
		return nil
	}

	for _, g := range t.Goals {
		if g.Completed && !c.Completed {
			continue
		}
		status := " "
		if g.Completed {
			status = "x"
		}
		fmt.Printf("[%s] %s  %s\n", status, shortID(g.ID), g.Title)
		if g.KPIName != "" {
			fmt.Printf("      %s: %s/%s %s (%.0f%%)\n",
				g.KPIName,
				formatKPI(g.KPICurrent), formatKPI(g.KPITarget), g.KPIUnit,
				progressPercent(g))
		}
		if g.Deadline != "" {
			fmt.Printf("      deadline: %s\n", g.Deadline)
		}
	}
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal ID (or unique prefix)."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	goal, err := findGoalByPrefix(t.Goals, c.ID)
	if err != nil {
		return err
	}

	if err := t.DeleteGoal(goal.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted goal: %s\n", goal.Title)
	return nil
}

type GoalProgressCmd struct {
	ID    string  `arg:"" help:"Goal ID (or unique prefix)."`
	Value float64 `arg:"" help:"New KPI value."`
}

func (c *GoalProgressCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	goal, err := findGoalByPrefix(t.Goals, c.ID)
	if err != nil {
		return err
	}

	if err := t.UpdateProgress(goal.ID, c.Value, time.Now()); err != nil {
		return err
	}

	updated, err := t.FindGoal(goal.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s/%s %s (%.0f%%)\n",
		updated.Title,
		formatKPI(updated.KPICurrent), formatKPI(updated.KPITarget), updated.KPIUnit,
		progressPercent(updated))
	return nil
}

type GoalCompleteCmd struct {
	ID   string `arg:"" help:"Goal ID (or unique prefix)."`
	Undo bool   `help:"Mark the goal as not completed instead."`
}

func (c *GoalCompleteCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	goal, err := findGoalByPrefix(t.Goals, c.ID)
	if err != nil {
		return err
	}

	if err := t.SetGoalCompleted(goal.ID, !c.Undo); err != nil {
		return err
	}

	if c.Undo {
		fmt.Printf("Reopened goal: %s\n", goal.Title)
	} else {
		fmt.Printf("Completed goal: %s\n", goal.Title)
	}
	return nil
}

type GoalHistoryCmd struct {
	ID string `arg:"" help:"Goal ID (or unique prefix)."`
}

func (c *GoalHistoryCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	goal, err := findGoalByPrefix(t.Goals, c.ID)
	if err != nil {
		return err
	}

	if len(goal.History) == 0 {
		fmt.Println("No progress recorded yet.")
		return nil
	}

	fmt.Printf("KPI history for %q:\n", goal.Title)
	for _, entry := range goal.History {
		fmt.Printf("  %s  %s %s\n", entry.Date.Format("2006-01-02 15:04"), formatKPI(entry.Value), goal.KPIUnit)
	}
	return nil
}

// findGoalByPrefix resolves a goal by full ID or an unambiguous prefix.
func findGoalByPrefix(goals []models.SmartGoal, id string) (models.SmartGoal, error) {
	var matches []models.SmartGoal
	for _, g := range goals {
		if g.ID == id {
			return g, nil
		}
		if strings.HasPrefix(g.ID, id) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.SmartGoal{}, fmt.Errorf("goal %q not found", id)
	default:
		return models.SmartGoal{}, fmt.Errorf("goal ID prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatKPI(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func progressPercent(g models.SmartGoal) float64 {
	if g.KPITarget == 0 {
		return 0
	}
	pct := g.KPICurrent / g.KPITarget * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
