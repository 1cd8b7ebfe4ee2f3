package cli

import (
	"fmt"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	fmt.Printf("Todo Dia - %s (%s)\n", ctx.Session.Username(), today)
	fmt.Printf("Trial: %d day(s) left\n\n", ctx.Session.DaysLeft())

	if t.Audit.Manifesto != "" {
		fmt.Printf("“%s”\n\n", t.Audit.Manifesto)
	}

	fmt.Println("Goals:")
	if len(t.Goals) == 0 {
		fmt.Println("  (none)")
	}
	for _, g := range t.Goals {
		status := " "
		if g.Completed {
			status = "x"
		}
		line := fmt.Sprintf("  [%s] %s", status, g.Title)
		if g.KPIName != "" {
			line += fmt.Sprintf("  %s/%s %s", formatKPI(g.KPICurrent), formatKPI(g.KPITarget), g.KPIUnit)
		}
		fmt.Println(line)
	}

	fmt.Println("\nHabits:")
	if len(t.Habits) == 0 {
		fmt.Println("  (none)")
	}
	done := 0
	for _, h := range t.Habits {
		mark := "[ ]"
		if h.CompletedOn(today) {
			mark = "[x]"
			done++
		}
		line := fmt.Sprintf("  %s %s", mark, h.Title)
		if h.Streak > 0 {
			line += fmt.Sprintf("  🔥 %d", h.Streak)
		}
		fmt.Println(line)
	}
	if len(t.Habits) > 0 {
		fmt.Printf("  Done today: %d/%d\n", done, len(t.Habits))
	}

	if len(t.Vision) > 0 {
		fmt.Printf("\nVision board: %d item(s)\n", len(t.Vision))
	}
	return nil
}
