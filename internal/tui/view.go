package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tododia/internal/constants"
	"github.com/julianstephens/tododia/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		header := ""
		switch m.activeForm {
		case formLogin:
			header = titleStyle.Render("Todo Dia") + "\n" +
				subtitleStyle.Render("Transforme sua vida, um dia de cada vez.") + "\n"
		case formAudit:
			header = titleStyle.Render("Self-audit") + "\n"
		case formGoal:
			header = titleStyle.Render("New SMART goal") + "\n"
		}
		parts := []string{header, m.form.View()}
		if m.formError != "" {
			parts = append(parts, dangerStyle.Render(m.formError))
		}
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	}

	var content string
	switch m.manager.View() {
	case constants.ViewWelcome:
		content = m.viewWelcome()
	case constants.ViewDashboard:
		content = m.viewDashboard()
	case constants.ViewExpired:
		content = m.viewExpired()
	default:
		content = ""
	}

	footer := m.help.View(m.keys)
	if m.formError != "" {
		footer = dangerStyle.Render(m.formError) + "\n" + footer
	} else if m.statusMsg != "" {
		footer = subtitleStyle.Render(m.statusMsg) + "\n" + footer
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, content, "", footer))
}

func (m Model) viewWelcome() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Bem-vindo, %s!", m.manager.Username())))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Trial: %d day(s) left", m.manager.DaysLeft())))
	b.WriteString("\n\n")

	if t, err := m.manager.Tracker(); err == nil && t.Audit.Manifesto != "" {
		b.WriteString(manifestoStyle.Render("“" + t.Audit.Manifesto + "”"))
		b.WriteString("\n\n")
	}

	b.WriteString("Start by taking stock of where you are.\n\n")
	b.WriteString("[a] Self-audit    [enter] Dashboard    [L] Logout\n")
	return b.String()
}

func (m Model) viewDashboard() string {
	t, err := m.manager.Tracker()
	if err != nil {
		return dangerStyle.Render(err.Error())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Todo Dia - %s", m.manager.Username())))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d day(s) left", m.manager.DaysLeft())))
	b.WriteString("\n\n")

	if t.Audit.Manifesto != "" {
		b.WriteString(manifestoStyle.Render("“" + t.Audit.Manifesto + "”"))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("Goals"))
	b.WriteString("\n")
	if len(t.Goals) == 0 {
		b.WriteString(subtitleStyle.Render("  No goals yet. Press g to add one."))
		b.WriteString("\n")
	}
	for _, g := range t.Goals {
		mark := "[ ]"
		if g.Completed {
			mark = doneStyle.Render("[x]")
		}
		line := fmt.Sprintf("  %s %s", mark, g.Title)
		if g.KPIName != "" && g.KPITarget > 0 {
			line += subtitleStyle.Render(fmt.Sprintf("  %.0f/%.0f %s", g.KPICurrent, g.KPITarget, g.KPIUnit))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	today := ""
	if settings, err := m.store.GetSettings(); err == nil {
		today, _ = utils.GetTodayFromSettings(settings)
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Habits"))
	b.WriteString("\n")
	if len(t.Habits) == 0 {
		b.WriteString(subtitleStyle.Render("  No habits yet. Press n to add one."))
		b.WriteString("\n")
	}
	for i, h := range t.Habits {
		cursor := "  "
		if i == m.cursor {
			cursor = selectedStyle.Render("> ")
		}
		mark := "[ ]"
		if today != "" && h.CompletedOn(today) {
			mark = doneStyle.Render("[x]")
		}
		line := cursor + mark + " " + h.Title
		if h.Streak > 0 {
			line += "  " + streakStyle.Render(fmt.Sprintf("🔥 %d", h.Streak))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(t.Vision) > 0 {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Vision board: %d item(s)", len(t.Vision))))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewExpired() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		dangerStyle.Render("Your 7-day trial has expired."),
		"",
		warningStyle.Render("Your data is safe and will be here if you come back."),
		"",
		"[L] Logout    [q] Quit",
	)
}
