package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tododia/internal/constants"
	"github.com/julianstephens/tododia/internal/utils"
)

// syncForm rebuilds the active huh form to match the session view.
// Called after every view transition.
func (m *Model) syncForm() {
	switch m.manager.View() {
	case constants.ViewLogin:
		if m.activeForm != formLogin {
			m.buildLoginForm()
		}
	case constants.ViewAudit:
		if m.activeForm != formAudit {
			m.buildAuditForm()
		}
	case constants.ViewPlanning:
		if m.activeForm != formGoal {
			m.buildGoalForm()
		}
	default:
		m.form = nil
		m.activeForm = formNone
	}
}

func (m *Model) buildLoginForm() {
	m.loginForm = &LoginFormModel{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&m.loginForm.Username).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("username is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email (optional)").
				Value(&m.loginForm.Email),
			huh.NewMultiSelect[string]().
				Title("Starter habits").
				Description("Pick any habits you want seeded on first login").
				Options(huh.NewOptions(constants.StarterHabits...)...).
				Value(&m.loginForm.Starters),
		),
	)
	m.activeForm = formLogin
}

func (m *Model) buildAuditForm() {
	m.auditForm = &AuditFormModel{
		Sentiment: strconv.Itoa(constants.DefaultSentiment),
	}
	if t, err := m.manager.Tracker(); err == nil {
		a := t.Audit
		m.auditForm = &AuditFormModel{
			Sentiment:       strconv.Itoa(a.Sentiment),
			CurrentIdentity: a.CurrentIdentity,
			DesiredIdentity: a.DesiredIdentity,
			MainObstacles:   a.MainObstacles,
			WhyItMatters:    a.WhyItMatters,
		}
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How do you feel today? (0-100)").
				Value(&m.auditForm.Sentiment).
				Validate(validateSentiment),
			huh.NewInput().
				Title("Who are you today?").
				Value(&m.auditForm.CurrentIdentity),
			huh.NewInput().
				Title("Who do you want to become?").
				Value(&m.auditForm.DesiredIdentity),
			huh.NewInput().
				Title("What stands in your way?").
				Value(&m.auditForm.MainObstacles),
			huh.NewInput().
				Title("Why does this matter?").
				Value(&m.auditForm.WhyItMatters),
		),
	)
	m.activeForm = formAudit
}

func (m *Model) buildGoalForm() {
	m.goalForm = &GoalFormModel{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal title").
				Value(&m.goalForm.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Specific: what exactly?").
				Value(&m.goalForm.Specific),
			huh.NewInput().
				Title("Measurable: how do you measure it?").
				Value(&m.goalForm.Measurable),
			huh.NewInput().
				Title("Attainable: why is it achievable?").
				Value(&m.goalForm.Attainable),
			huh.NewInput().
				Title("Relevant: why does it matter?").
				Value(&m.goalForm.Relevant),
			huh.NewInput().
				Title("Time-bound: by when?").
				Value(&m.goalForm.Timebound),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD, optional)").
				Value(&m.goalForm.Deadline).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("KPI name (e.g. 'km run')").
				Value(&m.goalForm.KPIName),
			huh.NewInput().
				Title("KPI target").
				Value(&m.goalForm.KPITarget).
				Validate(validateOptionalNumber),
			huh.NewInput().
				Title("KPI unit (e.g. 'km')").
				Value(&m.goalForm.KPIUnit),
		),
	)
	m.activeForm = formGoal
}

func (m *Model) buildHabitForm() {
	m.habitForm = &HabitFormModel{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit title").
				Value(&m.habitForm.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Daily reminder (HH:MM, optional)").
				Value(&m.habitForm.Reminder).
				Validate(func(s string) error {
					if s != "" && !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("expected HH:MM")
					}
					return nil
				}),
		),
	)
	m.activeForm = formHabit
}

func (m *Model) buildVisionForm() {
	m.visionForm = &VisionFormModel{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Image URL or path").
				Value(&m.visionForm.Image).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("image is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Caption (optional)").
				Value(&m.visionForm.Caption),
		),
	)
	m.activeForm = formVision
}

func validateSentiment(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a number between 0 and 100")
	}
	if n < constants.MinSentiment || n > constants.MaxSentiment {
		return fmt.Errorf("must be between %d and %d", constants.MinSentiment, constants.MaxSentiment)
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if !utils.ValidateDateFormat(s) {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalNumber(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}
