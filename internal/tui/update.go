package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/tododia/internal/constants"
	"github.com/julianstephens/tododia/internal/models"
	"github.com/julianstephens/tododia/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Esc backs out of optional forms; the login form has nowhere to
	// go back to, so it quits instead.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		switch m.activeForm {
		case formLogin:
			m.quitting = true
			return m, tea.Quit
		case formAudit:
			m.clearForm()
			_ = m.manager.GoTo(constants.ViewWelcome)
			m.syncForm()
			return m, m.initFormCmd()
		default:
			m.clearForm()
			_ = m.manager.GoTo(constants.ViewDashboard)
			m.syncForm()
			return m, m.initFormCmd()
		}
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		return m.completeForm(cmds)
	case huh.StateAborted:
		switch m.activeForm {
		case formLogin:
			m.quitting = true
			return m, tea.Quit
		case formAudit:
			m.clearForm()
			_ = m.manager.GoTo(constants.ViewWelcome)
		default:
			m.clearForm()
			_ = m.manager.GoTo(constants.ViewDashboard)
		}
		m.syncForm()
		return m, m.initFormCmd()
	}

	return m, tea.Batch(cmds...)
}

func (m Model) completeForm(cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	switch m.activeForm {
	case formLogin:
		if err := m.manager.Login(m.loginForm.Username, m.loginForm.Email, m.loginForm.Starters); err != nil {
			m.formError = err.Error()
			m.buildLoginForm()
			return m, m.form.Init()
		}
		m.formError = ""
		m.clearForm()
		m.syncForm()
		return m, m.initFormCmd()

	case formAudit:
		t, err := m.manager.Tracker()
		if err != nil {
			m.formError = err.Error()
			m.clearForm()
			m.syncForm()
			return m, m.initFormCmd()
		}

		audit := t.Audit
		if n, err := strconv.Atoi(m.auditForm.Sentiment); err == nil {
			audit.Sentiment = n
		}
		audit.CurrentIdentity = m.auditForm.CurrentIdentity
		audit.DesiredIdentity = m.auditForm.DesiredIdentity
		audit.MainObstacles = m.auditForm.MainObstacles
		audit.WhyItMatters = m.auditForm.WhyItMatters
		audit.Manifesto = ""

		if err := t.SaveAudit(audit); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.formError = ""
		m.statusMsg = "Audit saved."
		m.clearForm()
		_ = m.manager.GoTo(constants.ViewPlanning)
		m.syncForm()
		return m, m.initFormCmd()

	case formGoal:
		t, err := m.manager.Tracker()
		if err != nil {
			m.formError = err.Error()
			m.clearForm()
			m.syncForm()
			return m, m.initFormCmd()
		}

		goal := models.SmartGoal{
			ID:         uuid.New().String(),
			Title:      m.goalForm.Title,
			Specific:   m.goalForm.Specific,
			Measurable: m.goalForm.Measurable,
			Attainable: m.goalForm.Attainable,
			Relevant:   m.goalForm.Relevant,
			Timebound:  m.goalForm.Timebound,
			Deadline:   m.goalForm.Deadline,
			KPIName:    m.goalForm.KPIName,
			KPIUnit:    m.goalForm.KPIUnit,
		}
		if m.goalForm.KPITarget != "" {
			if target, err := strconv.ParseFloat(m.goalForm.KPITarget, 64); err == nil {
				goal.KPITarget = target
			}
		}

		if err := t.UpsertGoal(goal); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.formError = ""
		m.statusMsg = "Goal added: " + goal.Title
		m.clearForm()
		_ = m.manager.GoTo(constants.ViewDashboard)
		m.syncForm()
		return m, m.initFormCmd()

	case formHabit:
		t, err := m.manager.Tracker()
		if err == nil {
			if _, err := t.AddHabit(m.habitForm.Title, m.habitForm.Reminder); err != nil {
				m.formError = err.Error()
			} else {
				m.formError = ""
				m.statusMsg = "Habit added: " + m.habitForm.Title
			}
		}
		m.clearForm()
		m.syncForm()
		return m, nil

	case formVision:
		t, err := m.manager.Tracker()
		if err == nil {
			if _, err := t.AddVisionItem(m.visionForm.Image, m.visionForm.Caption); err != nil {
				m.formError = err.Error()
			} else {
				m.formError = ""
				m.statusMsg = "Added to vision board."
			}
		}
		m.clearForm()
		m.syncForm()
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		if err := m.manager.Logout(); err != nil {
			m.formError = err.Error()
			return m, nil
		}
		m.statusMsg = ""
		m.cursor = 0
		m.syncForm()
		return m, m.initFormCmd()
	}

	switch m.manager.View() {
	case constants.ViewWelcome:
		return m.handleWelcomeKeys(msg)
	case constants.ViewDashboard:
		return m.handleDashboardKeys(msg)
	}

	return m, nil
}

func (m Model) handleWelcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Audit):
		_ = m.manager.GoTo(constants.ViewAudit)
		m.syncForm()
		return m, m.initFormCmd()
	case key.Matches(msg, m.keys.Confirm):
		_ = m.manager.GoTo(constants.ViewDashboard)
		m.syncForm()
		return m, nil
	}
	return m, nil
}

func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t, err := m.manager.Tracker()
	if err != nil {
		m.formError = err.Error()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(t.Habits)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor >= 0 && m.cursor < len(t.Habits) {
			settings, err := m.store.GetSettings()
			if err != nil {
				m.formError = err.Error()
				return m, nil
			}
			today, err := utils.GetTodayFromSettings(settings)
			if err != nil {
				m.formError = err.Error()
				return m, nil
			}
			if err := t.ToggleHabit(t.Habits[m.cursor].ID, today); err != nil {
				m.formError = err.Error()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Goal):
		_ = m.manager.GoTo(constants.ViewPlanning)
		m.syncForm()
		return m, m.initFormCmd()

	case key.Matches(msg, m.keys.Habit):
		m.buildHabitForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Vision):
		m.buildVisionForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Home):
		_ = m.manager.GoTo(constants.ViewWelcome)
		m.syncForm()
		return m, nil
	}

	return m, nil
}

func (m *Model) clearForm() {
	m.form = nil
	m.activeForm = formNone
}

func (m Model) initFormCmd() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}
